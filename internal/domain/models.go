package domain

import (
	"time"

	"github.com/example/simplecrud/internal/validation"
)

// Kind identifies an entity type partition in the repository. Storage and id
// counters are segregated per kind, so one repository instance can serve
// multiple entity kinds without collision.
type Kind string

// KindProduct is the partition for Product entities.
const KindProduct Kind = "product"

// Entity is implemented by every record the repository can store. The
// repository assigns the id and creation timestamp through the setters,
// mutating the entity in place.
type Entity interface {
	EntityID() int64
	SetEntityID(id int64)
	EntityCreatedDate() *time.Time
	SetEntityCreatedDate(t *time.Time)
}

// Product represents a product in the catalog.
type Product struct {
	ID          int64      `json:"id"`          // Unique identifier, assigned by the repository
	CreatedDate *time.Time `json:"createdDate"` // Set once on creation, preserved across updates
	Name        string     `json:"name"`        // Required, at most 100 characters
	Description string     `json:"description"` // Optional free text
	Price       float64    `json:"price"`       // Must be strictly positive
}

var _ Entity = (*Product)(nil)

func (p *Product) EntityID() int64 { return p.ID }

func (p *Product) SetEntityID(id int64) { p.ID = id }

func (p *Product) EntityCreatedDate() *time.Time { return p.CreatedDate }

func (p *Product) SetEntityCreatedDate(t *time.Time) { p.CreatedDate = t }

// productRules is the validation rule table for Product, the static
// replacement for attribute-style annotations on the entity fields.
var productRules = []validation.Rule[*Product]{
	validation.Required("Name", func(p *Product) string { return p.Name }),
	validation.MaxLength("Name", 100, func(p *Product) string { return p.Name }),
	validation.Positive("Price", func(p *Product) any { return p.Price }),
}

// Validate evaluates all product rules and returns every violation message.
func (p *Product) Validate() []string {
	return validation.Apply(p, productRules)
}
