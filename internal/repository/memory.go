package repository

import (
	"context"
	"fmt"
	"iter"
	"sync"
	"sync/atomic"
	"time"

	"github.com/example/simplecrud/internal/domain"
)

// part holds the stored entities and the next-id counter for one entity
// kind. Both live for the process lifetime once created.
type part struct {
	entities sync.Map // int64 -> domain.Entity
	lastID   atomic.Int64
}

// MemoryRepository is a lock-free, kind-partitioned in-memory store. All
// state is shared across callers; mutation goes through the atomic
// get-or-insert, compare-and-swap and try-remove primitives of sync.Map, so
// no caller blocks for the duration of another caller's operation.
//
// The repository exclusively owns stored entities for the process lifetime.
// There is no durability beyond that.
type MemoryRepository struct {
	parts sync.Map // domain.Kind -> *part
}

// NewMemoryRepository creates an empty repository. Construct it once at
// process start and share the instance across all callers.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

var _ Repository = (*MemoryRepository)(nil)

// part returns the kind's partition, creating it on first use.
func (r *MemoryRepository) part(kind domain.Kind) *part {
	if p, ok := r.parts.Load(kind); ok {
		return p.(*part)
	}
	p, _ := r.parts.LoadOrStore(kind, &part{})
	return p.(*part)
}

// Add assigns the next id for the kind and the current time to the entity,
// mutating it in place, then inserts it.
func (r *MemoryRepository) Add(ctx context.Context, kind domain.Kind, entity domain.Entity) error {
	if entity == nil {
		return fmt.Errorf("cannot add a nil entity: %w", ErrInvalidEntity)
	}

	p := r.part(kind)

	// The counter is incremented exactly once per call, so concurrent Adds
	// for the same kind never collide on an id and deleted ids are never
	// reused.
	id := p.lastID.Add(1)
	now := time.Now()
	entity.SetEntityID(id)
	entity.SetEntityCreatedDate(&now)

	if _, occupied := p.entities.LoadOrStore(id, entity); occupied {
		// Only reachable when an externally numbered entity was upserted
		// into a slot the counter had not reached yet.
		return fmt.Errorf("%s with id %d: %w", kind, id, ErrDuplicate)
	}
	return nil
}

// Update replaces the stored entity for the id, or inserts it if absent. The
// creation timestamp of a replaced entity carries over to the replacement,
// so creation time never regresses.
func (r *MemoryRepository) Update(ctx context.Context, kind domain.Kind, entity domain.Entity) error {
	if entity == nil || entity.EntityID() <= 0 {
		return fmt.Errorf("entity must have a valid id to be updated: %w", ErrInvalidEntity)
	}

	p := r.part(kind)
	id := entity.EntityID()

	for {
		existing, loaded := p.entities.Load(id)
		if !loaded {
			if _, raced := p.entities.LoadOrStore(id, entity); !raced {
				return nil
			}
			continue
		}
		entity.SetEntityCreatedDate(existing.(domain.Entity).EntityCreatedDate())
		if p.entities.CompareAndSwap(id, existing, entity) {
			return nil
		}
	}
}

// Delete removes the entity's id from the kind's partition. It reports 1 if
// an entity was removed and 0 otherwise; it never fails.
func (r *MemoryRepository) Delete(ctx context.Context, kind domain.Kind, entity domain.Entity) (int64, error) {
	if entity == nil {
		return 0, nil
	}

	p, ok := r.parts.Load(kind)
	if !ok {
		return 0, nil
	}

	if _, removed := p.(*part).entities.LoadAndDelete(entity.EntityID()); removed {
		return 1, nil
	}
	return 0, nil
}

// FindByID retrieves the stored entity for the id, or ErrNotFound.
func (r *MemoryRepository) FindByID(ctx context.Context, kind domain.Kind, id int64) (domain.Entity, error) {
	if p, ok := r.parts.Load(kind); ok {
		if e, ok := p.(*part).entities.Load(id); ok {
			return e.(domain.Entity), nil
		}
	}
	return nil, fmt.Errorf("%s with id %d: %w", kind, id, ErrNotFound)
}

// Query returns a lazy iterator over the kind's current entities. Iteration
// order is unspecified, and entities added or removed while iterating may or
// may not be visited.
func (r *MemoryRepository) Query(kind domain.Kind) iter.Seq[domain.Entity] {
	return func(yield func(domain.Entity) bool) {
		p, ok := r.parts.Load(kind)
		if !ok {
			return
		}
		p.(*part).entities.Range(func(_, v any) bool {
			return yield(v.(domain.Entity))
		})
	}
}
