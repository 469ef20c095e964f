// Package repository provides a generic, kind-partitioned, concurrent
// key-value store for domain entities with per-kind id generation.
package repository

import (
	"context"
	"iter"

	"github.com/example/simplecrud/internal/domain"
)

// Repository defines the basic CRUD operations for any entity kind. A single
// instance serves multiple kinds without collision; storage and id counters
// are partitioned by domain.Kind and created lazily on first use.
//
// Context is accepted for interface symmetry with I/O-backed implementations;
// the in-memory implementation runs every operation to completion and does
// not support cancellation.
type Repository interface {
	// Add assigns a fresh id and creation timestamp to the entity, mutating
	// it in place, and inserts it into the kind's partition.
	// Returns ErrDuplicate if the assigned id slot is already occupied.
	Add(ctx context.Context, kind domain.Kind, entity domain.Entity) error

	// Update replaces the stored entity with the same id, or inserts it if
	// absent. The creation timestamp of any replaced entity is preserved.
	// Returns ErrInvalidEntity if the entity's id is not positive.
	Update(ctx context.Context, kind domain.Kind, entity domain.Entity) error

	// Delete removes the entity's id from the kind's partition and reports
	// how many entities were removed. Delete is idempotent and never fails:
	// a nil entity or an absent id reports zero.
	Delete(ctx context.Context, kind domain.Kind, entity domain.Entity) (int64, error)

	// FindByID retrieves an entity by its id.
	// Returns ErrNotFound if the id is not present.
	FindByID(ctx context.Context, kind domain.Kind, id int64) (domain.Entity, error)

	// Query returns a lazy view over the kind's current entities. Snapshot
	// semantics are not guaranteed: mutations concurrent with iteration may
	// or may not be reflected.
	Query(kind domain.Kind) iter.Seq[domain.Entity]
}
