package repository

import "errors"

// Common repository errors that can be checked with errors.Is()
var (
	// ErrNotFound is returned when no entity exists for the requested id
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an entity's id slot is already occupied
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity cannot be used for the
	// requested operation, e.g. an update without a positive id
	ErrInvalidEntity = errors.New("invalid entity")
)
