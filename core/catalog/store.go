package catalog

import (
	"context"
	"errors"
)

// Sentinel errors for catalog operations. Gateway results wrap these so
// HTTP handlers can map them onto status codes with errors.Is.
var (
	// ErrNotFound indicates an identifier absent from the catalog.
	ErrNotFound = errors.New("catalog: item not found")
	// ErrValidation indicates a malformed item or update payload.
	ErrValidation = errors.New("catalog: validation failed")
	// ErrDuplicateID indicates an id collision on add or update.
	ErrDuplicateID = errors.New("catalog: duplicate id")
)

// Store is the swappable catalog data source. LoadAll returns one complete
// snapshot; Persist replaces the stored catalog with the given snapshot.
type Store interface {
	LoadAll(ctx context.Context) (*Snapshot, error)
	Persist(ctx context.Context, snap *Snapshot) error
}
