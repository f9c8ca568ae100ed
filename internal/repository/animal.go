package repository

import (
	"context"
	"errors"

	"shelterapi/internal/model"
)

// DefaultReadAllLimit caps ReadAll when the caller does not set a limit.
const DefaultReadAllLimit int64 = 500

var (
	// ErrInvalidArgument reports a call rejected before reaching the store.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrStoreFailure wraps any error returned by the underlying store.
	ErrStoreFailure = errors.New("store failure")
)

// ReadOptions narrows a read. A nil Projection returns all fields; a Limit of zero or
// less returns every match.
type ReadOptions struct {
	Projection model.Projection
	Limit      int64
}

// AnimalRepository defines data access for animal-shelter records.
// No business logic here, strictly persistence operations.
//
// Read, Update and Delete always return a usable value: on a store failure they return
// an empty slice or zero alongside an error wrapping ErrStoreFailure.
type AnimalRepository interface {
	// Create inserts one record and reports whether the store acknowledged the write.
	// An empty record fails with ErrInvalidArgument.
	Create(ctx context.Context, rec model.Record) (bool, error)

	// Read returns the records matching filter in the store's natural order.
	Read(ctx context.Context, filter model.Filter, opts ReadOptions) ([]model.Record, error)

	// ReadAll reads every record, capped at limit (DefaultReadAllLimit when limit <= 0).
	ReadAll(ctx context.Context, projection model.Projection, limit int64) ([]model.Record, error)

	// Update sets values on every record matching filter and returns how many
	// records actually changed.
	Update(ctx context.Context, filter model.Filter, values model.Record) (int64, error)

	// Delete removes every record matching filter and returns how many were removed.
	Delete(ctx context.Context, filter model.Filter) (int64, error)

	// Ping checks that the store is reachable.
	Ping(ctx context.Context) error
}
