// Package tablestore persists serialized hash functions.
//
// A tabulation hash function is fully determined by its lookup table, so a
// consumer that must re-hash previously hashed keys across process restarts
// saves the serialized instance once and loads it back later, from local
// disk, memory, or an object store. Records are small (a few KiB to a few
// tens of KiB), so every implementation works with whole records rather than
// streams.
package tablestore

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no record exists under a name.
//
// Implementations must return an error that satisfies
// errors.Is(err, ErrNotFound).
var ErrNotFound = errors.New("tablestore: record not found")

// Store is an abstraction over the places a serialized hash function can
// live.
//
// Implementations must be safe for concurrent use.
type Store interface {
	// Put writes a record atomically, replacing any previous record with the
	// same name.
	Put(ctx context.Context, name string, data []byte) error

	// Get returns the record stored under name, or ErrNotFound.
	Get(ctx context.Context, name string) ([]byte, error)

	// Delete removes the record stored under name. Deleting a missing record
	// is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the names of all records with the given prefix.
	List(ctx context.Context, prefix string) ([]string, error)
}
