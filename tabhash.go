package tabhash

import "math/rand/v2"

// tableRows is the number of rows per table column: one per byte value.
const tableRows = 256

// Hash32 is a hash function over 32-bit keys.
//
// Implementations must be safe to use concurrently from multiple goroutines.
type Hash32 interface {
	// Hash returns the hash of key.
	Hash(key uint32) uint32
}

// Hash64 is a hash function over 64-bit keys.
//
// Implementations must be safe to use concurrently from multiple goroutines.
type Hash64 interface {
	// Hash returns the hash of key.
	Hash(key uint64) uint64
}

// Source supplies the uniformly distributed random integers used to fill
// lookup tables at construction time.
//
// Source is an injected capability rather than a global: *rand.Rand from
// math/rand/v2 satisfies it, which makes seeded, reproducible tables easy to
// build in tests. A Source is only consumed while a constructor runs; the
// hash functions themselves never draw randomness.
type Source interface {
	Uint32() uint32
	Uint64() uint64
}

// defaultSource draws from the math/rand/v2 global generator.
type defaultSource struct{}

func (defaultSource) Uint32() uint32 { return rand.Uint32() }
func (defaultSource) Uint64() uint64 { return rand.Uint64() }

type options struct {
	source Source
}

// Option configures table construction.
type Option func(*options)

// WithSource overrides the randomness source used to fill the table.
//
// If nil is passed, the default source is used.
func WithSource(src Source) Option {
	return func(o *options) {
		if src == nil {
			src = defaultSource{}
		}
		o.source = src
	}
}

func applyOptions(optFns ...Option) options {
	o := options{source: defaultSource{}}
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}

// tableRecord is the structured serialization form of a hash function: the
// encoded table and nothing else.
type tableRecord[T any] struct {
	Table [][]T `json:"table"`
}

// decodeColumns copies the interchange form src into the fixed-shape columns
// dst, validating the shape on the way.
func decodeColumns[T any](src [][]T, dst [][tableRows]T) error {
	if len(src) != len(dst) {
		return &ErrShapeMismatch{Column: -1, Expected: len(dst), Actual: len(src)}
	}
	for i, col := range src {
		if len(col) != tableRows {
			return &ErrShapeMismatch{Column: i, Expected: tableRows, Actual: len(col)}
		}
		copy(dst[i][:], col)
	}
	return nil
}

// encodeColumns copies the fixed-shape columns src into the variable-length
// interchange form: one inner slice of 256 cells per key byte.
func encodeColumns[T any](src [][tableRows]T) [][]T {
	enc := make([][]T, len(src))
	for i := range src {
		enc[i] = append([]T(nil), src[i][:]...)
	}
	return enc
}
