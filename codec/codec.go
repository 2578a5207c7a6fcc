// Package codec centralizes the byte-level encoding used when hash functions
// are persisted.
//
// A saved table must decode bit-for-bit on every host that loads it, so codec
// selection is treated as a compatibility boundary: records written by one
// codec are read back with the same codec (all built-in codecs happen to
// produce interchangeable JSON, but that is a property of the codecs, not a
// guarantee of this package).
package codec

import "fmt"

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
//
// Callers that store records next to the name of the codec that wrote them
// use this to pick the right codec on load.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// MustMarshal is a helper for internal tests/benchmarks.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
