package tabhash

import (
	"context"
	"fmt"

	"github.com/hupe1980/tabhash/codec"
	"github.com/hupe1980/tabhash/tablestore"
)

// Save serializes h through c and writes it to s under name. If c is nil,
// codec.Default is used. h is any of the hash function types; the record
// holds only the encoded table.
func Save(ctx context.Context, s tablestore.Store, c codec.Codec, name string, h any) error {
	if c == nil {
		c = codec.Default
	}

	data, err := c.Marshal(h)
	if err != nil {
		return fmt.Errorf("marshal %q: %w", name, err)
	}

	return s.Put(ctx, name, data)
}

// Load reads the record stored under name and deserializes it into h, which
// must be a pointer to one of the hash function types. If c is nil,
// codec.Default is used.
//
// Load returns tablestore.ErrNotFound if no record exists, ErrMalformedRecord
// if the record does not parse, and ErrShapeMismatch if the parsed table has
// the wrong dimensions for h.
func Load(ctx context.Context, s tablestore.Store, c codec.Codec, name string, h any) error {
	if c == nil {
		c = codec.Default
	}

	data, err := s.Get(ctx, name)
	if err != nil {
		return err
	}

	return c.Unmarshal(data, h)
}
