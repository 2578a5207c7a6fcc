package tabhash

import (
	"encoding/json"
	"fmt"

	"github.com/hupe1980/tabhash/internal/chunk"
)

// Simple32Table is the native table shape of Simple32: one column of 256
// random words per key byte.
type Simple32Table [4][tableRows]uint32

// Simple32 implements simple tabulation hashing for 32-bit keys.
//
// The table is fixed at construction and never mutated afterwards, so a
// Simple32 is safe for concurrent use by multiple goroutines.
type Simple32 struct {
	table Simple32Table
}

var _ Hash32 = (*Simple32)(nil)

// NewSimple32 creates a Simple32 with a freshly drawn random table.
func NewSimple32(optFns ...Option) *Simple32 {
	o := applyOptions(optFns...)

	h := &Simple32{}
	for i := range h.table {
		for j := range h.table[i] {
			h.table[i][j] = o.source.Uint32()
		}
	}
	return h
}

// NewSimple32WithTable creates a Simple32 from a caller-supplied table. The
// table is copied and trusted to be well distributed.
func NewSimple32WithTable(table Simple32Table) *Simple32 {
	return &Simple32{table: table}
}

// NewSimple32FromEncoded creates a Simple32 from the interchange form
// produced by EncodeTable. It returns an ErrShapeMismatch if the outer length
// is not 4 or any inner length is not 256; cell values are not range-checked.
func NewSimple32FromEncoded(enc [][]uint32) (*Simple32, error) {
	h := &Simple32{}
	if err := decodeColumns(enc, h.table[:]); err != nil {
		return nil, err
	}
	return h, nil
}

// Hash returns the tabulation hash of key: one table lookup per key byte,
// XOR-folded together.
func (h *Simple32) Hash(key uint32) uint32 {
	var acc uint32
	for i, c := range chunk.Of32(key) {
		acc ^= h.table[i][c]
	}
	return acc
}

// Table returns a copy of the lookup table in its native fixed shape.
func (h *Simple32) Table() Simple32Table { return h.table }

// EncodeTable returns the table in its variable-length interchange form.
func (h *Simple32) EncodeTable() [][]uint32 { return encodeColumns(h.table[:]) }

// Clone returns a deep copy of h.
func (h *Simple32) Clone() *Simple32 { return &Simple32{table: h.table} }

// MarshalJSON serializes h as a record holding only its encoded table.
func (h *Simple32) MarshalJSON() ([]byte, error) {
	return json.Marshal(tableRecord[uint32]{Table: h.EncodeTable()})
}

// UnmarshalJSON reconstructs h from a record produced by MarshalJSON. The
// decoded instance is fully functional; no further construction is needed.
func (h *Simple32) UnmarshalJSON(data []byte) error {
	var rec tableRecord[uint32]
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}

	dec, err := NewSimple32FromEncoded(rec.Table)
	if err != nil {
		return err
	}
	h.table = dec.table

	return nil
}
