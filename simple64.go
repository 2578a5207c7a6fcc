package tabhash

import (
	"encoding/json"
	"fmt"

	"github.com/hupe1980/tabhash/internal/chunk"
)

// Simple64Table is the native table shape of Simple64.
type Simple64Table [8][tableRows]uint64

// Simple64 implements simple tabulation hashing for 64-bit keys. Same scheme
// as Simple32, twice the columns.
//
// Safe for concurrent use once constructed.
type Simple64 struct {
	table Simple64Table
}

var _ Hash64 = (*Simple64)(nil)

// NewSimple64 creates a Simple64 with a freshly drawn random table.
func NewSimple64(optFns ...Option) *Simple64 {
	o := applyOptions(optFns...)

	h := &Simple64{}
	for i := range h.table {
		for j := range h.table[i] {
			h.table[i][j] = o.source.Uint64()
		}
	}
	return h
}

// NewSimple64WithTable creates a Simple64 from a caller-supplied table. The
// table is copied and trusted to be well distributed.
func NewSimple64WithTable(table Simple64Table) *Simple64 {
	return &Simple64{table: table}
}

// NewSimple64FromEncoded creates a Simple64 from the interchange form
// produced by EncodeTable. It returns an ErrShapeMismatch if the outer length
// is not 8 or any inner length is not 256; cell values are not range-checked.
func NewSimple64FromEncoded(enc [][]uint64) (*Simple64, error) {
	h := &Simple64{}
	if err := decodeColumns(enc, h.table[:]); err != nil {
		return nil, err
	}
	return h, nil
}

// Hash returns the tabulation hash of key.
func (h *Simple64) Hash(key uint64) uint64 {
	var acc uint64
	for i, c := range chunk.Of64(key) {
		acc ^= h.table[i][c]
	}
	return acc
}

// Table returns a copy of the lookup table in its native fixed shape.
func (h *Simple64) Table() Simple64Table { return h.table }

// EncodeTable returns the table in its variable-length interchange form.
func (h *Simple64) EncodeTable() [][]uint64 { return encodeColumns(h.table[:]) }

// Clone returns a deep copy of h.
func (h *Simple64) Clone() *Simple64 { return &Simple64{table: h.table} }

// MarshalJSON serializes h as a record holding only its encoded table.
func (h *Simple64) MarshalJSON() ([]byte, error) {
	return json.Marshal(tableRecord[uint64]{Table: h.EncodeTable()})
}

// UnmarshalJSON reconstructs h from a record produced by MarshalJSON.
func (h *Simple64) UnmarshalJSON(data []byte) error {
	var rec tableRecord[uint64]
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}

	dec, err := NewSimple64FromEncoded(rec.Table)
	if err != nil {
		return err
	}
	h.table = dec.table

	return nil
}
