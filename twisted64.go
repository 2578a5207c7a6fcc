package tabhash

import (
	"encoding/json"
	"fmt"

	"github.com/hupe1980/tabhash/internal/chunk"
)

// Twisted64Table is the native table shape of Twisted64. Cells are 128 bits
// wide; the low half is transient state that never reaches the result.
type Twisted64Table [8][tableRows]Uint128

// Twisted64 implements twisted tabulation hashing for 64-bit keys. Same
// scheme as Twisted32 scaled up: 8 chunks, 128-bit accumulator.
//
// Safe for concurrent use once constructed.
type Twisted64 struct {
	table Twisted64Table
}

var _ Hash64 = (*Twisted64)(nil)

// NewTwisted64 creates a Twisted64 with a freshly drawn random table. Each
// cell consumes two draws from the source, high half first.
func NewTwisted64(optFns ...Option) *Twisted64 {
	o := applyOptions(optFns...)

	h := &Twisted64{}
	for i := range h.table {
		for j := range h.table[i] {
			h.table[i][j] = uint128From(o.source)
		}
	}
	return h
}

// NewTwisted64WithTable creates a Twisted64 from a caller-supplied table.
// The table is copied and trusted to be well distributed.
func NewTwisted64WithTable(table Twisted64Table) *Twisted64 {
	return &Twisted64{table: table}
}

// NewTwisted64FromEncoded creates a Twisted64 from the interchange form
// produced by EncodeTable. It returns an ErrShapeMismatch if the outer length
// is not 8 or any inner length is not 256; cell values are not range-checked.
func NewTwisted64FromEncoded(enc [][]Uint128) (*Twisted64, error) {
	h := &Twisted64{}
	if err := decodeColumns(enc, h.table[:]); err != nil {
		return nil, err
	}
	return h, nil
}

// Hash returns the twisted tabulation hash of key.
//
// The first seven chunks are folded as in simple tabulation. The last lookup
// index is the last chunk XORed with the low 8 bits of the accumulator; the
// low 64 bits of the accumulator are shifted out, so the result is the high
// half.
func (h *Twisted64) Hash(key uint64) uint64 {
	c := chunk.Of64(key)

	var acc Uint128
	for i := 0; i < 7; i++ {
		acc = acc.Xor(h.table[i][c[i]])
	}

	last := c[7] ^ byte(acc.Lo)
	acc = acc.Xor(h.table[7][last])

	return acc.Hi
}

// Table returns a copy of the lookup table in its native fixed shape.
func (h *Twisted64) Table() Twisted64Table { return h.table }

// EncodeTable returns the table in its variable-length interchange form.
func (h *Twisted64) EncodeTable() [][]Uint128 { return encodeColumns(h.table[:]) }

// Clone returns a deep copy of h.
func (h *Twisted64) Clone() *Twisted64 { return &Twisted64{table: h.table} }

// MarshalJSON serializes h as a record holding only its encoded table.
func (h *Twisted64) MarshalJSON() ([]byte, error) {
	return json.Marshal(tableRecord[Uint128]{Table: h.EncodeTable()})
}

// UnmarshalJSON reconstructs h from a record produced by MarshalJSON.
func (h *Twisted64) UnmarshalJSON(data []byte) error {
	var rec tableRecord[Uint128]
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}

	dec, err := NewTwisted64FromEncoded(rec.Table)
	if err != nil {
		return err
	}
	h.table = dec.table

	return nil
}
