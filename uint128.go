package tabhash

// Uint128 is an unsigned 128-bit integer, the cell type of the Twisted64
// lookup table. Go has no native 128-bit integer, so the two halves are kept
// as explicit fields; the JSON form is {"hi":…,"lo":…}.
//
// Uint128 is a comparable value type, which keeps whole tables comparable
// with ==.
type Uint128 struct {
	Hi uint64 `json:"hi"`
	Lo uint64 `json:"lo"`
}

// Xor returns u ^ v.
func (u Uint128) Xor(v Uint128) Uint128 {
	return Uint128{Hi: u.Hi ^ v.Hi, Lo: u.Lo ^ v.Lo}
}

// IsZero reports whether u is zero.
func (u Uint128) IsZero() bool { return u.Hi == 0 && u.Lo == 0 }

// uint128From draws a Uint128 from src, high half first.
func uint128From(src Source) Uint128 {
	hi := src.Uint64()
	lo := src.Uint64()
	return Uint128{Hi: hi, Lo: lo}
}
