// Package chunk splits fixed-width keys into their 8-bit table indices.
//
// Chunk order is little-endian: index 0 is the least-significant byte of the
// key. Every hasher in tabhash derives its lookup indices from this package,
// so the order defined here is part of the interchange contract for saved
// tables.
package chunk

// Of32 returns the four bytes of x, least-significant first.
func Of32(x uint32) [4]byte {
	return [4]byte{
		byte(x),
		byte(x >> 8),
		byte(x >> 16),
		byte(x >> 24),
	}
}

// Of64 returns the eight bytes of x, least-significant first.
func Of64(x uint64) [8]byte {
	return [8]byte{
		byte(x),
		byte(x >> 8),
		byte(x >> 16),
		byte(x >> 24),
		byte(x >> 32),
		byte(x >> 40),
		byte(x >> 48),
		byte(x >> 56),
	}
}
