// Package quality provides statistical smoke checks for hash functions.
//
// Distinct outputs across a key range, and disagreement between independently
// seeded tables, are expected statistical properties of tabulation hashing,
// never hard guarantees. The helpers here exist for smoke tests and table
// audits: a freshly seeded table that collides wildly on sequential keys is
// almost certainly a construction or interchange bug, not bad luck.
package quality

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/hupe1980/tabhash"
)

// Distinct32 hashes n sequential keys starting at start and returns the
// number of distinct outputs.
func Distinct32(h tabhash.Hash32, start uint32, n int) uint64 {
	bm := roaring.New()
	for i := 0; i < n; i++ {
		bm.Add(h.Hash(start + uint32(i)))
	}
	return bm.GetCardinality()
}

// Distinct64 hashes n sequential keys starting at start and returns the
// number of distinct outputs.
func Distinct64(h tabhash.Hash64, start uint64, n int) uint64 {
	bm := roaring64.New()
	for i := 0; i < n; i++ {
		bm.Add(h.Hash(start + uint64(i)))
	}
	return bm.GetCardinality()
}

// Agreements32 returns the number of keys in [start, start+n) on which a and
// b produce the same output. For independently seeded tables this is near
// zero; a large value suggests the two share a table.
func Agreements32(a, b tabhash.Hash32, start uint32, n int) int {
	agreements := 0
	for i := 0; i < n; i++ {
		k := start + uint32(i)
		if a.Hash(k) == b.Hash(k) {
			agreements++
		}
	}
	return agreements
}

// Agreements64 returns the number of keys in [start, start+n) on which a and
// b produce the same output.
func Agreements64(a, b tabhash.Hash64, start uint64, n int) int {
	agreements := 0
	for i := 0; i < n; i++ {
		k := start + uint64(i)
		if a.Hash(k) == b.Hash(k) {
			agreements++
		}
	}
	return agreements
}
