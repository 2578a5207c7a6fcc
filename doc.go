// Package tabhash implements tabulation hashing for 32-bit and 64-bit keys.
//
// Tabulation hashing draws a fixed table of random words once at construction
// time and computes a hash with a handful of table lookups and XORs. The
// resulting families are 3-independent (simple tabulation) or carry stronger
// concentration guarantees (twisted tabulation): far more robust than
// multiplicative hashes, far cheaper than cryptographic ones. Typical
// consumers are hash tables, sketches and sampling schemes that need provable
// independence properties.
//
// # Quick Start
//
//	h := tabhash.NewSimple32()
//	fmt.Println(h.Hash(42))
//
// Seeded, reproducible tables use an injected randomness source:
//
//	src := rand.New(rand.NewPCG(1, 2)) // math/rand/v2
//	h := tabhash.NewTwisted64(tabhash.WithSource(src))
//
// # Variants
//
//	Simple32   4×256 table of uint32   3-independent, 32-bit keys
//	Simple64   8×256 table of uint64   3-independent, 64-bit keys
//	Twisted32  4×256 table of uint64   twisted, 32-bit keys
//	Twisted64  8×256 table of Uint128  twisted, 64-bit keys
//
// # Persistence
//
// A hash function is fully determined by its table. Consumers that must
// re-hash previously hashed keys across process restarts serialize the
// instance (a record holding only the encoded table) and store it:
//
//	store := tablestore.NewLocalStore("./tables")
//	_ = tabhash.Save(ctx, store, nil, "ids", h)
//
//	var h2 tabhash.Simple32
//	_ = tabhash.Load(ctx, store, nil, "ids", &h2)
//
// Reconstruction is bit-for-bit: h2 agrees with h on every key.
//
// # Concurrency
//
// Tables are immutable after construction, so a constructed hash function is
// safe for concurrent use by multiple goroutines without locking.
//
// Tabulation hashing is not cryptographic: no pre-image or collision
// resistance is claimed, and keys are fixed-width integers, never streams.
package tabhash
