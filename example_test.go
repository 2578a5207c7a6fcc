package tabhash_test

import (
	"fmt"

	"github.com/hupe1980/tabhash"
)

func ExampleNewSimple32WithTable() {
	// A sparse table makes the fold order visible: the key 0x04020100 has
	// chunks 0x00, 0x01, 0x02, 0x04 (least-significant byte first).
	var table tabhash.Simple32Table
	table[0][0x00] = 7
	table[1][0x01] = 11
	table[2][0x02] = 13
	table[3][0x04] = 17

	h := tabhash.NewSimple32WithTable(table)
	fmt.Println(h.Hash(0x04020100))
	// Output: 16
}

func ExampleNewSimple32FromEncoded() {
	h := tabhash.NewSimple32()

	// The interchange form survives any process boundary; decoding it
	// reconstructs a hash function that agrees with the original on every
	// key.
	dec, err := tabhash.NewSimple32FromEncoded(h.EncodeTable())
	if err != nil {
		panic(err)
	}
	fmt.Println(dec.Hash(42) == h.Hash(42))
	// Output: true
}
