// Package hashing provides hash functions used by the set to bucket
// values of any runtime type.
package hashing

import (
	"fmt"

	"github.com/OneOfOne/xxhash"
	"github.com/zeebo/xxh3"
)

// HashFunc maps a value to a 64-bit bucket key. Equal values must map
// to the same key; distinct values may collide, so callers resolve
// collisions with an equality check. This lets us talk about hash
// functions in a generic way: the XXH3 and XXHash64 functions are both
// HashFuncs.
type HashFunc func(value any) (uint64, error)

// XXH3 hashes the canonical string form of a value with the xxh3
// algorithm. This is the default hash for sets.
func XXH3(value any) (uint64, error) {
	return xxh3.HashString(canonical(value)), nil
}

// XXHash64 hashes the canonical string form of a value with the
// 64-bit xxHash algorithm.
func XXHash64(value any) (uint64, error) {
	return xxhash.ChecksumString64(canonical(value)), nil
}

// canonical renders a value so that equal values produce equal strings.
// The %#v verb keeps type information, so 1 and "1" stay distinct, and
// fmt prints map keys in sorted order, so equal maps render identically.
func canonical(value any) string {
	return fmt.Sprintf("%#v", value)
}
