package hashmap

import "strings"

// StringHasher hashes strings with 32-bit FNV-1a and orders them
// lexicographically. The hash is deterministic across processes.
type StringHasher struct{}

func (StringHasher) Hash(s string) uint32 {
	h := uint32(2166136261)
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 16777619
	}
	return h
}

func (StringHasher) Compare(a, b string) int {
	return strings.Compare(a, b)
}

// Integer is the set of key types IntHasher accepts.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// IntHasher hashes integer keys by Fibonacci multiplication, spreading
// consecutive keys across the hash space, and orders them numerically.
type IntHasher[I Integer] struct{}

func (IntHasher[I]) Hash(key I) uint32 {
	return uint32((uint64(key) * 11400714819323198485) >> 32)
}

func (IntHasher[I]) Compare(a, b I) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
