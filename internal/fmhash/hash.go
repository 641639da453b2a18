// Package fmhash implements the 32-bit structural content hash used as a
// congruence key throughout the checker: term construction, substitution,
// and the equality engine's union-find all key off the values computed here.
package fmhash

import (
	"encoding/binary"
	"hash/fnv"
)

// Hash is a 32-bit structural content hash. 0 is the starting value of
// folds such as the module hash, but it is not an identity for Combine:
// Combine passes its packed operands through mix64, so Combine(0, x) is in
// general not x, and Combine is neither associative nor commutative. It is
// sensitive to which operand came first, matching the asymmetric
// tag-seeded composition rules in the term model.
type Hash uint32

// the two Murmur3-style finalizer constants used to avalanche the 64-bit
// word formed by packing a pair of hashes together.
const (
	mixConst1 = 0xff51afd7ed558ccd
	mixConst2 = 0xc4ceb9fe1a85ec53
)

// mix64 is the fixed avalanche finalizer: it takes the packed 64-bit word
// and scrambles its bits so that nearby inputs produce unrelated outputs.
func mix64(x uint64) uint64 {
	x ^= x >> 33
	x *= mixConst1
	x ^= x >> 33
	x *= mixConst2
	x ^= x >> 33
	return x
}

// Combine packs x and y into a 64-bit word (x in the low bits, y in the
// high bits), mixes it, and returns the high 32 bits of the result. It is
// the ⊕ combinator from the term hash-composition rules: order matters,
// Combine(x, y) is not in general equal to Combine(y, x).
func Combine(x, y Hash) Hash {
	packed := uint64(x) | (uint64(y) << 32)
	return Hash(mix64(packed) >> 32)
}

// String folds the UTF-8 code points of s additively. Unlike Combine this
// is not passed through mix64 — it is the raw additive fold specified for
// name hashing, used only as an operand to a subsequent Combine call.
func String(s string) Hash {
	var h Hash
	for _, r := range s {
		h += Hash(r)
	}
	return h
}

// WideKey folds tag and the given child hashes through a 64-bit FNV-1a,
// rather than the 32-bit mix64-and-truncate Combine above. The 32-bit
// content hash is a fine congruence tag, but using it directly as a
// union-find memoization key means two genuinely different subterms that
// happen to collide in 32 bits would be treated as proven equal — a
// soundness hole. WideKey is used only for union-find keys, never stored
// on a term and never compared for anything but that memoization.
func WideKey(tag Hash, parts ...Hash) uint64 {
	h := fnv.New64a()
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(tag))
	h.Write(buf[:])
	for _, p := range parts {
		binary.BigEndian.PutUint32(buf[:], uint32(p))
		h.Write(buf[:])
	}
	return h.Sum64()
}

// Term constructor tags, used as the seed operand to Combine when a term's
// hash is composed from its children. Values are fixed by the data model
// and must never be renumbered — they are part of the hash itself.
const (
	TagVar Hash = 1
	TagRef Hash = 2
	TagTyp Hash = 3
	TagAll Hash = 4
	TagLam Hash = 5
	TagApp Hash = 6
	TagLet Hash = 7
	TagAnn Hash = 8
)
