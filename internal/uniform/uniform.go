// Copyright (c) 2024-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package uniform reduces uniformly random words to the range [0,n) without
// modulo bias.
//
// The reduction takes the high half of the double-width product raw*n.  Since
// there are 2^W possible words and only n outputs, products whose low half
// falls below (2^W - n) mod n are rejected so every output is produced by
// exactly floor(2^W/n) words.
//
// See also:
// https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction
package uniform

import (
	"math/bits"
)

// Source32 is a source of uniformly random 32-bit words.
type Source32 interface {
	Uint32() uint32
}

// Source64 is a source of uniformly random 64-bit words.
type Source64 interface {
	Uint64() uint64
}

// Threshold32 returns the rejection threshold (2^32 - n) mod n.  n must not be
// zero.
func Threshold32(n uint32) uint32 {
	return -n % n
}

// Threshold64 returns the rejection threshold (2^64 - n) mod n.  n must not be
// zero.
func Threshold64(n uint64) uint64 {
	return -n % n
}

// Below32 maps raw into [0,n) given the threshold for n.  The result must be
// discarded and a new word drawn when accepted is false.
func Below32(raw, n, thresh uint32) (v uint32, accepted bool) {
	hi, lo := bits.Mul32(raw, n)
	return hi, lo >= thresh
}

// Below64 maps raw into [0,n) given the threshold for n.  The result must be
// discarded and a new word drawn when accepted is false.
func Below64(raw, n, thresh uint64) (v uint64, accepted bool) {
	hi, lo := bits.Mul64(raw, n)
	return hi, lo >= thresh
}

// Uint32N returns a random uint32 in range [0,n) without modulo bias.
// Panics if n == 0.
func Uint32N(src Source32, n uint32) uint32 {
	if n == 0 {
		panic("uniform: invalid argument to Uint32N")
	}
	hi, lo := bits.Mul32(src.Uint32(), n)
	// The threshold is always less than n, so the division is only needed
	// when the low half is small.
	if lo < n {
		thresh := Threshold32(n)
		for lo < thresh {
			hi, lo = bits.Mul32(src.Uint32(), n)
		}
	}
	return hi
}

// Uint64N returns a random uint64 in range [0,n) without modulo bias.
// Panics if n == 0.
func Uint64N(src Source64, n uint64) uint64 {
	if n == 0 {
		panic("uniform: invalid argument to Uint64N")
	}
	hi, lo := bits.Mul64(src.Uint64(), n)
	if lo < n {
		thresh := Threshold64(n)
		for lo < thresh {
			hi, lo = bits.Mul64(src.Uint64(), n)
		}
	}
	return hi
}
