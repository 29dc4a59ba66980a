// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dist

import (
	"github.com/decred/dcrrand/rngcore"
)

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Alphanumeric returns an ASCII letter or digit drawn uniformly from the 62
// possibilities.  The top 6 bits of a 32-bit word select the character and
// values past the end of the set are rejected.
func Alphanumeric(src rngcore.Source) byte {
	for {
		v := src.Uint32() >> (32 - 6)
		if v < uint32(len(alphanumeric)) {
			return alphanumeric[v]
		}
	}
}

// AlphanumericString returns a string of n characters drawn by Alphanumeric.
func AlphanumericString(src rngcore.Source, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = Alphanumeric(src)
	}
	return string(b)
}

const (
	// surrogateGap is the number of UTF-16 surrogate code points, which are
	// not valid Unicode scalar values.
	surrogateGap = 0xdfff - 0xd800 + 1

	maxRune = 0x10ffff
)

var runeRange = Must(NewUniform[uint32](surrogateGap, maxRune+1))

// Rune returns a Unicode scalar value drawn uniformly from all of them.
// Surrogate code points are never returned.
func Rune(src rngcore.Source) rune {
	n := runeRange.Sample(src)
	if n <= 0xdfff {
		n -= surrogateGap
	}
	return rune(n)
}
