// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dist

import (
	"iter"
	"math"

	"github.com/decred/dcrrand/internal/uniform"
	"github.com/decred/dcrrand/rngcore"
)

// index returns a random index in [0,n).  Bounds that fit in 32 bits consume
// a 32-bit word so results do not depend on the platform word size.
func index(src rngcore.Source, n int) int {
	if uint64(n) <= math.MaxUint32 {
		return int(uniform.Uint32N(src, uint32(n)))
	}
	return int(uniform.Uint64N(src, uint64(n)))
}

// Shuffle randomizes the order of the elements of s using the Fisher-Yates
// algorithm.
func Shuffle[T any](src rngcore.Source, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := index(src, i+1)
		s[i], s[j] = s[j], s[i]
	}
}

// Choose returns an element of s drawn uniformly.  It returns false when s is
// empty.
func Choose[T any](src rngcore.Source, s []T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	return s[index(src, len(s))], true
}

// SampleReservoir returns up to k elements of seq drawn uniformly without
// replacement in a single pass.  Fewer than k elements are returned only when
// seq yields fewer than k.  The order of the returned elements is not
// specified.
func SampleReservoir[T any](src rngcore.Source, seq iter.Seq[T], k int) []T {
	if k <= 0 {
		return nil
	}
	reservoir := make([]T, 0, k)
	var seen int
	for v := range seq {
		seen++
		if len(reservoir) < k {
			reservoir = append(reservoir, v)
			continue
		}
		if j := index(src, seen); j < k {
			reservoir[j] = v
		}
	}
	return reservoir
}
