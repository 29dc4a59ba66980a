// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/decred/dcrrand/rngcore"
	"golang.org/x/exp/constraints"
)

const (
	// float64Bits and float32Bits are the precisions of the float types,
	// including the implicit leading bit.
	float64Bits = 53
	float32Bits = 24
)

// Float64 returns a float64 in [0,1) built from the high 53 bits of a 64-bit
// word.
func Float64(src rngcore.Source) float64 {
	return float64(src.Uint64()>>(64-float64Bits)) * 0x1p-53
}

// Float64Open returns a float64 in (0,1).  The result is the midpoint of one
// of 2^52 equal subintervals.
func Float64Open(src rngcore.Source) float64 {
	return (float64(src.Uint64()>>(64-float64Bits+1)) + 0.5) * 0x1p-52
}

// Float64Closed returns a float64 in [0,1].
func Float64Closed(src rngcore.Source) float64 {
	const scale = 1 / float64(1<<float64Bits-1)
	return float64(src.Uint64()>>(64-float64Bits)) * scale
}

// Float64HighPrecision returns a float64 in [0,1) where every representable
// value is possible, including those below 2^-53.  The exponent is drawn from
// the number of leading zero bits and a second word refills the mantissa when
// the first one does not have enough bits left.
func Float64HighPrecision(src rngcore.Source) float64 {
	exp := -64
	x := src.Uint64()
	for x == 0 {
		exp -= 64
		if exp < -1074-64 {
			return 0
		}
		x = src.Uint64()
	}
	lz := bits.LeadingZeros64(x)
	if lz > 64-float64Bits {
		x = x<<lz | src.Uint64()>>(64-lz)
	} else {
		x <<= lz
	}
	exp -= lz
	return math.Ldexp(float64(x>>(64-float64Bits)), exp+64-float64Bits)
}

// Float32 returns a float32 in [0,1) built from the high 24 bits of a 32-bit
// word.
func Float32(src rngcore.Source) float32 {
	return float32(src.Uint32()>>(32-float32Bits)) * 0x1p-24
}

// Float32Open returns a float32 in (0,1).
func Float32Open(src rngcore.Source) float32 {
	return (float32(src.Uint32()>>(32-float32Bits+1)) + 0.5) * 0x1p-23
}

// Float32Closed returns a float32 in [0,1].
func Float32Closed(src rngcore.Source) float32 {
	const scale = 1 / float32(1<<float32Bits-1)
	return float32(src.Uint32()>>(32-float32Bits)) * scale
}

// UniformFloat is a uniform distribution over a half-open range of floats.
type UniformFloat[T constraints.Float] struct {
	low, high float64
}

// NewUniformFloat returns a uniform distribution over [low, high).  An error
// with ErrNonFinite is returned when either bound or the width of the range is
// not finite, and ErrEmptyRange unless low < high.
func NewUniformFloat[T constraints.Float](low, high T) (UniformFloat[T], error) {
	l, h := float64(low), float64(high)
	if math.IsNaN(l) || math.IsNaN(h) || math.IsInf(l, 0) || math.IsInf(h, 0) {
		str := fmt.Sprintf("non-finite bound in range [%v, %v)", low, high)
		return UniformFloat[T]{}, makeError(ErrNonFinite, str)
	}
	if l >= h {
		str := fmt.Sprintf("empty range [%v, %v)", low, high)
		return UniformFloat[T]{}, makeError(ErrEmptyRange, str)
	}
	if math.IsInf(h-l, 0) {
		str := fmt.Sprintf("width of range [%v, %v) is not finite", low,
			high)
		return UniformFloat[T]{}, makeError(ErrNonFinite, str)
	}
	return UniformFloat[T]{low: l, high: h}, nil
}

// Sample returns a value drawn uniformly from the range.  Results that round
// up to the upper bound are rejected.
func (u UniformFloat[T]) Sample(src rngcore.Source) T {
	scale := u.high - u.low
	for {
		v := T(u.low + scale*Float64(src))
		if float64(v) < u.high {
			return v
		}
	}
}
