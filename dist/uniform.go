// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"

	"github.com/decred/dcrrand/internal/uniform"
	"github.com/decred/dcrrand/rngcore"
	"golang.org/x/exp/constraints"
)

// bitSize returns the width of the integer type T in bits.
func bitSize[T constraints.Integer]() uint {
	var n uint
	for x := T(1); x != 0; x <<= 1 {
		n++
	}
	return n
}

// Uniform is a uniform distribution over a range of integers.
//
// Ranges of integer types of 32 bits or fewer consume 32-bit words from the
// source while 64-bit types consume 64-bit words.  Signed ranges are mapped
// onto unsigned ones by wrapping subtraction, so every range of a type is
// handled without overflow.
type Uniform[T constraints.Integer] struct {
	low T

	// span is the number of values in the range.  Zero means the range
	// covers the entire type and a word is returned unmodified.
	span   uint64
	thresh uint64
	wide   bool
}

func newUniform[T constraints.Integer](low T, span uint64) Uniform[T] {
	u := Uniform[T]{low: low, wide: bitSize[T]() > 32}
	if u.wide {
		u.span = span
		if span != 0 {
			u.thresh = uniform.Threshold64(span)
		}
	} else {
		u.span = span & 0xffffffff
		if u.span != 0 {
			u.thresh = uint64(uniform.Threshold32(uint32(u.span)))
		}
	}
	return u
}

// spanMask returns the mask which reduces a 64-bit difference to the width of
// T.
func spanMask[T constraints.Integer]() uint64 {
	n := bitSize[T]()
	if n == 64 {
		return ^uint64(0)
	}
	return 1<<n - 1
}

// NewUniform returns a uniform distribution over [low, high).  An error with
// ErrEmptyRange is returned unless low < high.
func NewUniform[T constraints.Integer](low, high T) (Uniform[T], error) {
	if low >= high {
		str := fmt.Sprintf("empty range [%d, %d)", low, high)
		return Uniform[T]{}, makeError(ErrEmptyRange, str)
	}
	span := (uint64(high) - uint64(low)) & spanMask[T]()
	return newUniform(low, span), nil
}

// NewUniformInclusive returns a uniform distribution over [low, high].  An
// error with ErrEmptyRange is returned when low > high.  The range covering
// every value of T returns source words unmodified.
func NewUniformInclusive[T constraints.Integer](low, high T) (Uniform[T], error) {
	if low > high {
		str := fmt.Sprintf("empty range [%d, %d]", low, high)
		return Uniform[T]{}, makeError(ErrEmptyRange, str)
	}
	span := (uint64(high) - uint64(low) + 1) & spanMask[T]()
	return newUniform(low, span), nil
}

// Low returns the lower bound of the range.
func (u Uniform[T]) Low() T {
	return u.low
}

// Sample returns a value drawn uniformly from the range.
func (u Uniform[T]) Sample(src rngcore.Source) T {
	if u.wide {
		for {
			raw := src.Uint64()
			if u.span == 0 {
				return T(raw)
			}
			if v, ok := uniform.Below64(raw, u.span, u.thresh); ok {
				return T(uint64(u.low) + v)
			}
		}
	}

	span, thresh := uint32(u.span), uint32(u.thresh)
	for {
		raw := src.Uint32()
		if span == 0 {
			return T(raw)
		}
		if v, ok := uniform.Below32(raw, span, thresh); ok {
			return T(uint64(u.low) + uint64(v))
		}
	}
}

// SampleSingle returns a value drawn uniformly from [low, high) without
// constructing a distribution first.  It panics unless low < high.
func SampleSingle[T constraints.Integer](src rngcore.Source, low, high T) T {
	u, err := NewUniform(low, high)
	if err != nil {
		panic(err)
	}
	return u.Sample(src)
}
