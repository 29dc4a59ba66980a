// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dist

import (
	"iter"

	"github.com/decred/dcrrand/rngcore"
)

// Sampler is implemented by distributions which produce values of type T.
type Sampler[T any] interface {
	Sample(src rngcore.Source) T
}

// Samples returns an unbounded sequence of samples drawn from d.  The sequence
// draws from src lazily, so it must not be iterated concurrently with other
// uses of src.
func Samples[T any](src rngcore.Source, d Sampler[T]) iter.Seq[T] {
	return SamplesFunc(src, d.Sample)
}

// SamplesFunc returns an unbounded sequence of values produced by calling
// sample with src, such as StandardNormal or Alphanumeric.
func SamplesFunc[T any](src rngcore.Source, sample func(rngcore.Source) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			if !yield(sample(src)) {
				return
			}
		}
	}
}
