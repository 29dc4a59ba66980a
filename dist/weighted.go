// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math/bits"

	"github.com/decred/dcrrand/rngcore"
)

// WeightedIndex is a distribution over the indices of a list of weights where
// each index is drawn with probability proportional to its weight.
type WeightedIndex struct {
	// cumulative holds the running totals of the weights, so
	// cumulative[i] is the sum of the weights up to and including index i.
	cumulative []uint32
	dist       Uniform[uint32]
}

// NewWeightedIndex returns a distribution over the indices of weights.  Zero
// weights are permitted and their indices are never drawn.  An error is
// returned when there are no weights (ErrNoItems), every weight is zero
// (ErrAllWeightsZero), or the weights sum to more than the maximum uint32
// (ErrWeightOverflow).
func NewWeightedIndex(weights []uint32) (*WeightedIndex, error) {
	if len(weights) == 0 {
		return nil, makeError(ErrNoItems, "no weights provided")
	}
	cumulative := make([]uint32, len(weights))
	var total, carry uint32
	for i, w := range weights {
		total, carry = bits.Add32(total, w, 0)
		if carry != 0 {
			str := fmt.Sprintf("sum of weights overflows at index %d", i)
			return nil, makeError(ErrWeightOverflow, str)
		}
		cumulative[i] = total
	}
	if total == 0 {
		return nil, makeError(ErrAllWeightsZero, "all weights are zero")
	}
	dist, err := NewUniform(0, total)
	if err != nil {
		return nil, err
	}
	return &WeightedIndex{cumulative: cumulative, dist: dist}, nil
}

// Len returns the number of indices of the distribution.
func (w *WeightedIndex) Len() int {
	return len(w.cumulative)
}

// Total returns the sum of the weights.
func (w *WeightedIndex) Total() uint32 {
	return w.cumulative[len(w.cumulative)-1]
}

// Sample returns an index drawn with probability proportional to its weight.
func (w *WeightedIndex) Sample(src rngcore.Source) int {
	return w.search(w.dist.Sample(src))
}

// search returns the first index whose running total exceeds v.  The
// midpoint rounds up so the loop always narrows to a single index.
func (w *WeightedIndex) search(v uint32) int {
	cum := w.cumulative
	if v < cum[0] {
		return 0
	}
	idx := 0
	n := len(cum)
	for n > 1 {
		i := idx + n/2
		if cum[i] <= v {
			idx = i
			n++
		}
		n /= 2
	}
	return idx + 1
}

// Weighted pairs an item with its weight.
type Weighted[T any] struct {
	Item   T
	Weight uint32
}

// WeightedChoice is a distribution over a list of items where each item is
// drawn with probability proportional to its weight.
type WeightedChoice[T any] struct {
	items []T
	index *WeightedIndex
}

// NewWeightedChoice returns a distribution over the items.  It returns the
// same errors as NewWeightedIndex.
func NewWeightedChoice[T any](items []Weighted[T]) (*WeightedChoice[T], error) {
	weights := make([]uint32, len(items))
	values := make([]T, len(items))
	for i, item := range items {
		weights[i] = item.Weight
		values[i] = item.Item
	}
	idx, err := NewWeightedIndex(weights)
	if err != nil {
		return nil, err
	}
	return &WeightedChoice[T]{items: values, index: idx}, nil
}

// Sample returns a copy of an item drawn with probability proportional to its
// weight.
func (w *WeightedChoice[T]) Sample(src rngcore.Source) T {
	return w.items[w.index.Sample(src)]
}
