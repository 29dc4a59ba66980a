// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"

	"github.com/decred/dcrrand/rngcore"
)

// Bernoulli is the distribution of a boolean which is true with probability p.
type Bernoulli struct {
	// threshold is p scaled to 2^64.  Since 2^64 does not fit, p == 1 is
	// represented by always.
	threshold uint64
	always    bool
}

// NewBernoulli returns a Bernoulli distribution.  An error with
// ErrInvalidParam is returned unless p is in [0,1].
func NewBernoulli(p float64) (Bernoulli, error) {
	if !(p >= 0 && p <= 1) {
		str := fmt.Sprintf("probability %v is not in [0, 1]", p)
		return Bernoulli{}, makeError(ErrInvalidParam, str)
	}
	if p == 1 {
		return Bernoulli{always: true}, nil
	}
	return Bernoulli{threshold: uint64(p * 0x1p64)}, nil
}

// Sample returns true with probability p.  A word is consumed even when p is
// zero or one.
func (b Bernoulli) Sample(src rngcore.Source) bool {
	v := src.Uint64()
	if b.always {
		return true
	}
	return v < b.threshold
}

// WeightedBool returns true with probability 1/n.  It always returns true
// without consuming a word when n is zero or one.
func WeightedBool(src rngcore.Source, n uint32) bool {
	return n <= 1 || SampleSingle(src, 0, n) == 0
}
