// Copyright (c) 2024-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rand

import (
	"time"

	"github.com/decred/dcrrand/chacha"
	"github.com/decred/dcrrand/entropy"
	"github.com/decred/dcrrand/reseed"
	"github.com/decred/dcrrand/rngcore"
)

const (
	maxCipherRead     = 4 * 1024 * 1024 // 4 MiB
	maxCipherDuration = 20 * time.Second
)

// PRNG is a cryptographically secure pseudorandom number generator capable of
// generating random bytes and integers.  PRNG methods are not safe for
// concurrent access.
type PRNG struct {
	gen *reseed.Generator[*chacha.Source]
}

// NewPRNG returns a seeded PRNG.  An error is only returned if the initial
// seeding fails.
func NewPRNG() (*PRNG, error) {
	gen, err := reseed.NewSeeded(reseed.Config[*chacha.Source]{
		Threshold: maxCipherRead,
		MaxAge:    maxCipherDuration,
		Entropy:   entropy.NewChain(),
		Reseed:    chacha.FromReader,
		Policy:    reseed.FailOpen,
	})
	if err != nil {
		return nil, err
	}
	return &PRNG{gen: gen}, nil
}

// Read fills s with len(s) of cryptographically-secure random bytes.  When a
// due reseed fails, s is still filled from the existing state and an error
// with rngcore.ErrReseedFailed is returned.
func (p *PRNG) Read(s []byte) (n int, err error) {
	return p.gen.Read(s)
}

// FillBytes fills s with cryptographically-secure random bytes.  It panics if
// a due reseed fails.
func (p *PRNG) FillBytes(s []byte) {
	p.gen.FillBytes(s)
}

// Verify PRNG satisfies the rngcore interface.
var _ rngcore.Source = (*PRNG)(nil)
