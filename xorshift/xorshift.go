// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package xorshift implements Marsaglia's Xorshift128 generator.
//
// Xorshift128 is very fast and has a period of 2^128 - 1, but it is not
// suitable for cryptographic purposes since its state is trivially recovered
// from its output.  The all-zero state is a fixed point of the generator, so
// all-zero seeds are rejected.
//
// Reference: Marsaglia, George (July 2003). "Xorshift RNGs". Journal of
// Statistical Software. Vol. 8 (Issue 14).
package xorshift

import (
	"encoding/binary"
	"io"

	"github.com/decred/dcrrand/entropy"
	"github.com/decred/dcrrand/rngcore"
)

// SeedSize is the size of a generator seed in bytes.  The seed is read as four
// little-endian 32-bit state words.
const SeedSize = 16

// Source is an Xorshift128 random number generator.  It is not safe for
// concurrent access.
type Source struct {
	x, y, z, w uint32
}

// New returns a generator for the given seed.  It returns an error with
// rngcore.ErrDegenerateSeed for the all-zero seed.
func New(seed [SeedSize]byte) (*Source, error) {
	if rngcore.IsZero(seed[:]) {
		return nil, rngcore.MakeError(rngcore.ErrDegenerateSeed,
			"xorshift seed must not be all zero")
	}
	return &Source{
		x: binary.LittleEndian.Uint32(seed[0:4]),
		y: binary.LittleEndian.Uint32(seed[4:8]),
		z: binary.LittleEndian.Uint32(seed[8:12]),
		w: binary.LittleEndian.Uint32(seed[12:16]),
	}, nil
}

// FromSeed returns a generator for the given seed.  The seed must be exactly
// SeedSize bytes and not all zero.
func FromSeed(seed []byte) (*Source, error) {
	if err := rngcore.CheckSeedLength(seed, SeedSize); err != nil {
		return nil, err
	}
	var s [SeedSize]byte
	copy(s[:], seed)
	return New(s)
}

// FromReader returns a generator seeded with SeedSize bytes read from r.  An
// all-zero seed is discarded and another one read, up to
// rngcore.MaxSeedRetries times.
func FromReader(r io.Reader) (*Source, error) {
	return rngcore.FromReader(r, SeedSize, FromSeed)
}

// FromEntropy returns a generator seeded from the default entropy chain.
func FromEntropy() (*Source, error) {
	return FromReader(entropy.NewChain())
}

// FromUint64 returns a generator with a seed derived from v.
func FromUint64(v uint64) *Source {
	var s [SeedSize]byte
	for {
		rngcore.SeedFromUint64(s[:], v)
		if g, err := New(s); err == nil {
			return g
		}
		// Deriving an all-zero seed is practically impossible, but would
		// otherwise be a fixed point.
		v++
	}
}

// Uint32 returns the next word of the stream.
func (s *Source) Uint32() uint32 {
	t := s.x ^ (s.x << 11)
	s.x, s.y, s.z = s.y, s.z, s.w
	s.w = s.w ^ (s.w >> 19) ^ (t ^ (t >> 8))
	return s.w
}

// Uint64 returns two consecutive words with the first forming the low half.
func (s *Source) Uint64() uint64 {
	return rngcore.Uint64ViaUint32(s)
}

// FillBytes fills dst with the little-endian bytes of consecutive words.
func (s *Source) FillBytes(dst []byte) {
	rngcore.FillBytesViaUint32(s, dst)
}

// Read fills p and never errors.
func (s *Source) Read(p []byte) (int, error) {
	s.FillBytes(p)
	return len(p), nil
}

// String returns a description of the generator that does not reveal its
// state.
func (s *Source) String() string {
	return "xorshift.Source{}"
}

// Verify Source satisfies the rngcore interface.
var _ rngcore.Source = (*Source)(nil)
