// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rngcore

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"lukechampine.com/blake3"
)

// MaxSeedRetries is the maximum number of seeds FromReader draws before giving
// up when every drawn seed is rejected as degenerate.
const MaxSeedRetries = 10

// seedContext is the BLAKE3 key derivation context used to expand arbitrary
// seed material.  It must never change since doing so would change the
// generated streams of every expanded seed.
const seedContext = "github.com/decred/dcrrand 2026-10-19 seed expansion"

// FromReader constructs a generator by reading exactly seedLen bytes from r and
// passing them to fromSeed.
//
// When fromSeed rejects the seed with ErrDegenerateSeed, a new seed is drawn
// from r, up to MaxSeedRetries attempts in total, after which an error with
// ErrSeedRetriesExhausted is returned.  Any other error from fromSeed and any
// error reading from r are returned immediately.  Read errors which are not
// already an Error are wrapped with ErrEntropyUnavailable when the reader
// was exhausted and ErrEntropyTransient otherwise.
func FromReader[S any](r io.Reader, seedLen int, fromSeed func(seed []byte) (S, error)) (S, error) {
	var zero S
	seed := make([]byte, seedLen)
	defer clear(seed)
	for attempt := 1; attempt <= MaxSeedRetries; attempt++ {
		if _, err := io.ReadFull(r, seed); err != nil {
			return zero, seedReadError(err)
		}
		s, err := fromSeed(seed)
		if err == nil {
			return s, nil
		}
		if !errors.Is(err, ErrDegenerateSeed) {
			return zero, err
		}
		log.Debugf("Rejected degenerate seed (attempt %d of %d)", attempt,
			MaxSeedRetries)
	}

	str := fmt.Sprintf("all %d seeds drawn from the source were degenerate",
		MaxSeedRetries)
	return zero, MakeError(ErrSeedRetriesExhausted, str)
}

// seedReadError classifies an error encountered while reading seed material.
func seedReadError(err error) error {
	var e Error
	if errors.As(err, &e) {
		return err
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return WrapError(ErrEntropyUnavailable, "seed source exhausted", err)
	}
	return WrapError(ErrEntropyTransient, "unable to read seed", err)
}

// CheckSeedLength returns an error with ErrSeedLength when the seed does not
// have the wanted length.
func CheckSeedLength(seed []byte, want int) error {
	if len(seed) != want {
		str := fmt.Sprintf("seed is %d bytes instead of the required %d",
			len(seed), want)
		return MakeError(ErrSeedLength, str)
	}
	return nil
}

// IsZero returns whether every byte of b is zero.  The check runs in time that
// depends only on the length of b.
func IsZero(b []byte) bool {
	var acc byte
	for _, v := range b {
		acc |= v
	}
	return acc == 0
}

// ExpandSeed fills dst with seed bytes derived from arbitrary material, such as
// a passphrase or a short integer, using BLAKE3 key derivation.  The same
// material always expands to the same bytes for a given length.
//
// The expanded bytes are only as unpredictable as the material itself.
func ExpandSeed(dst, material []byte) {
	blake3.DeriveKey(dst, seedContext, material)
}

// SeedFromUint64 fills dst with seed bytes derived from v.  It is intended for
// reproducible simulations and tests where a seed is more conveniently given
// as a number.
func SeedFromUint64(dst []byte, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	ExpandSeed(dst, b[:])
}
