// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mock provides deterministic sources with fully controlled output for
// testing code that consumes random numbers.  None of the sources in this
// package are random in any sense and they must never be used outside of
// tests and demonstrations.
package mock

import (
	"github.com/decred/dcrrand/rngcore"
)

// StepSource returns an arithmetic sequence of 64-bit words: the initial value
// followed by successive additions of the increment, wrapping on overflow.
// 32-bit reads return the low half of the next 64-bit word.
type StepSource struct {
	v   uint64
	inc uint64
}

// NewStepSource returns a source yielding initial, initial+inc, ...
func NewStepSource(initial, inc uint64) *StepSource {
	return &StepSource{v: initial, inc: inc}
}

// Uint64 returns the next value of the sequence.
func (s *StepSource) Uint64() uint64 {
	v := s.v
	s.v += s.inc
	return v
}

// Uint32 returns the low half of the next value of the sequence.
func (s *StepSource) Uint32() uint32 {
	return rngcore.Uint32ViaUint64(s)
}

// FillBytes fills dst with the little-endian bytes of successive values.
func (s *StepSource) FillBytes(dst []byte) {
	rngcore.FillBytesViaUint64(s, dst)
}

// Read fills p and never errors.
func (s *StepSource) Read(p []byte) (int, error) {
	s.FillBytes(p)
	return len(p), nil
}

// SequenceSource replays a fixed list of 64-bit words, starting over from the
// beginning once every word has been returned.  32-bit reads return the low
// half of the next word.  It is useful for steering sampling algorithms
// through specific branches, such as rejection zones.
type SequenceSource struct {
	words []uint64
	next  int
	calls int
}

// NewSequenceSource returns a source replaying words.  It panics if words is
// empty.
func NewSequenceSource(words ...uint64) *SequenceSource {
	if len(words) == 0 {
		panic("mock: sequence source requires at least one word")
	}
	return &SequenceSource{words: append([]uint64(nil), words...)}
}

// Uint64 returns the next word of the sequence.
func (s *SequenceSource) Uint64() uint64 {
	v := s.words[s.next]
	s.next = (s.next + 1) % len(s.words)
	s.calls++
	return v
}

// Uint32 returns the low half of the next word of the sequence.
func (s *SequenceSource) Uint32() uint32 {
	return uint32(s.Uint64())
}

// FillBytes fills dst with the little-endian bytes of successive words.
func (s *SequenceSource) FillBytes(dst []byte) {
	rngcore.FillBytesViaUint64(s, dst)
}

// Read fills p and never errors.
func (s *SequenceSource) Read(p []byte) (int, error) {
	s.FillBytes(p)
	return len(p), nil
}

// Calls returns the number of words consumed so far.
func (s *SequenceSource) Calls() int {
	return s.calls
}

// Verify the sources satisfy the rngcore interface.
var (
	_ rngcore.Source = (*StepSource)(nil)
	_ rngcore.Source = (*SequenceSource)(nil)
)
