// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package reseed wraps a random number generator so that it is periodically
// replaced with fresh state drawn from an entropy source.
//
// Reseeding limits how much output is produced from any single state, so a
// compromise of the state exposes at most a bounded window of past and future
// output.  The generator is reseeded before serving a request when the bytes
// produced since the last reseed plus the size of the request reach a
// threshold, or when a maximum age has elapsed.  The check happens once per
// request, so a single request larger than the threshold is served entirely
// from one state.
package reseed

import (
	"fmt"
	"io"
	"time"

	"github.com/decred/dcrrand/entropy"
	"github.com/decred/dcrrand/rngcore"
)

// Policy selects the behavior of a generator when reseeding fails.
type Policy uint8

const (
	// FailOpen continues to serve output from the existing state when a
	// reseed fails.  The fallible Read method reports the failure alongside
	// the output, and the next attempt is deferred by 1/256 of the reseed
	// threshold and maximum age.
	FailOpen Policy = iota

	// FailClosed refuses to produce output until a reseed succeeds.  Every
	// request retries the reseed.
	FailClosed
)

// String returns the policy as a human-readable string.
func (p Policy) String() string {
	switch p {
	case FailOpen:
		return "fail-open"
	case FailClosed:
		return "fail-closed"
	}
	return fmt.Sprintf("Policy(%d)", uint8(p))
}

// Config describes how and when a Generator is reseeded.
type Config[S rngcore.Source] struct {
	// Threshold is the number of bytes produced by a state after which the
	// generator is reseeded.  A threshold of zero or less disables reseeding
	// by volume.
	Threshold int64

	// MaxAge is the duration after which the generator is reseeded.  Zero
	// disables reseeding by age.
	MaxAge time.Duration

	// Entropy is the source of fresh seed material.  The default entropy
	// chain is used when nil.
	Entropy io.Reader

	// Reseed creates a new state from the entropy source.  It is required.
	// Constructors such as chacha.FromReader satisfy it directly.
	Reseed func(io.Reader) (S, error)

	// Policy selects the behavior when reseeding fails.
	Policy Policy
}

// Generator is a random number generator which reseeds itself according to a
// Config.  It implements rngcore.Source.  It is not safe for concurrent
// access.
type Generator[S rngcore.Source] struct {
	inner S
	cfg   Config[S]
	now   func() time.Time

	// remaining is the number of bytes that may be produced before the
	// next reseed and deadline is the time of the next reseed by age.
	remaining int64
	deadline  time.Time

	reseeds uint64
}

// New returns a generator serving output from inner until the first reseed.
// It panics if cfg.Reseed is nil.
func New[S rngcore.Source](inner S, cfg Config[S]) *Generator[S] {
	if cfg.Reseed == nil {
		panic("reseed: config has no reseed function")
	}
	if cfg.Entropy == nil {
		cfg.Entropy = entropy.NewChain()
	}
	g := &Generator[S]{inner: inner, cfg: cfg, now: time.Now}
	g.remaining = cfg.Threshold
	g.deadline = g.now().Add(cfg.MaxAge)
	return g
}

// NewSeeded returns a generator whose initial state is also created by
// cfg.Reseed.  An error is returned if the initial seeding fails, regardless
// of the policy.
func NewSeeded[S rngcore.Source](cfg Config[S]) (*Generator[S], error) {
	if cfg.Reseed == nil {
		panic("reseed: config has no reseed function")
	}
	if cfg.Entropy == nil {
		cfg.Entropy = entropy.NewChain()
	}
	inner, err := cfg.Reseed(cfg.Entropy)
	if err != nil {
		return nil, rngcore.WrapError(rngcore.ErrReseedFailed,
			"unable to seed generator", err)
	}
	return New(inner, cfg), nil
}

// Reseeds returns the number of successful reseeds.
func (g *Generator[S]) Reseeds() uint64 {
	return g.reseeds
}

// Reseed immediately replaces the state.  On failure the existing state is
// kept and an error with rngcore.ErrReseedFailed wrapping the entropy error is
// returned.
func (g *Generator[S]) Reseed() error {
	inner, err := g.cfg.Reseed(g.cfg.Entropy)
	if err != nil {
		if g.cfg.Policy == FailOpen {
			g.remaining = g.cfg.Threshold >> 8
			g.deadline = g.now().Add(g.cfg.MaxAge >> 8)
		}
		log.Warnf("Reseeding failed (%v): %v", g.cfg.Policy, err)
		return rngcore.WrapError(rngcore.ErrReseedFailed,
			"unable to reseed generator", err)
	}

	g.inner = inner
	g.remaining = g.cfg.Threshold
	g.deadline = g.now().Add(g.cfg.MaxAge)
	g.reseeds++
	log.Debugf("Reseeded generator (%d reseeds)", g.reseeds)
	return nil
}

// due returns whether a request for n bytes must be preceded by a reseed.
func (g *Generator[S]) due(n int) bool {
	if g.cfg.Threshold > 0 && g.remaining <= int64(n) {
		return true
	}
	return g.cfg.MaxAge > 0 && !g.now().Before(g.deadline)
}

// prepare reseeds if needed before a request for n bytes and accounts for the
// request.  The request must not be served when an error is returned under
// the fail-closed policy.
func (g *Generator[S]) prepare(n int) error {
	var err error
	if g.due(n) {
		err = g.Reseed()
	}
	if err == nil || g.cfg.Policy == FailOpen {
		g.remaining -= int64(n)
	}
	return err
}

// mustPrepare is prepare for the infallible methods.
func (g *Generator[S]) mustPrepare(n int) {
	if err := g.prepare(n); err != nil {
		panic(err)
	}
}

// Uint32 returns the next 32-bit word.  It panics if a required reseed fails.
func (g *Generator[S]) Uint32() uint32 {
	g.mustPrepare(4)
	return g.inner.Uint32()
}

// Uint64 returns the next 64-bit word.  It panics if a required reseed fails.
func (g *Generator[S]) Uint64() uint64 {
	g.mustPrepare(8)
	return g.inner.Uint64()
}

// FillBytes fills dst.  It panics if a required reseed fails.
func (g *Generator[S]) FillBytes(dst []byte) {
	g.mustPrepare(len(dst))
	g.inner.FillBytes(dst)
}

// Read fills p.  When a required reseed fails, an error with
// rngcore.ErrReseedFailed is returned.  Under the fail-open policy p is still
// filled from the existing state and n is len(p), while under the fail-closed
// policy n is zero.
func (g *Generator[S]) Read(p []byte) (int, error) {
	err := g.prepare(len(p))
	if err != nil && g.cfg.Policy == FailClosed {
		return 0, err
	}
	g.inner.FillBytes(p)
	return len(p), err
}

// String returns a description of the generator that does not reveal its
// state.
func (g *Generator[S]) String() string {
	return fmt.Sprintf("reseed.Generator{threshold: %d, maxAge: %v, "+
		"policy: %v, reseeds: %d}", g.cfg.Threshold, g.cfg.MaxAge,
		g.cfg.Policy, g.reseeds)
}

// Verify Generator satisfies the rngcore interface.
var _ rngcore.Source = (*Generator[rngcore.Source])(nil)
