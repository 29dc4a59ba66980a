// Copyright (c) 2024-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rand

import (
	"io"
	"math/big"
	"sync"
	"time"

	"github.com/decred/dcrrand/dist"
)

type lockingPRNG struct {
	*PRNG
	mu sync.Mutex
}

// globalRand returns the default PRNG, creating it on first use.  It is never
// recreated.
var globalRand = sync.OnceValue(func() *lockingPRNG {
	p, err := NewPRNG()
	if err != nil {
		panic(err)
	}
	return &lockingPRNG{PRNG: p}
})

func (p *lockingPRNG) Read(s []byte) (n int, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.PRNG.Read(s)
}

// locked calls f with the default PRNG while holding its mutex.  The mutex is
// released even when f panics.
func locked(f func(p *PRNG)) {
	g := globalRand()
	g.mu.Lock()
	defer g.mu.Unlock()

	f(g.PRNG)
}

// withGlobal returns the result of f called with the locked default PRNG.
func withGlobal[T any](f func(p *PRNG) T) (v T) {
	locked(func(p *PRNG) { v = f(p) })
	return v
}

// Reader returns the default cryptographically secure userspace PRNG that is
// periodically reseeded with fresh entropy.  Reads return an error with
// rngcore.ErrReseedFailed when a due reseed fails.
// The returned Reader is safe for concurrent access.
func Reader() io.Reader {
	return globalRand()
}

// Read fills b with random bytes obtained from the default userspace PRNG.
// Panics if a due reseed fails.
func Read(b []byte) {
	locked(func(p *PRNG) { p.FillBytes(b) })
}

// Uint32 returns a uniform random uint32.
func Uint32() uint32 {
	return withGlobal((*PRNG).Uint32)
}

// Uint64 returns a uniform random uint64.
func Uint64() uint64 {
	return withGlobal((*PRNG).Uint64)
}

// Uint32N returns a random uint32 in range [0,n) without modulo bias.
// Panics if n == 0.
func Uint32N(n uint32) uint32 {
	return withGlobal(func(p *PRNG) uint32 { return p.Uint32N(n) })
}

// Uint64N returns a random uint64 in range [0,n) without modulo bias.
// Panics if n == 0.
func Uint64N(n uint64) uint64 {
	return withGlobal(func(p *PRNG) uint64 { return p.Uint64N(n) })
}

// Int32 returns a random 31-bit non-negative integer as an int32 without
// modulo bias.
func Int32() int32 {
	return withGlobal((*PRNG).Int32)
}

// Int32N returns, as an int32, a random 31-bit non-negative integer in [0,n)
// without modulo bias.
// Panics if n <= 0.
func Int32N(n int32) int32 {
	return withGlobal(func(p *PRNG) int32 { return p.Int32N(n) })
}

// Int64 returns a random 63-bit non-negative integer as an int64 without
// modulo bias.
func Int64() int64 {
	return withGlobal((*PRNG).Int64)
}

// Int64N returns, as an int64, a random 63-bit non-negative integer in [0,n)
// without modulo bias.
// Panics if n <= 0.
func Int64N(n int64) int64 {
	return withGlobal(func(p *PRNG) int64 { return p.Int64N(n) })
}

// Int returns a non-negative integer without bias.
func Int() int {
	return withGlobal((*PRNG).Int)
}

// IntN returns, as an int, a random non-negative integer in [0,n) without
// modulo bias.
// Panics if n <= 0.
func IntN(n int) int {
	return withGlobal(func(p *PRNG) int { return p.IntN(n) })
}

// UintN returns, as an uint, a random integer in [0,n) without modulo bias.
// Panics if n == 0.
func UintN(n uint) uint {
	return withGlobal(func(p *PRNG) uint { return p.UintN(n) })
}

// Duration returns a random duration in [0,n) without modulo bias.
// Panics if n <= 0.
func Duration(n time.Duration) time.Duration {
	return withGlobal(func(p *PRNG) time.Duration { return p.Duration(n) })
}

// Shuffle randomizes the order of n elements by swapping the elements at
// indexes i and j.
// Panics if n < 0.
func Shuffle(n int, swap func(i, j int)) {
	locked(func(p *PRNG) { p.Shuffle(n, swap) })
}

// ShuffleSlice randomizes the order of all elements in s.
func ShuffleSlice[S ~[]E, E any](s S) {
	locked(func(p *PRNG) { dist.Shuffle[E](p, s) })
}

// BigInt returns a uniform random value in [0,max).
// Panics if max <= 0.
func BigInt(max *big.Int) *big.Int {
	return withGlobal(func(p *PRNG) *big.Int { return p.BigInt(max) })
}

// Float64 returns a uniform random float64 in [0,1).
func Float64() float64 {
	return withGlobal((*PRNG).Float64)
}

// NormFloat64 returns a normally distributed float64 with mean 0 and standard
// deviation 1.
func NormFloat64() float64 {
	return withGlobal((*PRNG).NormFloat64)
}

// ExpFloat64 returns an exponentially distributed float64 with rate 1.
func ExpFloat64() float64 {
	return withGlobal((*PRNG).ExpFloat64)
}
