// Copyright (c) 2024-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rand

import (
	cryptorand "crypto/rand"
	"math/big"
	"time"

	"github.com/decred/dcrrand/dist"
	"github.com/decred/dcrrand/internal/uniform"
)

// Uint32 returns a uniform random uint32.  It panics if a due reseed fails,
// as do all of the methods derived from it.
func (p *PRNG) Uint32() uint32 {
	return p.gen.Uint32()
}

// Uint64 returns a uniform random uint64.  It panics if a due reseed fails.
func (p *PRNG) Uint64() uint64 {
	return p.gen.Uint64()
}

// Uint32N returns a random uint32 in range [0,n) without modulo bias.
// Panics if n == 0.
func (p *PRNG) Uint32N(n uint32) uint32 {
	return uniform.Uint32N(p, n)
}

// Uint64N returns a random uint64 in range [0,n) without modulo bias.
// Panics if n == 0.
func (p *PRNG) Uint64N(n uint64) uint64 {
	return uniform.Uint64N(p, n)
}

// Int32 returns a random 31-bit non-negative integer as an int32 without
// modulo bias.
func (p *PRNG) Int32() int32 {
	return int32(p.Uint32() & 0x7FFFFFFF)
}

// Int32N returns, as an int32, a random 31-bit non-negative integer in [0,n)
// without modulo bias.
// Panics if n <= 0.
func (p *PRNG) Int32N(n int32) int32 {
	if n <= 0 {
		panic("rand: invalid argument to Int32N")
	}
	return int32(p.Uint32N(uint32(n)))
}

// Int64 returns a random 63-bit non-negative integer as an int64 without
// modulo bias.
func (p *PRNG) Int64() int64 {
	return int64(p.Uint64() & 0x7FFFFFFF_FFFFFFFF)
}

// Int64N returns, as an int64, a random 63-bit non-negative integer in [0,n)
// without modulo bias.
// Panics if n <= 0.
func (p *PRNG) Int64N(n int64) int64 {
	if n <= 0 {
		panic("rand: invalid argument to Int64N")
	}
	return int64(p.Uint64N(uint64(n)))
}

// Int returns a non-negative integer without bias.
func (p *PRNG) Int() int {
	return int(uint(p.Uint64()) << 1 >> 1)
}

// IntN returns, as an int, a random non-negative integer in [0,n) without
// modulo bias.
// Panics if n <= 0.
func (p *PRNG) IntN(n int) int {
	if n <= 0 {
		panic("rand: invalid argument to IntN")
	}
	return int(p.Uint64N(uint64(n)))
}

// UintN returns, as an uint, a random integer in [0,n) without modulo bias.
// Panics if n == 0.
func (p *PRNG) UintN(n uint) uint {
	return uint(p.Uint64N(uint64(n)))
}

// Duration returns a random duration in [0,n) without modulo bias.
// Panics if n <= 0.
func (p *PRNG) Duration(n time.Duration) time.Duration {
	if n <= 0 {
		panic("rand: invalid argument to Duration")
	}
	return time.Duration(p.Uint64N(uint64(n)))
}

// Shuffle randomizes the order of n elements by swapping the elements at
// indexes i and j.
// Panics if n < 0.
func (p *PRNG) Shuffle(n int, swap func(i, j int)) {
	if n < 0 {
		panic("rand: invalid argument to Shuffle")
	}

	// Fisher-Yates shuffle: https://en.wikipedia.org/wiki/Fisher%E2%80%93Yates_shuffle
	for i := n - 1; i > 0; i-- {
		j := int(p.Uint64N(uint64(i + 1)))
		swap(i, j)
	}
}

// BigInt returns a uniform random value in [0,max).
// Panics if max <= 0 or a due reseed fails.
func (p *PRNG) BigInt(max *big.Int) *big.Int {
	// Will never error since reads through fillReader panic instead.
	n, _ := cryptorand.Int(fillReader{p}, max)
	return n
}

// fillReader reads through FillBytes so a failed reseed panics rather than
// being dropped by io.ReadFull, which ignores errors returned with a full
// read.
type fillReader struct {
	p *PRNG
}

func (r fillReader) Read(s []byte) (int, error) {
	r.p.FillBytes(s)
	return len(s), nil
}

// Float64 returns a uniform random float64 in [0,1).
func (p *PRNG) Float64() float64 {
	return dist.Float64(p)
}

// NormFloat64 returns a normally distributed float64 with mean 0 and standard
// deviation 1.
func (p *PRNG) NormFloat64() float64 {
	return dist.StandardNormal(p)
}

// ExpFloat64 returns an exponentially distributed float64 with rate 1.
func (p *PRNG) ExpFloat64() float64 {
	return dist.StandardExp(p)
}
