// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entropy

import (
	"encoding/binary"
	"fmt"
	"hash"
	"time"

	"github.com/decred/dcrd/crypto/blake256"
	"github.com/decred/dcrrand/rngcore"
)

const (
	// calibrationSamples is the number of timing deltas measured when a
	// jitter source is created to decide whether the clock is usable.
	calibrationSamples = 128

	// DefaultRounds is the number of timing deltas conditioned into each
	// 32-byte output block unless changed with SetRounds.  Each delta is only
	// assumed to contribute a fraction of a bit, so the output is heavily
	// oversampled.
	DefaultRounds = 512

	// jitterMemSize is the size of the memory region touched by the
	// measured loops.  Memory access latency is a significant source of the
	// measured variation.
	jitterMemSize = 2048

	// jitterMemStep is the stride used to walk the memory region.  It is
	// coprime with jitterMemSize so every byte is eventually visited.
	jitterMemStep = 67
)

var monotonicStart = time.Now()

// monotonicNanos returns nanoseconds on the monotonic clock.
func monotonicNanos() int64 {
	return int64(time.Since(monotonicStart))
}

// JitterSource harvests entropy from timing jitter: the variation in the time
// taken to execute short memory-touching loops as observed through a
// high-resolution clock.  The raw deltas are conditioned with BLAKE-256 and
// each output block is chained with the previous one.
//
// A JitterSource is only created when a calibration pass finds the clock
// fine-grained and unpredictable enough.  It is not safe for concurrent access.
type JitterSource struct {
	clock  func() int64
	rounds int
	mem   [jitterMemSize]byte
	pos   int
	pool  [blake256.Size]byte

	prevDelta  int64
	prevDelta1 int64
}

// NewJitterSource calibrates the monotonic clock and returns a jitter source.
// An error with rngcore.ErrEntropyUnavailable is returned when the clock is
// too coarse or predictable to be used.
func NewJitterSource() (*JitterSource, error) {
	return NewJitterSourceWithTimer(monotonicNanos)
}

// NewJitterSourceWithTimer calibrates the provided timer and returns a jitter
// source measuring with it.  The timer must return a monotonically increasing
// count of the finest units available, such as nanoseconds or CPU cycles.
// Only the differences between readings are used.
func NewJitterSourceWithTimer(timer func() int64) (*JitterSource, error) {
	j := &JitterSource{clock: timer, rounds: DefaultRounds}
	if err := j.calibrate(); err != nil {
		return nil, err
	}
	return j, nil
}

// measure runs one loop over the memory region and returns its duration in
// clock units.  The number of iterations depends on the low bits of the start
// time, so it is itself unpredictable.
func (j *JitterSource) measure() int64 {
	start := j.clock()
	loops := 32 + int(uint64(start)&0x3f)
	for i := 0; i < loops; i++ {
		next := (j.pos + jitterMemStep) % jitterMemSize
		j.mem[j.pos] = j.mem[j.pos] + j.mem[next] ^ byte(i)
		j.pos = next
	}
	return j.clock() - start
}

// stuck updates the delta history with d and returns whether d carries no
// evidence of jitter: a zero delta, or a zero first or second derivative.
func (j *JitterSource) stuck(d int64) bool {
	delta1 := d - j.prevDelta
	delta2 := delta1 - j.prevDelta1
	j.prevDelta = d
	j.prevDelta1 = delta1
	return d == 0 || delta1 == 0 || delta2 == 0
}

// calibrate measures the clock and returns an error when it is unusable.
func (j *JitterSource) calibrate() error {
	var zeros, stuck int
	distinct := make(map[int64]struct{})
	for i := 0; i < calibrationSamples; i++ {
		d := j.measure()
		if d < 0 {
			return rngcore.MakeError(rngcore.ErrEntropyUnavailable,
				"jitter clock is not monotonic")
		}
		if d == 0 {
			zeros++
		}
		if j.stuck(d) {
			stuck++
		}
		distinct[d] = struct{}{}
	}

	switch {
	case zeros > calibrationSamples*9/10:
		str := fmt.Sprintf("jitter clock is too coarse: %d of %d samples "+
			"measured no elapsed time", zeros, calibrationSamples)
		return rngcore.MakeError(rngcore.ErrEntropyUnavailable, str)

	case len(distinct) < 2 || stuck > calibrationSamples*9/10:
		str := fmt.Sprintf("jitter clock is predictable: %d distinct deltas, "+
			"%d of %d samples stuck", len(distinct), stuck,
			calibrationSamples)
		return rngcore.MakeError(rngcore.ErrEntropyUnavailable, str)
	}

	log.Debugf("Jitter clock calibrated: %d distinct deltas, %d stuck, %d "+
		"zero of %d samples", len(distinct), stuck, zeros, calibrationSamples)
	return nil
}

// SetRounds sets the number of timing deltas conditioned into each 32-byte
// output block.  Fewer rounds are faster but only appropriate for timers whose
// deltas are known to carry more entropy.  It panics if rounds is less than
// one.
func (j *JitterSource) SetRounds(rounds int) {
	if rounds < 1 {
		panic("entropy: jitter rounds must be positive")
	}
	j.rounds = rounds
}

// block conditions the configured number of fresh timing deltas into the
// pool.
func (j *JitterSource) block(h hash.Hash) error {
	var buf [8]byte
	var stuck int
	h.Reset()
	h.Write(j.pool[:])
	for i := 0; i < j.rounds; i++ {
		d := j.measure()
		if j.stuck(d) {
			stuck++
		}
		binary.LittleEndian.PutUint64(buf[:], uint64(d))
		h.Write(buf[:])
	}
	if stuck > j.rounds*3/4 {
		str := fmt.Sprintf("too many stuck jitter samples: %d of %d", stuck,
			j.rounds)
		return rngcore.MakeError(rngcore.ErrEntropyTransient, str)
	}
	h.Sum(j.pool[:0])
	return nil
}

// Read fills p with conditioned jitter entropy.  Either all of p is filled or
// an error with rngcore.ErrEntropyTransient is returned when the clock stops
// producing usable jitter.
func (j *JitterSource) Read(p []byte) (int, error) {
	h := blake256.New()
	n := 0
	for n < len(p) {
		if err := j.block(h); err != nil {
			return 0, err
		}
		n += copy(p[n:], j.pool[:])
	}

	// Never return the pool itself since it seeds the next block.
	if err := j.block(h); err != nil {
		return 0, err
	}
	return n, nil
}

// lazyJitter is a reader that calibrates a JitterSource on first use.  A failed
// calibration is retried on the next read.
type lazyJitter struct {
	src *JitterSource
}

func (l *lazyJitter) Read(p []byte) (int, error) {
	if l.src == nil {
		src, err := NewJitterSource()
		if err != nil {
			return 0, err
		}
		l.src = src
	}
	return l.src.Read(p)
}
