// Copyright (c) 2024-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chacha implements a cryptographically secure random number generator
// backed by the ChaCha20 stream cipher.
//
// The generator keystream is produced four 64-byte blocks at a time and served
// through an rngcore.BlockBuffer, so the byte stream produced by a seed is the
// ChaCha20 keystream for the key equal to the seed, a nonce derived from the
// stream number, and an initial block counter of zero.
package chacha

import (
	"encoding/binary"
	"io"
	"math/bits"

	"github.com/decred/dcrrand/entropy"
	"github.com/decred/dcrrand/rngcore"
	"golang.org/x/crypto/chacha20"
)

const (
	// SeedSize is the size of a generator seed in bytes.  The seed is used
	// directly as the ChaCha20 key.
	SeedSize = chacha20.KeySize

	// blocksPerRefill is the number of 64-byte ChaCha blocks generated by
	// each invocation of the core.
	blocksPerRefill = 4

	// blockSize is the size of a ChaCha block in bytes.
	blockSize = 64

	// wordsPerBlock is the number of 32-bit words in a ChaCha block.
	wordsPerBlock = blockSize / 4

	// BlockLen is the number of 32-bit words produced per core invocation.
	BlockLen = blocksPerRefill * wordsPerBlock

	// refillsPerNonce is the number of refills which exhaust the 32-bit
	// ChaCha20 block counter for a single nonce.
	refillsPerNonce = (1 << 32) / blocksPerRefill
)

// nonce implements a 12-byte little endian counter suitable for use as an
// incrementing ChaCha20 nonce.  The low 32 bits extend the block counter once
// it is exhausted, while the upper 64 bits select the stream.
type nonce [chacha20.NonceSize]byte

func (n *nonce) inc() {
	n0 := binary.LittleEndian.Uint32(n[0:4])
	n1 := binary.LittleEndian.Uint32(n[4:8])
	n2 := binary.LittleEndian.Uint32(n[8:12])

	var carry uint32
	n0, carry = bits.Add32(n0, 1, carry)
	n1, carry = bits.Add32(n1, 0, carry)
	n2, _ = bits.Add32(n2, 0, carry)

	binary.LittleEndian.PutUint32(n[0:4], n0)
	binary.LittleEndian.PutUint32(n[4:8], n1)
	binary.LittleEndian.PutUint32(n[8:12], n2)
}

// Core is the ChaCha20 block core.  Each call to Generate produces the next
// 256 bytes of keystream as 64 little-endian words.
type Core struct {
	key     [chacha20.KeySize]byte
	nonce   nonce
	cipher  *chacha20.Cipher
	refills uint32
	buf     [blocksPerRefill * blockSize]byte
}

// NewCore returns a core keyed by seed producing the given stream.  Distinct
// streams of the same seed are independent.
func NewCore(seed *[SeedSize]byte, stream uint64) *Core {
	c := &Core{key: *seed}
	binary.LittleEndian.PutUint64(c.nonce[4:12], stream)
	c.rekey()
	return c
}

// rekey creates the cipher for the current key and nonce with the block
// counter at zero.
func (c *Core) rekey() {
	// Never errors with correct key and nonce sizes.
	cipher, _ := chacha20.NewUnauthenticatedCipher(c.key[:], c.nonce[:])
	c.cipher = cipher
	c.refills = 0
}

// BlockLen returns the number of words produced by each call to Generate.
func (c *Core) BlockLen() int {
	return BlockLen
}

// Generate fills results with the next 64 words of keystream.
func (c *Core) Generate(results []uint32) {
	if c.refills == refillsPerNonce {
		// The 32-bit block counter is exhausted.  Continue the stream under
		// the next nonce instead of letting the cipher panic.
		c.nonce.inc()
		c.rekey()
	}
	clear(c.buf[:])
	c.cipher.XORKeyStream(c.buf[:], c.buf[:])
	c.refills++
	for i := range results {
		results[i] = binary.LittleEndian.Uint32(c.buf[i*4:])
	}
}

// Stream returns the stream number of the core.
func (c *Core) Stream() uint64 {
	return binary.LittleEndian.Uint64(c.nonce[4:12])
}

// refillPos returns the index of the next refill within the stream.  The low
// nonce word counts whole block counters of refills.
func (c *Core) refillPos() uint64 {
	n0 := binary.LittleEndian.Uint32(c.nonce[0:4])
	return uint64(n0)*refillsPerNonce + uint64(c.refills)
}

// setRefillPos moves the core so the next call to Generate produces refill r.
func (c *Core) setRefillPos(r uint64) {
	binary.LittleEndian.PutUint32(c.nonce[0:4], uint32(r/refillsPerNonce))
	c.rekey()
	c.refills = uint32(r % refillsPerNonce)
	c.cipher.SetCounter(c.refills * blocksPerRefill)
}

// setStream changes the stream number.  The position within the stream is
// reset by the caller.
func (c *Core) setStream(stream uint64) {
	binary.LittleEndian.PutUint64(c.nonce[4:12], stream)
}

// Source is a ChaCha20 random number generator.  It is not safe for
// concurrent access.
type Source struct {
	*rngcore.BlockBuffer[*Core]
}

// WordPos returns the index of the next 32-bit word of the stream as a 128-bit
// number split into its high and low 64 bits.  Streams are 2^68 words long, so
// only the low 4 bits of hi are ever set.
func (s *Source) WordPos() (hi, lo uint64) {
	r := s.Core().refillPos()
	if r == 0 {
		return 0, 0
	}

	// The buffer holds refill r-1.
	r--
	lo, carry := bits.Add64(r<<6, uint64(s.Index()), 0)
	return r>>58 + carry, lo
}

// SetWordPos moves the generator to the given 32-bit word of the stream,
// given as the high and low 64 bits of a 128-bit index.  Positions past the
// end of the stream wrap.  The block containing the position is generated
// immediately.
func (s *Source) SetWordPos(hi, lo uint64) {
	r := (hi&0xf)<<58 | lo>>6
	s.Core().setRefillPos(r)
	s.GenerateAndSet(int(lo % BlockLen))
}

// SetStream switches the generator to another stream of the same seed while
// keeping the word position.
func (s *Source) SetStream(stream uint64) {
	hi, lo := s.WordPos()
	s.Core().setStream(stream)
	s.SetWordPos(hi, lo)
}

// New returns a generator for stream zero of the given seed.
func New(seed [SeedSize]byte) *Source {
	return NewStream(seed, 0)
}

// NewStream returns a generator for the given stream of the seed.
func NewStream(seed [SeedSize]byte, stream uint64) *Source {
	return &Source{rngcore.NewBlockBuffer(NewCore(&seed, stream))}
}

// FromSeed returns a generator for stream zero of the given seed.  Every seed
// of the correct length is accepted.
func FromSeed(seed []byte) (*Source, error) {
	if err := rngcore.CheckSeedLength(seed, SeedSize); err != nil {
		return nil, err
	}
	var s [SeedSize]byte
	copy(s[:], seed)
	return New(s), nil
}

// FromReader returns a generator seeded with SeedSize bytes read from r, which
// may be another generator or an entropy source.
func FromReader(r io.Reader) (*Source, error) {
	return rngcore.FromReader(r, SeedSize, FromSeed)
}

// FromEntropy returns a generator seeded from the default entropy chain.
func FromEntropy() (*Source, error) {
	return FromReader(entropy.NewChain())
}

// FromUint64 returns a generator with a seed derived from v.  It is intended
// for reproducible simulations rather than security sensitive uses.
func FromUint64(v uint64) *Source {
	var s [SeedSize]byte
	rngcore.SeedFromUint64(s[:], v)
	return New(s)
}

// Verify Source satisfies the rngcore interface.
var _ rngcore.Source = (*Source)(nil)
