// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rngcore

import (
	"encoding/binary"
)

// BlockCore is implemented by generator algorithms that produce a fixed-size
// block of 32-bit words per invocation.
type BlockCore interface {
	// BlockLen returns the number of words produced by each call to Generate.
	// It must be constant for the lifetime of the core and at least two.
	BlockLen() int

	// Generate fills results, which always has a length of BlockLen, with the
	// next block of output and advances the core state.
	Generate(results []uint32)
}

// BlockCore64 is implemented by generator algorithms that produce a fixed-size
// block of 64-bit words per invocation.
type BlockCore64 interface {
	// BlockLen returns the number of words produced by each call to Generate.
	// It must be constant for the lifetime of the core and at least one.
	BlockLen() int

	// Generate fills results, which always has a length of BlockLen, with the
	// next block of output and advances the core state.
	Generate(results []uint64)
}

// BlockBuffer wraps a BlockCore to implement Source.  Words are served in
// order from the most recently generated block and a new block is generated
// only once every word of the previous one has been consumed.
//
// The buffer tracks its position in bytes so that partial-word reads made by
// FillBytes continue exactly where the previous call stopped.  Word reads
// begin at the next word boundary.  The byte stream is the little-endian
// serialization of the words, independent of the host byte order.
//
// BlockBuffer is not safe for concurrent access.
type BlockBuffer[C BlockCore] struct {
	core    C
	results []uint32

	// pos is the number of bytes of results that have been consumed.  It is
	// in the range [0, 4*len(results)].
	pos int
}

// NewBlockBuffer returns a buffer around the provided core.  No output is
// generated until the first request.
func NewBlockBuffer[C BlockCore](core C) *BlockBuffer[C] {
	n := core.BlockLen()
	if n < 2 {
		panic("rngcore: block cores must produce at least two words")
	}
	return &BlockBuffer[C]{
		core:    core,
		results: make([]uint32, n),
		pos:     n * 4,
	}
}

// Core returns the wrapped core.  Modifying the core does not affect output
// that has already been buffered; call Reset to discard it.
func (b *BlockBuffer[C]) Core() C {
	return b.core
}

// Reset discards any buffered output so the next request generates a new
// block.
func (b *BlockBuffer[C]) Reset() {
	b.pos = len(b.results) * 4
}

// Index returns the index of the next word that a word read would return.  A
// value of BlockLen indicates the buffer is exhausted.
func (b *BlockBuffer[C]) Index() int {
	return (b.pos + 3) >> 2
}

func (b *BlockBuffer[C]) generate() {
	b.core.Generate(b.results)
	b.pos = 0
}

// GenerateAndSet generates a new block immediately and positions the buffer
// so the next word read returns the word at index.  It is used after the core
// is moved to a new position.  It panics unless 0 <= index <= BlockLen.
func (b *BlockBuffer[C]) GenerateAndSet(index int) {
	if index < 0 || index > len(b.results) {
		panic("rngcore: block index out of range")
	}
	b.generate()
	b.pos = index << 2
}

// Uint32 returns the next word of the stream.
func (b *BlockBuffer[C]) Uint32() uint32 {
	i := (b.pos + 3) >> 2
	if i >= len(b.results) {
		b.generate()
		i = 0
	}
	b.pos = (i + 1) << 2
	return b.results[i]
}

// Uint64 returns the next two words of the stream combined with the first
// word as the low half.  When only one word remains in the current block, it
// forms the low half and the first word of the next block forms the high
// half.
func (b *BlockBuffer[C]) Uint64() uint64 {
	n := len(b.results)
	i := (b.pos + 3) >> 2
	switch {
	case i < n-1:
		b.pos = (i + 2) << 2
		return uint64(b.results[i+1])<<32 | uint64(b.results[i])

	case i >= n:
		b.generate()
		b.pos = 8
		return uint64(b.results[1])<<32 | uint64(b.results[0])

	default:
		lo := uint64(b.results[n-1])
		b.generate()
		b.pos = 4
		return uint64(b.results[0])<<32 | lo
	}
}

// FillBytes fills dst with the next len(dst) bytes of the stream.  Buffered
// bytes are consumed first, and any bytes of a newly generated block which are
// not needed remain buffered for the next request.
func (b *BlockBuffer[C]) FillBytes(dst []byte) {
	var word [4]byte
	total := len(b.results) * 4
	for len(dst) > 0 {
		if b.pos >= total {
			b.generate()
		}

		// Finish a word that a previous call only partially consumed.
		if off := b.pos & 3; off != 0 {
			binary.LittleEndian.PutUint32(word[:], b.results[b.pos>>2])
			n := copy(dst, word[off:])
			dst = dst[n:]
			b.pos += n
			continue
		}

		i := b.pos >> 2
		for len(dst) >= 4 && i < len(b.results) {
			binary.LittleEndian.PutUint32(dst, b.results[i])
			dst = dst[4:]
			i++
		}
		b.pos = i << 2

		if len(dst) > 0 && len(dst) < 4 && i < len(b.results) {
			binary.LittleEndian.PutUint32(word[:], b.results[i])
			b.pos += copy(dst, word[:])
			return
		}
	}
}

// Read fills p with the next len(p) bytes of the stream.  It never returns an
// error.
func (b *BlockBuffer[C]) Read(p []byte) (int, error) {
	b.FillBytes(p)
	return len(p), nil
}

// BlockBuffer64 wraps a BlockCore64 to implement Source.  It has the same
// semantics as BlockBuffer except that 32-bit reads consume half of a 64-bit
// word, low half first.
//
// BlockBuffer64 is not safe for concurrent access.
type BlockBuffer64[C BlockCore64] struct {
	core    C
	results []uint64

	// pos is the number of bytes of results that have been consumed.  It is
	// in the range [0, 8*len(results)].
	pos int
}

// NewBlockBuffer64 returns a buffer around the provided core.  No output is
// generated until the first request.
func NewBlockBuffer64[C BlockCore64](core C) *BlockBuffer64[C] {
	n := core.BlockLen()
	if n < 1 {
		panic("rngcore: block cores must produce at least one word")
	}
	return &BlockBuffer64[C]{
		core:    core,
		results: make([]uint64, n),
		pos:     n * 8,
	}
}

// Core returns the wrapped core.
func (b *BlockBuffer64[C]) Core() C {
	return b.core
}

// Reset discards any buffered output so the next request generates a new
// block.
func (b *BlockBuffer64[C]) Reset() {
	b.pos = len(b.results) * 8
}

func (b *BlockBuffer64[C]) generate() {
	b.core.Generate(b.results)
	b.pos = 0
}

// Uint32 returns the next 32 bits of the stream.
func (b *BlockBuffer64[C]) Uint32() uint32 {
	p := (b.pos + 3) &^ 3
	if p >= len(b.results)*8 {
		b.generate()
		p = 0
	}
	b.pos = p + 4
	return uint32(b.results[p>>3] >> ((p & 4) * 8))
}

// Uint64 returns the next word of the stream.  A word whose low half was
// already consumed by Uint32 is skipped.
func (b *BlockBuffer64[C]) Uint64() uint64 {
	p := (b.pos + 7) &^ 7
	if p >= len(b.results)*8 {
		b.generate()
		p = 0
	}
	b.pos = p + 8
	return b.results[p>>3]
}

// FillBytes fills dst with the next len(dst) bytes of the stream.
func (b *BlockBuffer64[C]) FillBytes(dst []byte) {
	var word [8]byte
	total := len(b.results) * 8
	for len(dst) > 0 {
		if b.pos >= total {
			b.generate()
		}

		if off := b.pos & 7; off != 0 {
			binary.LittleEndian.PutUint64(word[:], b.results[b.pos>>3])
			n := copy(dst, word[off:])
			dst = dst[n:]
			b.pos += n
			continue
		}

		i := b.pos >> 3
		for len(dst) >= 8 && i < len(b.results) {
			binary.LittleEndian.PutUint64(dst, b.results[i])
			dst = dst[8:]
			i++
		}
		b.pos = i << 3

		if len(dst) > 0 && len(dst) < 8 && i < len(b.results) {
			binary.LittleEndian.PutUint64(word[:], b.results[i])
			b.pos += copy(dst, word[:])
			return
		}
	}
}

// Read fills p with the next len(p) bytes of the stream.  It never returns an
// error.
func (b *BlockBuffer64[C]) Read(p []byte) (int, error) {
	b.FillBytes(p)
	return len(p), nil
}
