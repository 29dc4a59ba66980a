// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rngcore

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// counterCore is a block core which produces a scrambled counter so that
// every byte of the stream is distinct enough to detect reordering.
type counterCore struct {
	blockLen int
	n        uint32
	calls    int
}

func (c *counterCore) BlockLen() int { return c.blockLen }

func (c *counterCore) Generate(results []uint32) {
	for i := range results {
		c.n++
		results[i] = c.n * 0x9e3779b9
	}
	c.calls++
}

// counterCore64 is the 64-bit equivalent of counterCore.
type counterCore64 struct {
	blockLen int
	n        uint64
}

func (c *counterCore64) BlockLen() int { return c.blockLen }

func (c *counterCore64) Generate(results []uint64) {
	for i := range results {
		c.n++
		results[i] = c.n * 0x9e3779b97f4a7c15
	}
}

// expectedStream returns the first n words of a fresh counterCore as bytes.
func expectedStream(n int) []byte {
	b := make([]byte, n*4)
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint32(b[i*4:], uint32(i+1)*0x9e3779b9)
	}
	return b
}

// TestBlockBufferByteFillConsistency ensures filling a buffer one byte at a
// time produces exactly the same bytes as a single fill for every length from
// zero up to several block multiples, including non-multiple remainders.
func TestBlockBufferByteFillConsistency(t *testing.T) {
	const blockLen = 16
	const blockBytes = blockLen * 4

	for l := 0; l <= 5*blockBytes+3; l++ {
		whole := NewBlockBuffer(&counterCore{blockLen: blockLen})
		single := NewBlockBuffer(&counterCore{blockLen: blockLen})

		want := make([]byte, l)
		whole.FillBytes(want)

		got := make([]byte, l)
		for i := range got {
			single.FillBytes(got[i : i+1])
		}
		if !bytes.Equal(got, want) {
			t.Fatalf("length %d: mismatched byte streams\ngot:  %x\nwant: %x",
				l, got, want)
		}

		// Both buffers must be at the same position afterwards.
		if whole.pos != single.pos {
			t.Fatalf("length %d: mismatched positions %d != %d", l,
				whole.pos, single.pos)
		}
	}
}

// TestBlockBufferMixedChunks ensures arbitrary chunking of fills never drops
// or duplicates generated bytes.
func TestBlockBufferMixedChunks(t *testing.T) {
	const blockLen = 8
	chunks := []int{1, 3, 7, 0, 32, 5, 64, 2, 33, 1, 1, 90}
	var total int
	for _, c := range chunks {
		total += c
	}

	b := NewBlockBuffer(&counterCore{blockLen: blockLen})
	got := make([]byte, 0, total)
	for _, c := range chunks {
		buf := make([]byte, c)
		b.FillBytes(buf)
		got = append(got, buf...)
	}

	want := expectedStream((total + 3) / 4)[:total]
	if !bytes.Equal(got, want) {
		t.Fatalf("mismatched stream\ngot:  %x\nwant: %x", got, want)
	}
}

// TestBlockBufferWordsMatchBytes ensures the word interface and the byte
// interface agree on the little-endian serialization of the stream.
func TestBlockBufferWordsMatchBytes(t *testing.T) {
	const blockLen = 16
	const numWords = blockLen*3 + 5

	words := NewBlockBuffer(&counterCore{blockLen: blockLen})
	got := make([]byte, numWords*4)
	for i := 0; i < numWords; i++ {
		binary.LittleEndian.PutUint32(got[i*4:], words.Uint32())
	}

	byteBuf := NewBlockBuffer(&counterCore{blockLen: blockLen})
	want := make([]byte, numWords*4)
	byteBuf.FillBytes(want)
	if !bytes.Equal(got, want) {
		t.Fatalf("word and byte streams differ\ngot:  %x\nwant: %x", got, want)
	}

	// 64-bit reads are two consecutive 32-bit words, low half first.
	u64 := NewBlockBuffer(&counterCore{blockLen: blockLen})
	for i := 0; i < numWords/2; i++ {
		want := binary.LittleEndian.Uint64(got[i*8:])
		if v := u64.Uint64(); v != want {
			t.Fatalf("word %d: got %#x, want %#x", i, v, want)
		}
	}
}

// TestBlockBufferUint64Straddle ensures a 64-bit read that starts at the last
// word of a block combines it with the first word of the next block and that
// no generated word is discarded.
func TestBlockBufferUint64Straddle(t *testing.T) {
	const blockLen = 5
	core := &counterCore{blockLen: blockLen}
	b := NewBlockBuffer(core)

	stream := expectedStream(3 * blockLen)
	word := func(i int) uint64 {
		return uint64(binary.LittleEndian.Uint32(stream[i*4:]))
	}

	// Consume words 0..3, leaving only word 4 in the first block.
	for i := 0; i < 4; i++ {
		b.Uint32()
	}
	got := b.Uint64()
	want := word(5)<<32 | word(4)
	if got != want {
		t.Fatalf("straddling read: got %#x, want %#x", got, want)
	}
	if core.calls != 2 {
		t.Fatalf("unexpected number of generated blocks: got %d, want 2",
			core.calls)
	}
	if v := uint64(b.Uint32()); v != word(6) {
		t.Fatalf("read after straddle: got %#x, want %#x", v, word(6))
	}
}

// TestBlockBufferWordRealign ensures a word read following a partial byte read
// starts at the next word boundary.
func TestBlockBufferWordRealign(t *testing.T) {
	const blockLen = 4
	b := NewBlockBuffer(&counterCore{blockLen: blockLen})
	stream := expectedStream(2 * blockLen)

	var one [1]byte
	b.FillBytes(one[:])
	if one[0] != stream[0] {
		t.Fatalf("first byte: got %x, want %x", one[0], stream[0])
	}
	if b.Index() != 1 {
		t.Fatalf("index after partial read: got %d, want 1", b.Index())
	}
	want := binary.LittleEndian.Uint32(stream[4:])
	if got := b.Uint32(); got != want {
		t.Fatalf("realigned word: got %#x, want %#x", got, want)
	}
}

// TestBlockBufferReset ensures reset discards buffered words.
func TestBlockBufferReset(t *testing.T) {
	const blockLen = 4
	core := &counterCore{blockLen: blockLen}
	b := NewBlockBuffer(core)
	b.Uint32()
	b.Reset()
	stream := expectedStream(2 * blockLen)
	want := binary.LittleEndian.Uint32(stream[blockLen*4:])
	if got := b.Uint32(); got != want {
		t.Fatalf("word after reset: got %#x, want %#x", got, want)
	}
	if b.Core() != core {
		t.Fatal("core accessor returned a different core")
	}
}

// TestBlockBuffer64 ensures the 64-bit buffer serves the little-endian stream
// consistently through every access method.
func TestBlockBuffer64(t *testing.T) {
	const blockLen = 3

	words := NewBlockBuffer64(&counterCore64{blockLen: blockLen})
	want := make([]byte, 8*blockLen*3)
	for i := 0; i < len(want)/8; i++ {
		binary.LittleEndian.PutUint64(want[i*8:], words.Uint64())
	}

	for l := 0; l <= len(want); l++ {
		single := NewBlockBuffer64(&counterCore64{blockLen: blockLen})
		got := make([]byte, l)
		for i := range got {
			single.FillBytes(got[i : i+1])
		}
		if !bytes.Equal(got, want[:l]) {
			t.Fatalf("length %d: mismatched stream\ngot:  %x\nwant: %x", l,
				got, want[:l])
		}
	}

	halves := NewBlockBuffer64(&counterCore64{blockLen: blockLen})
	for i := 0; i < len(want)/4; i++ {
		w := binary.LittleEndian.Uint32(want[i*4:])
		if got := halves.Uint32(); got != w {
			t.Fatalf("half %d: got %#x, want %#x", i, got, w)
		}
	}

	// A 64-bit read after a 32-bit read skips the remaining half.
	skip := NewBlockBuffer64(&counterCore64{blockLen: blockLen})
	skip.Uint32()
	if got, w := skip.Uint64(), binary.LittleEndian.Uint64(want[8:]); got != w {
		t.Fatalf("read after half: got %#x, want %#x -- state %s", got, w,
			spew.Sdump(skip.results))
	}
}

// TestNewBlockBufferPanics ensures cores with unusable block lengths are
// rejected.
func TestNewBlockBufferPanics(t *testing.T) {
	testPanic := func(name string, fn func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s: did not panic", name)
			}
		}()
		fn()
	}
	testPanic("one word core", func() {
		NewBlockBuffer(&counterCore{blockLen: 1})
	})
	testPanic("empty 64-bit core", func() {
		NewBlockBuffer64(&counterCore64{blockLen: 0})
	})
}

// TestBlockBufferGenerateAndSet ensures a forced regeneration positions the
// cursor at the requested word of the new block.
func TestBlockBufferGenerateAndSet(t *testing.T) {
	core := &counterCore{blockLen: 8}
	b := NewBlockBuffer(core)
	b.Uint32()

	b.GenerateAndSet(3)
	if core.calls != 2 {
		t.Fatalf("got %d generate calls, want 2", core.calls)
	}
	if b.Index() != 3 {
		t.Fatalf("got index %d, want 3", b.Index())
	}
	twelve := uint32(12)
	if got, want := b.Uint32(), twelve*0x9e3779b9; got != want {
		t.Fatalf("got %#x, want %#x", got, want)
	}

	// Setting the index to the block length regenerates on the next read.
	b.GenerateAndSet(8)
	b.Uint32()
	if core.calls != 4 {
		t.Fatalf("got %d generate calls, want 4", core.calls)
	}

	defer func() {
		if recover() == nil {
			t.Error("out of range index did not panic")
		}
	}()
	b.GenerateAndSet(9)
}
