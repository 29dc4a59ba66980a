// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rngcore

import (
	"encoding/binary"
	"io"
)

// Source is the capability implemented by every random number generator.
//
// All methods advance the internal state.  Uint32, Uint64 and FillBytes never
// fail.  Read is the fallible entry point: generators that are a pure function
// of their state always fill p and return a nil error, while sources that
// depend on external entropy may return an error, in which case the state is
// not required to have advanced.
//
// Implementations are not safe for concurrent access.
type Source interface {
	// Uint32 returns the next 32-bit word.
	Uint32() uint32

	// Uint64 returns the next 64-bit word.
	Uint64() uint64

	// FillBytes fills every byte of dst.
	FillBytes(dst []byte)

	io.Reader
}

// Uint32Source is implemented by generators that natively produce 32-bit
// words.
type Uint32Source interface {
	Uint32() uint32
}

// Uint64Source is implemented by generators that natively produce 64-bit
// words.
type Uint64Source interface {
	Uint64() uint64
}

// Uint64ViaUint32 builds a 64-bit word from two consecutive 32-bit words with
// the first word forming the low half.
func Uint64ViaUint32(src Uint32Source) uint64 {
	lo := uint64(src.Uint32())
	hi := uint64(src.Uint32())
	return hi<<32 | lo
}

// Uint32ViaUint64 returns the low half of the next 64-bit word.
func Uint32ViaUint64(src Uint64Source) uint32 {
	return uint32(src.Uint64())
}

// FillBytesViaUint32 fills dst with the little-endian serialization of
// consecutive 32-bit words.  The unused bytes of a final partial word are
// discarded.
func FillBytesViaUint32(src Uint32Source, dst []byte) {
	for len(dst) >= 4 {
		binary.LittleEndian.PutUint32(dst, src.Uint32())
		dst = dst[4:]
	}
	if len(dst) > 0 {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], src.Uint32())
		copy(dst, b[:])
	}
}

// FillBytesViaUint64 fills dst with the little-endian serialization of
// consecutive 64-bit words.  The unused bytes of a final partial word are
// discarded.
func FillBytesViaUint64(src Uint64Source, dst []byte) {
	for len(dst) >= 8 {
		binary.LittleEndian.PutUint64(dst, src.Uint64())
		dst = dst[8:]
	}
	if len(dst) > 0 {
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], src.Uint64())
		copy(dst, b[:])
	}
}
