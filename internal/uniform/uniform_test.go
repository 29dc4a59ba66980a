// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uniform

import (
	"testing"

	"github.com/decred/dcrrand/rngcore/mock"
)

// TestThreshold ensures the rejection thresholds equal 2^W mod n.
func TestThreshold(t *testing.T) {
	tests32 := []struct {
		n    uint32
		want uint32
	}{
		{n: 1, want: 0},
		{n: 2, want: 0},
		{n: 3, want: 1},
		{n: 6, want: 4},
		{n: 1 << 31, want: 0},
		{n: 1<<31 + 1, want: 1<<31 - 1},
		{n: 0xffffffff, want: 1},
	}
	for _, test := range tests32 {
		if got := Threshold32(test.n); got != test.want {
			t.Errorf("Threshold32(%d): got %d, want %d", test.n, got,
				test.want)
		}
	}

	tests64 := []struct {
		n    uint64
		want uint64
	}{
		{n: 1, want: 0},
		{n: 3, want: 1},
		{n: 6, want: 4},
		{n: 1<<63 + 1, want: 1<<63 - 1},
		{n: 0xffffffffffffffff, want: 1},
	}
	for _, test := range tests64 {
		if got := Threshold64(test.n); got != test.want {
			t.Errorf("Threshold64(%d): got %d, want %d", test.n, got,
				test.want)
		}
	}
}

// TestBelow ensures words in the rejection zone are rejected and words at its
// edges are accepted with the expected values.
func TestBelow(t *testing.T) {
	tests := []struct {
		name     string
		raw      uint32
		n        uint32
		want     uint32
		accepted bool
	}{
		{name: "n=3 zero word", raw: 0, n: 3, accepted: false},
		{name: "n=3 first accepted", raw: 1, n: 3, want: 0, accepted: true},
		{name: "n=3 max word", raw: 0xffffffff, n: 3, want: 2, accepted: true},
		{name: "n=6 zero word", raw: 0, n: 6, accepted: false},
		{name: "n=6 half word", raw: 0x80000000, n: 6, accepted: false},
		{name: "n=6 low inverse", raw: 0x2aaaaaab, n: 6, accepted: false},
		{name: "n=6 high inverse", raw: 0xaaaaaaab, n: 6, accepted: false},
		{name: "n=6 below low inverse", raw: 0x2aaaaaaa, n: 6, want: 0,
			accepted: true},
		{name: "n=6 max word", raw: 0xffffffff, n: 6, want: 5, accepted: true},
		{name: "n=1 anything", raw: 0x12345678, n: 1, want: 0, accepted: true},
	}

	for _, test := range tests {
		got, ok := Below32(test.raw, test.n, Threshold32(test.n))
		if ok != test.accepted {
			t.Errorf("%q: accepted %v, want %v", test.name, ok, test.accepted)
			continue
		}
		if ok && got != test.want {
			t.Errorf("%q: got %d, want %d", test.name, got, test.want)
		}

		// The 64-bit variant agrees when the word is placed in the high
		// half and the low half is zero.
		got64, ok64 := Below64(uint64(test.raw)<<32, uint64(test.n),
			Threshold64(uint64(test.n)))
		if ok64 && got64 != uint64(got) {
			t.Errorf("%q: 64-bit got %d, want %d", test.name, got64, got)
		}
	}

	if _, ok := Below64(0, 3, Threshold64(3)); ok {
		t.Error("Below64 accepted the zero word for n=3")
	}
	if v, ok := Below64(^uint64(0), 3, Threshold64(3)); !ok || v != 2 {
		t.Errorf("Below64 max word: got (%d, %v), want (2, true)", v, ok)
	}
}

// TestUint32NRejects ensures rejected words are skipped.
func TestUint32NRejects(t *testing.T) {
	src := mock.NewSequenceSource(0x80000000, 0xaaaaaaab, 0xffffffff)
	if got := Uint32N(src, 6); got != 5 {
		t.Fatalf("got %d, want 5", got)
	}
	if src.Calls() != 3 {
		t.Fatalf("consumed %d words, want 3", src.Calls())
	}

	src = mock.NewSequenceSource(0, 1<<63)
	if got := Uint64N(src, 3); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
	if src.Calls() != 2 {
		t.Fatalf("consumed %d words, want 2", src.Calls())
	}
}

// TestUintNRange ensures results stay within range for a variety of bounds.
func TestUintNRange(t *testing.T) {
	src := mock.NewStepSource(0x9e3779b97f4a7c15, 0xbf58476d1ce4e5b9)
	for _, n := range []uint32{1, 2, 3, 7, 100, 1 << 31, 0xffffffff} {
		for i := 0; i < 1000; i++ {
			if v := Uint32N(src, n); v >= n {
				t.Fatalf("Uint32N(%d) returned %d", n, v)
			}
			if v := Uint64N(src, uint64(n)<<20); v >= uint64(n)<<20 {
				t.Fatalf("Uint64N(%d) returned %d", uint64(n)<<20, v)
			}
		}
	}
}

// TestZeroPanics ensures a zero bound panics.
func TestZeroPanics(t *testing.T) {
	src := mock.NewStepSource(1, 1)
	for name, f := range map[string]func(){
		"Uint32N": func() { Uint32N(src, 0) },
		"Uint64N": func() { Uint64N(src, 0) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: did not panic", name)
				}
			}()
			f()
		}()
	}
}
