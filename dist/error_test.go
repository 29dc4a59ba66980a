// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dist

import (
	"errors"
	"testing"
)

// TestErrorKindStringer tests the stringized output for the ErrorKind type.
func TestErrorKindStringer(t *testing.T) {
	tests := []struct {
		in   ErrorKind
		want string
	}{
		{ErrEmptyRange, "ErrEmptyRange"},
		{ErrNonFinite, "ErrNonFinite"},
		{ErrInvalidParam, "ErrInvalidParam"},
		{ErrNoItems, "ErrNoItems"},
		{ErrAllWeightsZero, "ErrAllWeightsZero"},
		{ErrWeightOverflow, "ErrWeightOverflow"},
	}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestError tests the error output for the Error type.
func TestError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   Error
		want string
	}{{
		Error{Description: "some error"},
		"some error",
	}, {
		Error{Description: "human-readable error"},
		"human-readable error",
	}}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestErrorKindIsAs ensures both ErrorKind and Error can be identified as being
// a specific error kind via errors.Is and unwrapped via errors.As.
func TestErrorKindIsAs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
		wantAs    ErrorKind
	}{{
		name:      "ErrEmptyRange == ErrEmptyRange",
		err:       ErrEmptyRange,
		target:    ErrEmptyRange,
		wantMatch: true,
		wantAs:    ErrEmptyRange,
	}, {
		name:      "Error.ErrEmptyRange == ErrEmptyRange",
		err:       makeError(ErrEmptyRange, ""),
		target:    ErrEmptyRange,
		wantMatch: true,
		wantAs:    ErrEmptyRange,
	}, {
		name:      "ErrNoItems != ErrAllWeightsZero",
		err:       ErrNoItems,
		target:    ErrAllWeightsZero,
		wantMatch: false,
		wantAs:    ErrNoItems,
	}, {
		name:      "Error.ErrWeightOverflow != ErrNoItems",
		err:       makeError(ErrWeightOverflow, ""),
		target:    ErrNoItems,
		wantMatch: false,
		wantAs:    ErrWeightOverflow,
	}}

	for _, test := range tests {
		// Ensure the error matches or not depending on the expected result.
		result := errors.Is(test.err, test.target)
		if result != test.wantMatch {
			t.Errorf("%s: incorrect error identification -- got %v, want %v",
				test.name, result, test.wantMatch)
			continue
		}

		// Ensure the underlying error kind can be unwrapped and is the
		// expected code.
		var kind ErrorKind
		if !errors.As(test.err, &kind) {
			t.Errorf("%s: unable to unwrap to error", test.name)
			continue
		}
		if !errors.Is(kind, test.wantAs) {
			t.Errorf("%s: unexpected unwrapped error -- got %v, want %v",
				test.name, kind, test.wantAs)
			continue
		}
	}
}

// TestMust ensures Must panics exactly when given an error.
func TestMust(t *testing.T) {
	if got := Must(NewUniform(1, 7)); got.Low() != 1 {
		t.Fatalf("unexpected low bound %d", got.Low())
	}
	defer func() {
		if r := recover(); !errors.Is(r.(error), ErrEmptyRange) {
			t.Fatalf("unexpected panic value %v", r)
		}
	}()
	Must(NewUniform(7, 1))
	t.Fatal("Must did not panic")
}
