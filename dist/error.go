// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dist

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrEmptyRange indicates the lower bound of a range is not below its
	// upper bound.
	ErrEmptyRange = ErrorKind("ErrEmptyRange")

	// ErrNonFinite indicates a bound or the width of a floating point range
	// is infinite or NaN.
	ErrNonFinite = ErrorKind("ErrNonFinite")

	// ErrInvalidParam indicates a distribution parameter is outside of its
	// valid domain, such as a negative standard deviation or a probability
	// greater than one.
	ErrInvalidParam = ErrorKind("ErrInvalidParam")

	// ErrNoItems indicates a weighted distribution was given no items.
	ErrNoItems = ErrorKind("ErrNoItems")

	// ErrAllWeightsZero indicates every weight of a weighted distribution is
	// zero.
	ErrAllWeightsZero = ErrorKind("ErrAllWeightsZero")

	// ErrWeightOverflow indicates the sum of the weights of a weighted
	// distribution does not fit in the weight type.
	ErrWeightOverflow = ErrorKind("ErrWeightOverflow")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an invalid distribution parameter.  It has full support for
// errors.Is and errors.As, so the caller can ascertain the specific reason for
// the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

// Must returns d or panics if err is not nil.  It is intended for
// distributions with constant parameters.
func Must[D any](d D, err error) D {
	if err != nil {
		panic(err)
	}
	return d
}
