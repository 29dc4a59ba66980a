// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rngcore

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ---------------------------------------
	// Errors related to seeding generators.
	// ---------------------------------------

	// ErrDegenerateSeed indicates a seed maps to a generator state that would
	// produce a weak or constant stream, such as an all-zero state that is a
	// fixed point of the state transition.
	ErrDegenerateSeed = ErrorKind("ErrDegenerateSeed")

	// ErrSeedLength indicates a seed does not have the exact length required by
	// the generator.
	ErrSeedLength = ErrorKind("ErrSeedLength")

	// ErrSeedRetriesExhausted indicates every seed drawn from a source during
	// generator construction was rejected as degenerate.
	ErrSeedRetriesExhausted = ErrorKind("ErrSeedRetriesExhausted")

	// ---------------------------------------
	// Errors related to entropy acquisition.
	// ---------------------------------------

	// ErrEntropyTransient indicates an entropy source could not provide data
	// now but may succeed if retried later.
	ErrEntropyTransient = ErrorKind("ErrEntropyTransient")

	// ErrEntropyUnavailable indicates an entropy source is unusable on this
	// platform and retrying will not help.
	ErrEntropyUnavailable = ErrorKind("ErrEntropyUnavailable")

	// ErrReseedFailed indicates a reseeding generator was unable to obtain
	// fresh state.  The wrapped error describes the entropy failure.
	ErrReseedFailed = ErrorKind("ErrReseedFailed")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to generator construction, seeding, or
// entropy acquisition.  It has full support for errors.Is and errors.As, so the
// caller can ascertain the specific reason for the error by checking the
// underlying error.
type Error struct {
	// Err is the ErrorKind of the error.
	Err error

	// RawErr is the underlying error, such as a system call failure, if any.
	RawErr error

	// Description is a human-readable description of the error.
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	if e.RawErr != nil {
		return e.Description + ": " + e.RawErr.Error()
	}
	return e.Description
}

// Unwrap returns the underlying wrapped errors.
func (e Error) Unwrap() []error {
	if e.RawErr != nil {
		return []error{e.Err, e.RawErr}
	}
	return []error{e.Err}
}

// MakeError creates an Error given a set of arguments.
func MakeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

// WrapError creates an Error of the given kind that wraps the raw error which
// caused it.
func WrapError(kind ErrorKind, desc string, rawErr error) Error {
	return Error{Err: kind, Description: desc, RawErr: rawErr}
}
