// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package rngcore defines the contract shared by every random number generator in
this module along with the machinery used to build and seed them.

A Source produces 32-bit and 64-bit words and fills byte slices, all as a
deterministic function of its internal state.  Output bytes are always the
little-endian serialization of the underlying words so a given seed yields the
same byte stream on every platform.

Block Buffering

Many generators, such as stream ciphers, naturally produce a fixed-size batch
of words per invocation.  BlockBuffer and BlockBuffer64 wrap such a BlockCore
and serve words and bytes on demand, regenerating a block only once the
previous one has been fully consumed.  Filling a slice one byte at a time
produces exactly the same bytes as filling it in a single call.

Seeding

Generators are constructed from a fixed-size seed.  FromReader implements the
generator-from-generator path: it draws exactly the number of seed bytes a
generator requires from any io.Reader, which includes every Source as well as
the entropy sources, and retries a bounded number of times when the drawn seed
is rejected as degenerate.

Errors

Errors returned by this package and by the generators and entropy sources built
on it are of type Error and carry an ErrorKind that may be inspected with
errors.Is.  Kinds distinguish transient entropy failures, which may succeed if
retried later, from permanent ones.
*/
package rngcore
