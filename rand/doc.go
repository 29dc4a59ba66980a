// Copyright (c) 2024-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rand implements a fast userspace CSPRNG that is periodically
// reseeded with entropy obtained from the operating system, falling back to
// timing jitter when the operating system source fails.  The PRNG can be used
// to obtain random bytes, uniformly-distributed integers in a full or limited
// range, and floats from the uniform, normal, and exponential distributions.
//
// The PRNG is a ChaCha20 generator which is reseeded after producing 4 MiB of
// output or after 20 seconds, whichever comes first.  A failed reseed is
// reported by the call that triggered it: Read returns the error alongside
// output from the existing state, while the methods that cannot return an
// error panic.  A failed reseed is retried after a short back-off.
//
// The default global PRNG is created on first use and is safe for concurrent
// access.  Creating it panics only if no entropy source is available at all.
// Additional PRNGs which avoid the locking overhead can be created by calling
// NewPRNG.
package rand
