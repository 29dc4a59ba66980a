// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package entropy provides sources of seed-quality random bytes.

Every source is an io.Reader whose errors are rngcore.Error values carrying
either rngcore.ErrEntropyTransient, meaning the read may succeed if retried
later, or rngcore.ErrEntropyUnavailable, meaning the source is unusable on this
platform.  Sources never block indefinitely.

OSSource reads from the operating system.  JitterSource harvests entropy from
variations in the execution time of short loops as measured by a
high-resolution clock and is used as a fallback when the operating system
source fails.  Chain combines the two.  No source caches output; every read
acquires fresh entropy.
*/
package entropy
