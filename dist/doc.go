// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package dist converts the words of a random source into values drawn from
probability distributions without statistical bias.

Distributions are immutable values built by New* constructors that validate
their parameters and return an error for invalid ones.  Once constructed,
sampling never fails and a distribution may be shared by any number of
goroutines, each sampling with its own source.  The generic Must helper turns
a constructor error into a panic for parameters known to be valid.

# Integer Ranges

Uniform integer ranges use the widening multiply and rejection method.  Types
of 32 bits or fewer consume 32-bit words and 64-bit types consume 64-bit
words, so the word consumption of a sampler depends only on its type.

# Floating Point

Float64 and friends convert a single word into a float in the unit interval
with the open or closed bounds named by the function.

# Normal and Exponential

The normal and exponential distributions use the 256-layer ziggurat method of
Marsaglia and Tsang with the tail algorithm and constants of Doornik:

	Marsaglia, G. & Tsang, W. W. (2000). "The Ziggurat Method for Generating
	Random Variables". Journal of Statistical Software. Vol. 5 (Issue 8).

	Doornik, J. A. (2005). "An Improved Ziggurat Method to Generate Normal
	Random Samples".

The gamma distribution and the distributions built on it follow:

	Marsaglia, G. & Tsang, W. W. (2000). "A Simple Method for Generating Gamma
	Variables". ACM Transactions on Mathematical Software. Vol. 26 (Issue 3).
*/
package dist
