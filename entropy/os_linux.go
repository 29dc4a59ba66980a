// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build linux

package entropy

import (
	"errors"

	"github.com/decred/dcrrand/rngcore"
	"golang.org/x/sys/unix"
)

// readOS fills p using the getrandom system call without blocking.  A kernel
// whose entropy pool has not yet been initialized results in a transient
// error rather than waiting for it.
func readOS(p []byte) error {
	for len(p) > 0 {
		n, err := unix.Getrandom(p, unix.GRND_NONBLOCK)
		switch {
		case err == nil && n > 0:
			p = p[n:]

		case err == nil:
			return rngcore.MakeError(rngcore.ErrEntropyTransient,
				"getrandom returned no data")

		case errors.Is(err, unix.EINTR):
			continue

		case errors.Is(err, unix.EAGAIN):
			return rngcore.WrapError(rngcore.ErrEntropyTransient,
				"kernel entropy pool is not initialized", err)

		case errors.Is(err, unix.ENOSYS), errors.Is(err, unix.EPERM):
			return rngcore.WrapError(rngcore.ErrEntropyUnavailable,
				"getrandom is not permitted or not implemented", err)

		default:
			return rngcore.WrapError(rngcore.ErrEntropyTransient,
				"getrandom failed", err)
		}
	}
	return nil
}
