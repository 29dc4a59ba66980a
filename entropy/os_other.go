// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build !linux

package entropy

import (
	"crypto/rand"

	"github.com/decred/dcrrand/rngcore"
)

// readOS fills p using the platform source behind crypto/rand.
func readOS(p []byte) error {
	if _, err := rand.Read(p); err != nil {
		return rngcore.WrapError(rngcore.ErrEntropyUnavailable,
			"operating system entropy source failed", err)
	}
	return nil
}
