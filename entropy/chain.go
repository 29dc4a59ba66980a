// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entropy

import (
	"errors"
	"fmt"
	"io"

	"github.com/decred/dcrrand/rngcore"
)

// Chain is an entropy source which reads from a primary source and falls back
// to a secondary source whenever the primary fails for any reason.
//
// The default chain created by NewChain uses OSSource as the primary and a
// JitterSource, calibrated on first use, as the fallback.  Chain is not safe
// for concurrent access.
type Chain struct {
	primary  io.Reader
	fallback io.Reader
}

// NewChain returns the default chain of the operating system source followed
// by the timing jitter source.
func NewChain() *Chain {
	return NewChainWith(NewOSSource(), new(lazyJitter))
}

// NewChainWith returns a chain over the provided sources.
func NewChainWith(primary, fallback io.Reader) *Chain {
	return &Chain{primary: primary, fallback: fallback}
}

// Read fills p from the primary source, or from the fallback source if the
// primary fails.  Either all of p is filled or an error is returned.  The
// error kind is rngcore.ErrEntropyTransient when either failure was transient
// and rngcore.ErrEntropyUnavailable otherwise.
func (c *Chain) Read(p []byte) (int, error) {
	_, err := io.ReadFull(c.primary, p)
	if err == nil {
		return len(p), nil
	}
	log.Warnf("Primary entropy source failed, falling back: %v", err)

	_, fbErr := io.ReadFull(c.fallback, p)
	if fbErr == nil {
		return len(p), nil
	}
	clear(p)

	kind := rngcore.ErrEntropyUnavailable
	if errors.Is(err, rngcore.ErrEntropyTransient) ||
		errors.Is(fbErr, rngcore.ErrEntropyTransient) {

		kind = rngcore.ErrEntropyTransient
	}
	str := fmt.Sprintf("all entropy sources failed (primary: %v)", err)
	return 0, rngcore.WrapError(kind, str, fbErr)
}
