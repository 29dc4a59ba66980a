// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entropy

// OSSource reads entropy provided by the operating system.  It is safe for
// concurrent access.
type OSSource struct{}

// NewOSSource returns a source reading from the operating system.
func NewOSSource() *OSSource {
	return new(OSSource)
}

// Read fills p with entropy from the operating system.  Either all of p is
// filled or an error is returned.
func (*OSSource) Read(p []byte) (int, error) {
	if err := readOS(p); err != nil {
		return 0, err
	}
	return len(p), nil
}
