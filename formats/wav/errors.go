// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrOpen indicates the path could not be opened as a regular file
	ErrOpen = errors.New("cannot open WAV file")

	// ErrShortRead indicates the stream ended inside a header field or sample
	ErrShortRead = errors.New("short read")

	// ErrInvalidMagic indicates one of the RIFF/WAVE/fmt/data markers mismatched
	ErrInvalidMagic = errors.New("invalid WAV magic")
)
