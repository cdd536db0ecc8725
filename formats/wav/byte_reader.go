// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// fixedInt lists the integer widths a WAV header or payload is built from.
type fixedInt interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32
}

// readLE consumes exactly sizeof(T) bytes from r and assembles them
// little-endian: byte i lands in bits [8i, 8i+8).
// On a short read the zero value is returned with an error wrapping ErrShortRead.
func readLE[T fixedInt](r io.Reader) (T, error) {
	var (
		v   T
		buf [4]byte
	)

	size := binary.Size(v)
	if _, err := io.ReadFull(r, buf[:size]); err != nil {
		return 0, fmt.Errorf("%w: want %d bytes: %w", ErrShortRead, size, err)
	}

	for i := range size {
		v |= T(buf[i]) << (8 * i)
	}

	return v, nil
}
