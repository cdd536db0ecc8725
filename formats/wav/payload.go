// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
)

// maxPrealloc caps the up-front sample allocation; the slice grows past it
// only as samples actually arrive, so a lying data size fails on the short
// read instead of on a huge make.
const maxPrealloc = 1 << 20

// decodePayload reads size/2 little-endian int16 samples. An odd trailing
// byte is left unread.
func decodePayload(r io.Reader, size uint32) ([]int16, error) {
	count := int(size / 2)
	samples := make([]int16, 0, min(count, maxPrealloc))

	for i := range count {
		s, err := readLE[int16](r)
		if err != nil {
			return nil, fmt.Errorf("sample %d of %d: %w", i, count, err)
		}
		samples = append(samples, s)
	}

	return samples, nil
}
