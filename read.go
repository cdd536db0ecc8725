// SPDX-License-Identifier: EPL-2.0

package wavpcm

import (
	"fmt"

	"github.com/ik5/wavpcm/formats/wav"
)

// ReadPCM16 is a convenience wrapper around wav.ReadFile that returns only
// what most callers need.
//
// Returns:
//   - []int16: the decoded samples, interleaved as stored
//   - int: the sample rate from the header, in Hz
//   - error: a wrapped wav.ErrOpen, wav.ErrShortRead or wav.ErrInvalidMagic
//
// Note: the header's channel count, bit depth and format tag are not
// checked. Use wav.ReadFile when they matter.
func ReadPCM16(path string) ([]int16, int, error) {
	file, err := wav.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	return file.Samples(), int(file.Header().SampleRate), nil
}
