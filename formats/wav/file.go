// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"time"
)

// File is a fully decoded canonical WAV file. It is never modified after
// decoding; accessors hand out copies.
type File struct {
	header  Header
	samples []int16
}

// Header returns a copy of the decoded header.
func (f *File) Header() Header { return f.header }

// Samples returns a copy of the decoded 16-bit samples, interleaved as stored.
func (f *File) Samples() []int16 { return slices.Clone(f.samples) }

// NumSamples is the number of decoded int16 values (not frames).
func (f *File) NumSamples() int { return len(f.samples) }

// Duration derives the playing time from the sample count, channel count and
// sample rate. It is zero when either of the latter is zero.
func (f *File) Duration() time.Duration {
	ch := time.Duration(f.header.NumChannels)
	rate := time.Duration(f.header.SampleRate)
	if ch == 0 || rate == 0 {
		return 0
	}

	return time.Duration(len(f.samples)) * time.Second / (ch * rate)
}

type Decoder struct{}

// Decode reads a header, checks its magic fields and then reads the
// payload. Nothing is returned unless every step succeeds.
func (Decoder) Decode(r io.Reader) (*File, error) {
	header, err := decodeHeader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if err := header.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	samples, err := decodePayload(r, header.Subchunk2Size)
	if err != nil {
		return nil, fmt.Errorf("payload: %w", err)
	}

	return &File{
		header:  header,
		samples: samples,
	}, nil
}

// Decode is shorthand for Decoder{}.Decode(r).
func Decode(r io.Reader) (*File, error) {
	return Decoder{}.Decode(r)
}

// ReadFile opens path, decodes it and closes it again on every path.
func ReadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer fh.Close()

	info, err := fh.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}

	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrOpen, path)
	}

	f, err := Decode(bufio.NewReader(fh))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}
