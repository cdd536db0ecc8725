// SPDX-License-Identifier: EPL-2.0

package wavtest

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// EncodeGoAudio writes samples to path with the go-audio/wav encoder, which
// gives tests a second, independent producer of canonical files.
func EncodeGoAudio(path string, sampleRate, channels int, samples []int16) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer out.Close()

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	enc := gowav.NewEncoder(out, sampleRate, 16, channels, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encoding: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("closing encoder: %w", err)
	}

	return nil
}

// DecodeGoAudio decodes data with the go-audio/wav decoder and returns the
// raw integer samples.
func DecodeGoAudio(data []byte) ([]int, error) {
	dec := gowav.NewDecoder(bytes.NewReader(data))
	if !dec.IsValidFile() {
		return nil, errors.New("go-audio rejected the file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return buf.Data, nil
}
