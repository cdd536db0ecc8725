// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
)

// HeaderSize is the byte length of a canonical WAV header.
const HeaderSize = 44

// Magic values are the four-character codes read as little-endian uint32.
const (
	RIFFMagic uint32 = 0x46464952 // "RIFF"
	WAVEMagic uint32 = 0x45564157 // "WAVE"
	FmtMagic  uint32 = 0x20746D66 // "fmt "
	DataMagic uint32 = 0x61746164 // "data"
)

// Header is the fixed 44-byte canonical WAV header, field for field.
// Only the four magic fields are checked; every other value is taken as is.
type Header struct {
	ChunkID       uint32 `yaml:"chunk_id"`
	ChunkSize     uint32 `yaml:"chunk_size"`
	Format        uint32 `yaml:"format"`
	Subchunk1ID   uint32 `yaml:"subchunk1_id"`
	Subchunk1Size uint32 `yaml:"subchunk1_size"`
	AudioFormat   uint16 `yaml:"audio_format"`
	NumChannels   uint16 `yaml:"num_channels"`
	SampleRate    uint32 `yaml:"sample_rate"`
	ByteRate      uint32 `yaml:"byte_rate"`
	BlockAlign    uint16 `yaml:"block_align"`
	BitsPerSample uint16 `yaml:"bits_per_sample"`
	Subchunk2ID   uint32 `yaml:"subchunk2_id"`
	Subchunk2Size uint32 `yaml:"subchunk2_size"`
}

// readField fills dst unless an earlier field already failed.
func readField[T fixedInt](r io.Reader, name string, dst *T, err *error) {
	if *err != nil {
		return
	}

	v, rerr := readLE[T](r)
	if rerr != nil {
		*err = fmt.Errorf("header %s: %w", name, rerr)
		return
	}
	*dst = v
}

// decodeHeader reads the 13 header fields in on-disk order. It is all or
// nothing: on failure the zero Header is returned.
func decodeHeader(r io.Reader) (Header, error) {
	var (
		h   Header
		err error
	)

	readField(r, "chunk_id", &h.ChunkID, &err)
	readField(r, "chunk_size", &h.ChunkSize, &err)
	readField(r, "format", &h.Format, &err)
	readField(r, "subchunk1_id", &h.Subchunk1ID, &err)
	readField(r, "subchunk1_size", &h.Subchunk1Size, &err)
	readField(r, "audio_format", &h.AudioFormat, &err)
	readField(r, "num_channels", &h.NumChannels, &err)
	readField(r, "sample_rate", &h.SampleRate, &err)
	readField(r, "byte_rate", &h.ByteRate, &err)
	readField(r, "block_align", &h.BlockAlign, &err)
	readField(r, "bits_per_sample", &h.BitsPerSample, &err)
	readField(r, "subchunk2_id", &h.Subchunk2ID, &err)
	readField(r, "subchunk2_size", &h.Subchunk2Size, &err)

	if err != nil {
		return Header{}, err
	}

	return h, nil
}

// Valid reports whether all four magic fields hold their expected values.
func (h Header) Valid() bool {
	return h.ChunkID == RIFFMagic &&
		h.Format == WAVEMagic &&
		h.Subchunk1ID == FmtMagic &&
		h.Subchunk2ID == DataMagic
}

// Validate is Valid with a reason: it names the first mismatching magic field.
func (h Header) Validate() error {
	checks := [...]struct {
		name      string
		got, want uint32
	}{
		{"chunk_id", h.ChunkID, RIFFMagic},
		{"format", h.Format, WAVEMagic},
		{"subchunk1_id", h.Subchunk1ID, FmtMagic},
		{"subchunk2_id", h.Subchunk2ID, DataMagic},
	}

	for _, c := range checks {
		if c.got != c.want {
			return fmt.Errorf("%w: %s is %q (%#08x), want %q",
				ErrInvalidMagic, c.name, FourCC(c.got), c.got, FourCC(c.want))
		}
	}

	return nil
}

// FourCC renders a little-endian four-character code as text.
func FourCC(v uint32) string {
	return string([]byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)})
}
