// SPDX-License-Identifier: EPL-2.0

package wavtest

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/riff"
	"github.com/ik5/wavpcm/formats/wav"
)

func fourCC(id [4]byte) uint32 {
	return binary.LittleEndian.Uint32(id[:])
}

// Canonical returns the header of a 16-bit PCM file with dataSize payload
// bytes. The magic fields are taken from the go-audio/riff chunk IDs.
func Canonical(sampleRate, channels, dataSize int) wav.Header {
	numChannels := uint16(channels)
	bitsPerSample := uint16(16)

	return wav.Header{
		ChunkID:       fourCC(riff.RiffID),
		ChunkSize:     uint32(36 + dataSize),
		Format:        fourCC(riff.WavFormatID),
		Subchunk1ID:   fourCC(riff.FmtID),
		Subchunk1Size: 16, // PCM fmt chunk size
		AudioFormat:   1,  // PCM format
		NumChannels:   numChannels,
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(sampleRate) * uint32(numChannels) * uint32(bitsPerSample/8),
		BlockAlign:    numChannels * (bitsPerSample / 8),
		BitsPerSample: bitsPerSample,
		Subchunk2ID:   fourCC(riff.DataFormatID),
		Subchunk2Size: uint32(dataSize),
	}
}

// Build lays h out as the 44-byte header and appends payload verbatim, so
// callers can make the payload disagree with Subchunk2Size.
func Build(h wav.Header, payload []byte) []byte {
	out := make([]byte, wav.HeaderSize, wav.HeaderSize+len(payload))

	binary.LittleEndian.PutUint32(out[0:4], h.ChunkID)
	binary.LittleEndian.PutUint32(out[4:8], h.ChunkSize)
	binary.LittleEndian.PutUint32(out[8:12], h.Format)
	binary.LittleEndian.PutUint32(out[12:16], h.Subchunk1ID)
	binary.LittleEndian.PutUint32(out[16:20], h.Subchunk1Size)
	binary.LittleEndian.PutUint16(out[20:22], h.AudioFormat)
	binary.LittleEndian.PutUint16(out[22:24], h.NumChannels)
	binary.LittleEndian.PutUint32(out[24:28], h.SampleRate)
	binary.LittleEndian.PutUint32(out[28:32], h.ByteRate)
	binary.LittleEndian.PutUint16(out[32:34], h.BlockAlign)
	binary.LittleEndian.PutUint16(out[34:36], h.BitsPerSample)
	binary.LittleEndian.PutUint32(out[36:40], h.Subchunk2ID)
	binary.LittleEndian.PutUint32(out[40:44], h.Subchunk2Size)

	return append(out, payload...)
}

// PCM16 encodes samples as little-endian int16 bytes.
func PCM16(samples []int16) []byte {
	buf := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(buf[i*2:i*2+2], uint16(s))
	}
	return buf
}

// WriteWAV16 writes a complete canonical 16-bit PCM file.
func WriteWAV16(w io.Writer, sampleRate, channels int, samples []int16) error {
	payload := PCM16(samples)
	if _, err := w.Write(Build(Canonical(sampleRate, channels, len(payload)), payload)); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
