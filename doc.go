// SPDX-License-Identifier: EPL-2.0

// Package wavpcm reads canonical 16-bit PCM WAV files into memory.
//
// The decoding itself lives in formats/wav; this package adds a one-call
// helper for callers that only want the samples and the sample rate.
//
// # Quick Start
//
//	samples, rate, err := wavpcm.ReadPCM16("audio.wav")
//	if err != nil {
//	    // errors.Is(err, wav.ErrOpen / wav.ErrShortRead / wav.ErrInvalidMagic)
//	}
//
//	// samples is []int16, interleaved when the file has several channels
//
// # Full Access
//
// For the complete 44-byte header use the wav package directly:
//
//	file, err := wav.ReadFile("audio.wav")
//	header := file.Header()   // all 13 header fields
//	samples := file.Samples() // copy of the payload
//
// # File Format
//
// Only the canonical layout is accepted: a 44-byte header whose RIFF,
// WAVE, "fmt " and "data" markers sit at fixed offsets, followed by
// Subchunk2Size bytes of little-endian int16 samples.
//
// # Command Line
//
// cmd/wavinfo decodes a file and prints its header and first samples.
package wavpcm
