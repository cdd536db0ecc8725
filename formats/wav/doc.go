// SPDX-License-Identifier: EPL-2.0

// Package wav decodes canonical 16-bit PCM WAV files into memory.
//
// A canonical file is a fixed 44-byte header (RIFF, WAVE, a 16-byte fmt
// chunk and a data chunk header) followed directly by the sample payload.
// Extension chunks, non-PCM codecs and other bit depths are not handled.
//
// # Decoding
//
// ReadFile opens a path, decodes it and closes it again:
//
//	file, err := wav.ReadFile("audio.wav")
//	if err != nil {
//	    // Handle error
//	}
//
//	header := file.Header()
//	samples := file.Samples() // []int16, interleaved
//
// Decode does the same for any io.Reader.
//
// Decoding runs in three steps: the header is read field by field in
// little-endian order, its RIFF/WAVE/fmt/data markers are checked, and then
// Subchunk2Size/2 samples are read. Any failing step aborts the whole
// decode and no File is returned.
//
// # Validation
//
// Only the four magic fields are checked. ChunkSize, AudioFormat,
// BitsPerSample and the other format fields are reported as found, and the
// payload is always read as signed 16-bit samples. An odd Subchunk2Size
// leaves its last byte unread.
//
// # Error Handling
//
// Failures wrap one of three errors:
//   - ErrOpen: the path could not be opened or is not a regular file
//   - ErrShortRead: the stream ended inside the header or the payload
//   - ErrInvalidMagic: one of the four markers did not match
//
// Example:
//
//	_, err := wav.ReadFile(path)
//	if errors.Is(err, wav.ErrInvalidMagic) {
//	    fmt.Println("Not a WAV file")
//	}
//
// # Interop
//
// File.IntBuffer converts the samples into a github.com/go-audio/audio
// IntBuffer for use with the go-audio encoders and transforms.
package wav
