// SPDX-License-Identifier: EPL-2.0

package wav

import (
	goaudio "github.com/go-audio/audio"
)

// IntBuffer copies the samples into a go-audio IntBuffer so they can be fed
// to go-audio encoders and transforms. The buffer does not alias the File.
func (f *File) IntBuffer() *goaudio.IntBuffer {
	data := make([]int, len(f.samples))
	for i, s := range f.samples {
		data[i] = int(s)
	}

	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: int(f.header.NumChannels),
			SampleRate:  int(f.header.SampleRate),
		},
		Data:           data,
		SourceBitDepth: 16,
	}
}
