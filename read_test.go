// SPDX-License-Identifier: EPL-2.0

package wavpcm

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/ik5/wavpcm/formats/wav"
	"github.com/ik5/wavpcm/internal/wavtest"
)

func writeTemp(t *testing.T, sampleRate, channels int, samples []int16) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "in.wav")
	out, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer out.Close()

	if err := wavtest.WriteWAV16(out, sampleRate, channels, samples); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestReadPCM16_Basic(t *testing.T) {
	t.Parallel()

	samples := []int16{100, -100, 200, -200, 300, -300}
	path := writeTemp(t, 44100, 2, samples)

	pcm16, rate, err := ReadPCM16(path)
	if err != nil {
		t.Fatalf("ReadPCM16() error = %v", err)
	}

	if rate != 44100 {
		t.Errorf("ReadPCM16() rate = %d, want 44100", rate)
	}

	if !slices.Equal(pcm16, samples) {
		t.Errorf("ReadPCM16() = %v, want %v", pcm16, samples)
	}
}

func TestReadPCM16_Empty(t *testing.T) {
	t.Parallel()

	pcm16, rate, err := ReadPCM16(writeTemp(t, 8000, 1, nil))
	if err != nil {
		t.Fatalf("ReadPCM16() error = %v", err)
	}

	if len(pcm16) != 0 || rate != 8000 {
		t.Errorf("ReadPCM16() = %d samples at %d Hz, want 0 at 8000", len(pcm16), rate)
	}
}

func TestReadPCM16_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	short := filepath.Join(dir, "short.wav")
	if err := os.WriteFile(short, []byte("RIFF"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want error
	}{
		{"missing", filepath.Join(dir, "missing.wav"), wav.ErrOpen},
		{"short", short, wav.ErrShortRead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pcm16, rate, err := ReadPCM16(tt.path)
			if !errors.Is(err, tt.want) {
				t.Errorf("ReadPCM16() error = %v, want %v", err, tt.want)
			}

			if pcm16 != nil || rate != 0 {
				t.Errorf("ReadPCM16() = %v, %d on failure", pcm16, rate)
			}
		})
	}
}
