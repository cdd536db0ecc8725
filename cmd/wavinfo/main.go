// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/ik5/wavpcm/formats/wav"
	"github.com/ik5/wavpcm/internal/cli"
	"gopkg.in/yaml.v3"
)

// version is set via ldflags at build time
var version = "dev"

// Options are the command line flags.
type Options struct {
	Input   string `arg:"" name:"input" help:"Input WAV file" optional:""`
	Samples int    `help:"Number of leading samples to print" default:"8"`
	YAML    bool   `name:"yaml" help:"Print the report as YAML"`
	Version bool   `help:"Show version information"`
}

// report is the YAML shape of a decoded file.
type report struct {
	Path     string     `yaml:"path"`
	Header   wav.Header `yaml:"header"`
	Samples  int        `yaml:"samples"`
	Duration string     `yaml:"duration"`
	First    []int16    `yaml:"first,flow"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the process exit code: 0 when the file decoded, 1 when it did
// not, 2 on usage errors.
func run(args []string, stdout, stderr io.Writer) int {
	var opts Options

	parser, err := kong.New(&opts,
		kong.Name("wavinfo"),
		kong.Description("Decode a canonical 16-bit PCM WAV file and report what it holds."),
		kong.Vars{"version": version},
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
	)
	if err != nil {
		cli.PrintError(stderr, err.Error())
		return 2
	}

	if _, err := parser.Parse(args); err != nil {
		cli.PrintError(stderr, err.Error())
		return 2
	}

	if opts.Version {
		cli.PrintVersion(stdout, "wavinfo", version)
		return 0
	}

	if opts.Input == "" {
		cli.PrintError(stderr, "<input> is required")
		return 2
	}

	if opts.Samples < 0 {
		cli.PrintError(stderr, fmt.Sprintf("invalid --samples value: %d", opts.Samples))
		return 2
	}

	file, err := wav.ReadFile(opts.Input)
	if err != nil {
		cli.PrintError(stderr, err.Error())
		return 1
	}

	first := file.Samples()[:min(opts.Samples, file.NumSamples())]

	if opts.YAML {
		out, err := yaml.Marshal(report{
			Path:     opts.Input,
			Header:   file.Header(),
			Samples:  file.NumSamples(),
			Duration: file.Duration().String(),
			First:    first,
		})
		if err != nil {
			cli.PrintError(stderr, err.Error())
			return 1
		}
		stdout.Write(out)
		return 0
	}

	printReport(stdout, opts.Input, file, first)
	return 0
}

func printReport(w io.Writer, path string, file *wav.File, first []int16) {
	h := file.Header()

	cli.PrintSuccess(w, fmt.Sprintf("decoded %s", path))

	cli.PrintSection(w, "Header")
	cli.PrintInfo(w, "Chunk", fmt.Sprintf("%q, %d bytes", wav.FourCC(h.ChunkID), h.ChunkSize))
	cli.PrintInfo(w, "Format", fmt.Sprintf("%q", wav.FourCC(h.Format)))
	cli.PrintInfo(w, "Subchunk 1", fmt.Sprintf("%q, %d bytes", wav.FourCC(h.Subchunk1ID), h.Subchunk1Size))
	cli.PrintInfo(w, "Audio format", fmt.Sprint(h.AudioFormat))
	cli.PrintInfo(w, "Channels", fmt.Sprint(h.NumChannels))
	cli.PrintInfo(w, "Sample rate", fmt.Sprintf("%d Hz", h.SampleRate))
	cli.PrintInfo(w, "Byte rate", fmt.Sprintf("%d B/s", h.ByteRate))
	cli.PrintInfo(w, "Block align", fmt.Sprint(h.BlockAlign))
	cli.PrintInfo(w, "Bits per sample", fmt.Sprint(h.BitsPerSample))
	cli.PrintInfo(w, "Subchunk 2", fmt.Sprintf("%q, %s", wav.FourCC(h.Subchunk2ID), cli.FormatBytes(int64(h.Subchunk2Size))))

	cli.PrintSection(w, "Payload")
	cli.PrintInfo(w, "Samples", fmt.Sprint(file.NumSamples()))
	cli.PrintInfo(w, "Duration", cli.FormatDuration(file.Duration()))
	cli.PrintInfo(w, "First", cli.FormatSamples(first, file.NumSamples()))
}
