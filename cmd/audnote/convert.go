// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ik5/audnote"
	"github.com/ik5/audnote/audio"
	"github.com/ik5/audnote/fault"
	"github.com/ik5/audnote/formats/wav"
	"github.com/ik5/audnote/internal/codecs"
	"github.com/ik5/audnote/internal/settings"
)

var (
	errNoWriter       = fmt.Errorf("%w: no writer given", fault.ErrInvalidConfiguration)
	errOutputConflict = fmt.Errorf("%w: output and stdout cannot be combined", fault.ErrInvalidConfiguration)
	errNoFormat       = fmt.Errorf("%w: reading stdin needs --format", fault.ErrInvalidConfiguration)
)

// options is the full set of conversion options. A --conf file is decoded on
// top of the values taken from flags, so keys present in the file win.
type options struct {
	Writer string `json:"writer"`
	Output string `json:"output"`
	Stdout bool   `json:"stdout"`
	settings.Settings

	format    string
	dumpInput string
}

func newConvertCmd(a *app) *cobra.Command {
	var (
		opts      options
		conf      string
		filters   string
		threshold float64
	)

	cmd := &cobra.Command{
		Use:   "convert <input>",
		Short: "Transcribe an audio file",
		Long: `Transcribe an audio file and write the melody with the chosen writer.

Without --output or --stdout the result is written next to the input, with
the writer's extension. Use "-" as input to read from stdin together with
--format.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("filters") {
				specs, err := settings.ParseFilters(filters)
				if err != nil {
					return err
				}
				opts.Filters = specs
			}
			if flags.Changed("threshold") {
				opts.Threshold = &threshold
			}
			if conf != "" {
				if err := loadConf(conf, &opts); err != nil {
					return err
				}
			}
			return a.convert(cmd, args[0], opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&conf, "conf", "c", "", "JSON configuration file; its keys override flags")
	f.StringVarP(&opts.Writer, "writer", "w", "", "output writer (see 'audnote writers')")
	f.StringVarP(&filters, "filters", "f", "", `comma separated filters, e.g. "seconds,transpose:-12,min_duration:0.1"`)
	f.StringVarP(&opts.Output, "output", "o", "", "output file")
	f.BoolVar(&opts.Stdout, "stdout", false, "write the result to stdout")
	f.StringVar(&opts.format, "format", "", "input format; defaults to the input extension")
	f.StringVar(&opts.dumpInput, "dump-input", "", "also write the analyzed mono signal to this WAV file")

	f.IntVar(&opts.WindowSize, "window", 0, "analysis window in samples (default 4096)")
	f.StringVar(&opts.Partial, "partial", "", "short trailing window: drop or pad")
	f.StringVar(&opts.Apodization, "apodization", "", "window function: none, hann, hamming or blackman")
	f.StringVar(&opts.Silence, "silence", "", "windows without pitch: rest, skip or fail")
	f.StringVar(&opts.Range, "range", "", "notes outside 0..127: clamp or fail")
	f.Float64Var(&threshold, "threshold", 0, "silence threshold on the spectrum magnitude")
	f.IntVar(&opts.Workers, "workers", 0, "parallel analyzers (default GOMAXPROCS)")
	f.IntVar(&opts.SampleRate, "rate", 0, "resample to this rate before analysis")

	cmd.MarkFlagsMutuallyExclusive("output", "stdout")
	return cmd
}

func loadConf(path string, opts *options) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading configuration: %w", err)
	}
	if err := json.Unmarshal(data, opts); err != nil {
		return fmt.Errorf("%w: configuration %s: %w", fault.ErrInvalidConfiguration, path, err)
	}
	return nil
}

func (a *app) convert(cmd *cobra.Command, input string, opts options) error {
	log := a.log.With(zap.String("run_id", uuid.NewString()), zap.String("input", input))

	if opts.Writer == "" {
		return fmt.Errorf("%w (valid: %v)", errNoWriter, codecs.Writers().Names())
	}
	if opts.Stdout && opts.Output != "" {
		return errOutputConflict
	}
	w, err := codecs.Writers().Lookup(opts.Writer)
	if err != nil {
		return err
	}

	cfg, err := opts.Apply(audnote.DefaultConfig())
	if err != nil {
		return err
	}
	cfg.Logger = log
	if err := cfg.Validate(); err != nil {
		return err
	}

	dec, err := decoderFor(input, opts.format)
	if err != nil {
		return err
	}
	in, err := openInput(cmd, input)
	if err != nil {
		return err
	}
	src, err := dec.Decode(in)
	if err != nil {
		in.Close()
		return fmt.Errorf("decoding %s: %w", input, err)
	}
	defer src.Close()

	output := opts.Output
	if output == "" && !opts.Stdout {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + w.Extension()
	}
	w = codecs.Named(w, strings.TrimSuffix(filepath.Base(output), filepath.Ext(output)))

	var buf bytes.Buffer
	if err := audnote.Convert(cmd.Context(), src, cfg, w, &buf); err != nil {
		return err
	}

	size := buf.Len()
	if opts.Stdout {
		_, err = buf.WriteTo(cmd.OutOrStdout())
	} else {
		err = os.WriteFile(output, buf.Bytes(), 0o644)
	}
	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	log.Info("written", zap.String("writer", opts.Writer), zap.String("output", output), zap.Int("bytes", size))

	if opts.dumpInput != "" {
		return dumpInput(dec, input, opts.dumpInput, cfg.SampleRate, log)
	}
	return nil
}

func decoderFor(input, format string) (audio.Decoder, error) {
	reg := codecs.Decoders()
	switch {
	case format != "":
		if d, ok := reg.Get(format); ok {
			return d, nil
		}
		return nil, fmt.Errorf("%w: %q (known: %v)", audio.ErrUnknownFormat, format, reg.Formats())
	case input == "-":
		return nil, errNoFormat
	}
	return reg.ForPath(input)
}

func openInput(cmd *cobra.Command, input string) (io.ReadCloser, error) {
	if input == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(input)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	return f, nil
}

// dumpInput decodes input again and stores the mono signal the analyzer
// saw as 16-bit WAV.
func dumpInput(dec audio.Decoder, input, path string, rate int, log *zap.Logger) error {
	if input == "-" {
		return fmt.Errorf("%w: --dump-input cannot re-read stdin", fault.ErrInvalidConfiguration)
	}
	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("decoding %s: %w", input, err)
	}
	defer src.Close()

	pcm16, outRate, err := audnote.Mono16(src, rate, 0)
	if err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := wav.WriteWAV16(out, outRate, pcm16); err != nil {
		out.Close()
		return errors.Join(err, os.Remove(path))
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	log.Debug("dumped input", zap.String("path", path), zap.Int("samples", len(pcm16)), zap.Int("sample_rate", outRate))
	return nil
}
