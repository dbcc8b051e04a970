// SPDX-License-Identifier: EPL-2.0

package audnote

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ik5/audnote/audio"
	"github.com/ik5/audnote/event"
	"github.com/ik5/audnote/fault"
	"github.com/ik5/audnote/filter"
	"github.com/ik5/audnote/internal/audiotest"
	"github.com/ik5/audnote/note"
	"github.com/ik5/audnote/spectrum"
)

const rate = 44100

type pair struct {
	note note.Note
	dur  float64
}

func pairs(s event.Stream) []pair {
	out := make([]pair, len(s))
	for i, e := range s {
		out[i] = pair{e.Note, e.Duration.Value()}
	}
	return out
}

func equalPairs(a, b []pair) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].note != b[i].note || math.Abs(a[i].dur-b[i].dur) > 1e-9 {
			return false
		}
	}
	return true
}

// a4a5 is two windows of A4 followed by one of A5 at 44.1 kHz.
func a4a5() *audio.BufferSource {
	return audio.NewBufferSource(rate, 1, audiotest.Melody(rate,
		audiotest.Segment{Hz: 440, Samples: 8192},
		audiotest.Segment{Hz: 880, Samples: 4096},
	))
}

func windowsConfig(filters ...filter.Filter) Config {
	cfg := DefaultConfig()
	cfg.Filters = filters
	cfg.TargetUnit = event.Windows
	return cfg
}

func TestTranscribe_EndToEnd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		filters []filter.Filter
		want    []pair
	}{
		{
			name: "raw",
			want: []pair{{69, 2}, {81, 1}},
		},
		{
			name:    "transpose octave",
			filters: []filter.Filter{filter.Transpose{Semitones: 12}},
			want:    []pair{{81, 2}, {93, 1}},
		},
		{
			name:    "min duration",
			filters: []filter.Filter{filter.MinDuration{Threshold: 2}},
			want:    []pair{{69, 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Transcribe(context.Background(), a4a5(), windowsConfig(tt.filters...))
			if err != nil {
				t.Fatalf("Transcribe() error = %v", err)
			}
			if !equalPairs(pairs(got), tt.want) {
				t.Errorf("Transcribe() = %v, want %v", pairs(got), tt.want)
			}
		})
	}
}

func TestTranscribe_DefaultSeconds(t *testing.T) {
	t.Parallel()

	got, err := Transcribe(context.Background(), a4a5(), DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	want := []pair{{69, 2 * 4096.0 / rate}, {81, 4096.0 / rate}}
	if !equalPairs(pairs(got), want) {
		t.Errorf("Transcribe() = %v, want %v", pairs(got), want)
	}
	for _, e := range got {
		if e.Duration.Unit() != event.Seconds {
			t.Errorf("event %v not in seconds", e)
		}
	}
}

func TestTranscribe_SilencePolicy(t *testing.T) {
	t.Parallel()

	gap := func() audio.Source {
		return audio.NewBufferSource(rate, 1, audiotest.Melody(rate,
			audiotest.Segment{Hz: 440, Samples: 4096},
			audiotest.Segment{Samples: 4096},
			audiotest.Segment{Hz: 440, Samples: 4096},
		))
	}

	cfg := windowsConfig()
	got, err := Transcribe(context.Background(), gap(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if want := []pair{{69, 1}, {note.Rest, 1}, {69, 1}}; !equalPairs(pairs(got), want) {
		t.Errorf("rest: got %v, want %v", pairs(got), want)
	}

	cfg.Silence = SilenceSkip
	got, err = Transcribe(context.Background(), gap(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if want := []pair{{69, 2}}; !equalPairs(pairs(got), want) {
		t.Errorf("skip: got %v, want %v", pairs(got), want)
	}

	cfg.Silence = SilenceFail
	_, err = Transcribe(context.Background(), gap(), cfg)
	if !errors.Is(err, note.ErrSilence) || !errors.Is(err, fault.ErrInvalidInput) {
		t.Errorf("fail: error = %v, want note.ErrSilence", err)
	}
}

func TestTranscribe_AllSilentSkipped(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Silence = SilenceSkip
	got, err := Transcribe(context.Background(), audiotest.NewSilentSource(rate, 1, 3*4096), cfg)
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Transcribe() = %v, want empty", got)
	}
}

func TestTranscribe_UnitErrors(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Filters = nil
	_, err := Transcribe(context.Background(), a4a5(), cfg)
	if !errors.Is(err, ErrUnitNotFinal) || !errors.Is(err, fault.ErrUnit) {
		t.Errorf("windows left unconverted: error = %v, want ErrUnitNotFinal", err)
	}

	cfg.Filters = filter.Chain{filter.DurationUnit{}, filter.DurationUnit{}}
	_, err = Transcribe(context.Background(), a4a5(), cfg)
	if !errors.Is(err, event.ErrAlreadyConverted) || !errors.Is(err, fault.ErrUnit) {
		t.Errorf("double conversion: error = %v, want ErrAlreadyConverted", err)
	}
}

func TestTranscribe_InvalidConfigReadsNothing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		edit func(*Config)
	}{
		{name: "window", edit: func(c *Config) { c.WindowSize = 0 }},
		{name: "workers", edit: func(c *Config) { c.Workers = -1 }},
		{name: "threshold", edit: func(c *Config) { c.SilenceThreshold = math.NaN() }},
		{name: "silence", edit: func(c *Config) { c.Silence = 9 }},
		{name: "unit", edit: func(c *Config) { c.TargetUnit = 9 }},
		{name: "nil filter", edit: func(c *Config) { c.Filters = filter.Chain{nil} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.edit(&cfg)
			src := audiotest.NewSineSource(rate, 1, 8192, 440)

			_, err := Transcribe(context.Background(), src, cfg)
			if !errors.Is(err, fault.ErrInvalidConfiguration) {
				t.Errorf("error = %v, want invalid configuration", err)
			}
			if src.Reads() != 0 {
				t.Errorf("source read %d times before validation failed", src.Reads())
			}
		})
	}
}

func TestTranscribe_ShortInput(t *testing.T) {
	t.Parallel()

	_, err := Transcribe(context.Background(), audiotest.NewSineSource(rate, 1, 100, 440), DefaultConfig())
	if !errors.Is(err, spectrum.ErrNoWindows) {
		t.Errorf("error = %v, want ErrNoWindows", err)
	}

	cfg := windowsConfig()
	cfg.Partial = spectrum.PartialPad
	got, err := Transcribe(context.Background(), audiotest.NewSineSource(rate, 1, 4000, 440), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Note != 69 {
		t.Errorf("padded = %v, want one A4", got)
	}
}

func TestTranscribe_Range(t *testing.T) {
	t.Parallel()

	high := func() audio.Source { return audiotest.NewSineSource(rate, 1, 4096, 14000) }

	cfg := windowsConfig()
	got, err := Transcribe(context.Background(), high(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Note != note.Max {
		t.Errorf("clamped = %v, want note %d", got, note.Max)
	}

	cfg.Range = note.RangeFail
	if _, err := Transcribe(context.Background(), high(), cfg); !errors.Is(err, fault.ErrRange) {
		t.Errorf("fail: error = %v, want ErrRange", err)
	}
}

func TestTranscribe_PreparesInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		src        audio.Source
		sampleRate int
	}{
		{name: "stereo", src: audiotest.NewSineSource(rate, 2, 3*4096, 440)},
		{name: "upsampled", src: audiotest.NewSineSource(22050, 1, 3*22050, 440), sampleRate: rate},
		{name: "downsampled", src: audiotest.NewSineSource(48000, 1, 48000, 440), sampleRate: rate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := windowsConfig()
			cfg.SampleRate = tt.sampleRate
			got, err := Transcribe(context.Background(), tt.src, cfg)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != 1 || got[0].Note != 69 {
				t.Errorf("Transcribe() = %v, want a single A4", got)
			}
		})
	}
}

func TestTranscribe_WorkersAgree(t *testing.T) {
	t.Parallel()

	var segs []audiotest.Segment
	for i := range 24 {
		segs = append(segs, audiotest.Segment{Hz: note.Frequency(note.Note(57 + i%12)), Samples: 2 * 4096})
	}
	samples := audiotest.Melody(rate, segs...)

	var want []pair
	for _, workers := range []int{1, 2, 5, 16} {
		cfg := windowsConfig()
		cfg.Workers = workers
		got, err := Transcribe(context.Background(), audio.NewBufferSource(rate, 1, samples), cfg)
		if err != nil {
			t.Fatal(err)
		}
		if want == nil {
			want = pairs(got)
			continue
		}
		if !equalPairs(pairs(got), want) {
			t.Errorf("workers=%d: %v, want %v", workers, pairs(got), want)
		}
	}
}

func TestTranscribe_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Transcribe(ctx, a4a5(), DefaultConfig()); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestTranscribe_Logs(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.DebugLevel)
	cfg := DefaultConfig()
	cfg.Logger = zap.New(core)

	if _, err := Transcribe(context.Background(), a4a5(), cfg); err != nil {
		t.Fatal(err)
	}

	done := logs.FilterMessage("transcribed").All()
	if len(done) != 1 {
		t.Fatalf("got %d summary entries, want 1", len(done))
	}
	if got := done[0].ContextMap()["events"]; got != int64(2) {
		t.Errorf("events field = %v, want 2", got)
	}
}

type failingWriter struct{ err error }

func (f failingWriter) Write(io.Writer, event.Stream) error { return f.err }
func (failingWriter) Extension() string                   { return ".fail" }

func TestConvert_WriterErrorUnchanged(t *testing.T) {
	t.Parallel()

	writerErr := errors.New("cannot represent")
	err := Convert(context.Background(), a4a5(), DefaultConfig(), failingWriter{writerErr}, &bytes.Buffer{})
	if err != writerErr {
		t.Errorf("Convert() error = %v, want the writer's error as is", err)
	}
}
