// SPDX-License-Identifier: EPL-2.0

package audnote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/ik5/audnote/audio"
	"github.com/ik5/audnote/event"
	"github.com/ik5/audnote/note"
	"github.com/ik5/audnote/spectrum"
)

// Transcribe turns src into a filtered event stream.
//
// The configuration is validated before any sample is read. Windows are
// analyzed in parallel; quantization, aggregation and filtering happen in
// window order on the calling goroutine. src is not closed.
func Transcribe(ctx context.Context, src audio.Source, cfg Config) (event.Stream, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := cfg.logger()
	start := time.Now()

	mono, err := Prepare(src, cfg.SampleRate)
	if err != nil {
		return nil, err
	}
	rate := mono.SampleRate()

	wr, err := spectrum.NewWindower(mono, cfg.WindowSize, cfg.Partial)
	if err != nil {
		return nil, err
	}

	log.Debug("analyzing",
		zap.Int("sample_rate", rate),
		zap.Int("window_size", cfg.WindowSize),
		zap.Stringer("partial", cfg.Partial),
		zap.Stringer("apodization", cfg.Apodization),
		zap.Int("workers", cfg.Workers),
	)

	var (
		q       = note.Quantizer{Range: cfg.Range}
		agg     event.Aggregator
		raw     event.Stream
		silent  int
		skipped int
	)

	opts := spectrum.ScanOptions{
		SampleRate: rate,
		Workers:    cfg.Workers,
		Analyzer: spectrum.AnalyzerOptions{
			Apodization:      cfg.Apodization,
			SilenceThreshold: cfg.SilenceThreshold,
		},
	}
	err = spectrum.Scan(ctx, wr, opts, func(w spectrum.Window, hz float64) error {
		n, err := q.Quantize(hz)
		if errors.Is(err, note.ErrSilence) {
			silent++
			switch cfg.Silence {
			case SilenceSkip:
				skipped++
				return nil
			case SilenceFail:
				return fmt.Errorf("window %d at sample %d: %w", w.Index, w.Offset, err)
			}
			n, err = note.Rest, nil
		}
		if err != nil {
			return fmt.Errorf("window %d (%.2f Hz): %w", w.Index, hz, err)
		}

		if ev, ok := agg.Push(n); ok {
			raw = append(raw, ev)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if ev, ok := agg.Flush(); ok {
		raw = append(raw, ev)
	}

	log.Debug("aggregated",
		zap.Int("windows", wr.Produced()),
		zap.Int("silent", silent),
		zap.Int("skipped", skipped),
		zap.Int("events", len(raw)),
	)

	chain := cfg.Filters.Bind(rate, cfg.WindowSize)
	out, err := chain.Apply(raw)
	if err != nil {
		return nil, err
	}
	if err := checkUnit(out, cfg.TargetUnit); err != nil {
		return nil, err
	}

	log.Info("transcribed",
		zap.Int("windows", wr.Produced()),
		zap.Int("events", len(out)),
		zap.Strings("filters", chain.Names()),
		zap.Stringer("unit", cfg.TargetUnit),
		zap.Duration("took", time.Since(start)),
	)
	return out, nil
}

// checkUnit fails unless every event carries want. An empty stream passes.
func checkUnit(s event.Stream, want event.Unit) error {
	got, ok, err := s.Unit()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnitNotFinal, err)
	}
	if ok && got != want {
		return fmt.Errorf("%w: got %s, want %s", ErrUnitNotFinal, got, want)
	}
	return nil
}

// Convert transcribes src and serializes the result with w into out.
// Errors from the writer are returned as they are.
func Convert(ctx context.Context, src audio.Source, cfg Config, w event.Writer, out io.Writer) error {
	s, err := Transcribe(ctx, src, cfg)
	if err != nil {
		return err
	}
	return w.Write(out, s)
}
