// SPDX-License-Identifier: EPL-2.0

package audnote

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/ik5/audnote/event"
	"github.com/ik5/audnote/filter"
	"github.com/ik5/audnote/note"
	"github.com/ik5/audnote/spectrum"
)

// SilencePolicy decides what a window without a detectable pitch becomes.
type SilencePolicy int

const (
	// SilenceRest turns the window into a rest.
	SilenceRest SilencePolicy = iota
	// SilenceSkip drops the window before aggregation, so the notes around
	// it may merge.
	SilenceSkip
	// SilenceFail aborts the run with note.ErrSilence.
	SilenceFail
)

var silenceNames = [...]string{"rest", "skip", "fail"}

// ParseSilencePolicy accepts "rest", "skip" or "fail".
func ParseSilencePolicy(s string) (SilencePolicy, error) {
	if s == "" {
		return SilenceRest, nil
	}
	for i, name := range silenceNames {
		if s == name {
			return SilencePolicy(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown silence policy %q", ErrInvalidConfig, s)
}

func (p SilencePolicy) String() string {
	if p < 0 || int(p) >= len(silenceNames) {
		return fmt.Sprintf("silence(%d)", int(p))
	}
	return silenceNames[p]
}

// Config is everything a transcription run needs. Nothing else is read.
type Config struct {
	// WindowSize is the analysis window length in samples.
	WindowSize int
	// Partial decides what happens to a short trailing window.
	Partial          spectrum.PartialPolicy
	Apodization      spectrum.Apodization
	SilenceThreshold float64
	Silence          SilencePolicy
	Range            note.RangePolicy

	// Workers is the number of parallel analyzers; 0 uses GOMAXPROCS.
	Workers int
	// SampleRate resamples the input before analysis; 0 keeps the source rate.
	SampleRate int

	// Filters run in order on the aggregated stream. DurationUnit filters
	// with zero parameters are bound to the analysis rate and window size.
	Filters filter.Chain
	// TargetUnit is the unit the filtered stream must end up in.
	TargetUnit event.Unit

	Logger *zap.Logger
}

// DefaultConfig converts durations to seconds and leaves everything else at
// the values the tool has always used.
func DefaultConfig() Config {
	return Config{
		WindowSize:       spectrum.DefaultWindowSize,
		Partial:          spectrum.PartialDrop,
		SilenceThreshold: spectrum.DefaultSilenceThreshold,
		Silence:          SilenceRest,
		Range:            note.RangeClamp,
		Filters:          filter.Chain{filter.DurationUnit{}},
		TargetUnit:       event.Seconds,
	}
}

// Validate checks the configuration without touching any input.
func (c Config) Validate() error {
	switch {
	case c.WindowSize < 2:
		return fmt.Errorf("%w: window size %d", ErrInvalidConfig, c.WindowSize)
	case c.Partial != spectrum.PartialDrop && c.Partial != spectrum.PartialPad:
		return fmt.Errorf("%w: partial window policy %d", ErrInvalidConfig, int(c.Partial))
	case c.Apodization < spectrum.ApodizationNone || c.Apodization > spectrum.ApodizationBlackman:
		return fmt.Errorf("%w: %s", ErrInvalidConfig, c.Apodization)
	case math.IsNaN(c.SilenceThreshold) || c.SilenceThreshold < 0:
		return fmt.Errorf("%w: silence threshold %v", ErrInvalidConfig, c.SilenceThreshold)
	case c.Silence < SilenceRest || c.Silence > SilenceFail:
		return fmt.Errorf("%w: %s", ErrInvalidConfig, c.Silence)
	case c.Range != note.RangeClamp && c.Range != note.RangeFail:
		return fmt.Errorf("%w: range policy %d", ErrInvalidConfig, int(c.Range))
	case c.Workers < 0:
		return fmt.Errorf("%w: %d workers", ErrInvalidConfig, c.Workers)
	case c.SampleRate < 0:
		return fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, c.SampleRate)
	case c.TargetUnit < event.Windows || c.TargetUnit > event.Steps:
		return fmt.Errorf("%w: target unit %d", ErrInvalidConfig, int(c.TargetUnit))
	}

	for i, f := range c.Filters {
		if f == nil {
			return fmt.Errorf("%w: filter %d is nil", ErrInvalidConfig, i)
		}
	}
	return nil
}

func (c Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
