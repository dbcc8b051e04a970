// SPDX-License-Identifier: EPL-2.0

// Package settings holds the user-facing knobs shared by the configuration
// file, the command line and the HTTP query string, and applies them to an
// audnote.Config.
package settings

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/ik5/audnote"
	"github.com/ik5/audnote/event"
	"github.com/ik5/audnote/fault"
	"github.com/ik5/audnote/filter"
	"github.com/ik5/audnote/note"
	"github.com/ik5/audnote/spectrum"
)

// Settings left at their zero value do not change the configuration.
type Settings struct {
	WindowSize  int      `json:"window_size,omitempty"`
	Partial     string   `json:"partial,omitempty"`
	Apodization string   `json:"apodization,omitempty"`
	Threshold   *float64 `json:"threshold,omitempty"`
	Silence     string   `json:"silence,omitempty"`
	Range       string   `json:"range,omitempty"`
	Workers     int      `json:"workers,omitempty"`
	SampleRate  int      `json:"sample_rate,omitempty"`

	// Filters replaces the configured chain when non-nil. The target unit
	// then follows whatever the chain converts to.
	Filters []filter.Spec `json:"filters,omitempty"`
}

// Apply returns cfg with s laid over it. The result is not validated.
func (s Settings) Apply(cfg audnote.Config) (audnote.Config, error) {
	var err error

	if s.WindowSize != 0 {
		cfg.WindowSize = s.WindowSize
	}
	if s.Workers != 0 {
		cfg.Workers = s.Workers
	}
	if s.SampleRate != 0 {
		cfg.SampleRate = s.SampleRate
	}
	if s.Threshold != nil {
		cfg.SilenceThreshold = *s.Threshold
	}
	if s.Partial != "" {
		if cfg.Partial, err = spectrum.ParsePartialPolicy(s.Partial); err != nil {
			return cfg, err
		}
	}
	if s.Apodization != "" {
		if cfg.Apodization, err = spectrum.ParseApodization(s.Apodization); err != nil {
			return cfg, err
		}
	}
	if s.Silence != "" {
		if cfg.Silence, err = audnote.ParseSilencePolicy(s.Silence); err != nil {
			return cfg, err
		}
	}
	if s.Range != "" {
		if cfg.Range, err = note.ParseRangePolicy(s.Range); err != nil {
			return cfg, err
		}
	}
	if s.Filters != nil {
		if cfg.Filters, err = filter.Build(s.Filters); err != nil {
			return cfg, err
		}
		cfg.TargetUnit = cfg.Filters.Unit(event.Windows)
	}
	return cfg, nil
}

// FromQuery reads settings from URL parameters named after the JSON keys.
// filters is a comma separated list in the command line form, e.g.
// "seconds,transpose:-12".
func FromQuery(q url.Values) (Settings, error) {
	var s Settings

	ints := map[string]*int{
		"window_size": &s.WindowSize,
		"workers":     &s.Workers,
		"sample_rate": &s.SampleRate,
	}
	for key, dst := range ints {
		if v := q.Get(key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return s, fmt.Errorf("%w: %s %q", fault.ErrInvalidConfiguration, key, v)
			}
			*dst = n
		}
	}

	if v := q.Get("threshold"); v != "" {
		th, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return s, fmt.Errorf("%w: threshold %q", fault.ErrInvalidConfiguration, v)
		}
		s.Threshold = &th
	}

	s.Partial = q.Get("partial")
	s.Apodization = q.Get("apodization")
	s.Silence = q.Get("silence")
	s.Range = q.Get("range")

	if q.Has("filters") {
		specs, err := ParseFilters(q.Get("filters"))
		if err != nil {
			return s, err
		}
		s.Filters = specs
	}
	return s, nil
}

// ParseFilters splits a comma separated filter list. An empty list yields
// an empty, non-nil chain.
func ParseFilters(list string) ([]filter.Spec, error) {
	if strings.TrimSpace(list) == "" {
		return []filter.Spec{}, nil
	}
	return filter.ParseSpecs(strings.Split(list, ","))
}
