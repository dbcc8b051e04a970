// SPDX-License-Identifier: EPL-2.0

package filter

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/ik5/audnote/note"
)

// Filter names accepted by Build. The long names are the ones used by older
// configuration files.
const (
	NameMinDuration = "min_duration"
	NameAbsorb      = "absorb"
	NameTranspose   = "transpose"
	NameSeconds     = "seconds"
	NameQuantize    = "quantize"
)

var aliases = map[string]string{
	"weed_out_short_notes":        NameMinDuration,
	"absorb_short_notes":          NameAbsorb,
	"duration_unit":               NameSeconds,
	"convert_duration_to_integer": NameQuantize,
}

const (
	DefaultThreshold = 0.25
	DefaultRatio     = 16
)

// Spec describes one filter in a configuration file. In JSON it is either a
// bare name or an object:
//
//	["seconds", {"name": "transpose", "semitones": -12}, "min_duration"]
type Spec struct {
	Name       string   `json:"name"`
	Threshold  *float64 `json:"threshold,omitempty"`
	Semitones  int      `json:"semitones,omitempty"`
	Range      string   `json:"range,omitempty"`
	Ratio      *float64 `json:"ratio,omitempty"`
	SampleRate int      `json:"sample_rate,omitempty"`
	WindowSize int      `json:"window_size,omitempty"`
}

func (s *Spec) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err == nil {
		*s = Spec{Name: name}
		return nil
	}

	type plain Spec
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return fmt.Errorf("filter spec: %w", err)
	}
	*s = Spec(p)
	return nil
}

// ParseSpec reads the command line form "name[:param]", e.g. "transpose:-12",
// "min_duration:0.5" or "quantize:8".
func ParseSpec(s string) (Spec, error) {
	name, param, hasParam := strings.Cut(strings.TrimSpace(s), ":")
	spec := Spec{Name: name}
	if !hasParam {
		return spec, nil
	}

	switch canonical(name) {
	case NameMinDuration, NameAbsorb:
		v, err := strconv.ParseFloat(param, 64)
		if err != nil {
			return Spec{}, fmt.Errorf("%w: %s threshold %q", ErrBadParameter, name, param)
		}
		spec.Threshold = &v
	case NameTranspose:
		v, err := strconv.Atoi(param)
		if err != nil {
			return Spec{}, fmt.Errorf("%w: transpose semitones %q", ErrBadParameter, param)
		}
		spec.Semitones = v
	case NameQuantize:
		v, err := strconv.ParseFloat(param, 64)
		if err != nil {
			return Spec{}, fmt.Errorf("%w: quantize ratio %q", ErrBadParameter, param)
		}
		spec.Ratio = &v
	default:
		return Spec{}, fmt.Errorf("%w: %s takes no parameter", ErrBadParameter, name)
	}
	return spec, nil
}

// ParseSpecs parses each element with ParseSpec.
func ParseSpecs(list []string) ([]Spec, error) {
	specs := make([]Spec, 0, len(list))
	for _, s := range list {
		spec, err := ParseSpec(s)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func canonical(name string) string {
	if c, ok := aliases[name]; ok {
		return c
	}
	return name
}

// Build validates specs and turns them into a chain, preserving their order.
func Build(specs []Spec) (Chain, error) {
	chain := make(Chain, 0, len(specs))
	for i, s := range specs {
		f, err := s.build()
		if err != nil {
			return nil, fmt.Errorf("filter %d: %w", i, err)
		}
		chain = append(chain, f)
	}
	return chain, nil
}

func (s Spec) build() (Filter, error) {
	threshold := func() (float64, error) {
		if s.Threshold == nil {
			return DefaultThreshold, nil
		}
		if *s.Threshold < 0 {
			return 0, fmt.Errorf("%w: negative threshold %v", ErrBadParameter, *s.Threshold)
		}
		return *s.Threshold, nil
	}

	switch canonical(s.Name) {
	case NameMinDuration:
		th, err := threshold()
		return MinDuration{Threshold: th}, err
	case NameAbsorb:
		th, err := threshold()
		return Absorb{Threshold: th}, err
	case NameTranspose:
		if s.Semitones == 0 {
			return nil, fmt.Errorf("%w: transpose needs non-zero semitones", ErrMissingParameter)
		}
		rp, err := note.ParseRangePolicy(s.Range)
		if err != nil {
			return nil, err
		}
		return Transpose{Semitones: s.Semitones, Range: rp}, nil
	case NameSeconds:
		if s.SampleRate < 0 || s.WindowSize < 0 {
			return nil, fmt.Errorf("%w: negative rate or window", ErrBadParameter)
		}
		return DurationUnit{SampleRate: s.SampleRate, WindowSize: s.WindowSize}, nil
	case NameQuantize:
		ratio := float64(DefaultRatio)
		if s.Ratio != nil {
			ratio = *s.Ratio
		}
		if !(ratio > 0) {
			return nil, fmt.Errorf("%w: ratio %v", ErrBadParameter, ratio)
		}
		return Quantize{Ratio: ratio}, nil
	case "":
		return nil, ErrMissingName
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, s.Name)
}
