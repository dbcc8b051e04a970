// SPDX-License-Identifier: EPL-2.0

package filter

import (
	"fmt"

	"github.com/ik5/audnote/event"
	"github.com/ik5/audnote/note"
)

// MinDuration drops events shorter than Threshold, measured in whatever unit
// the stream currently carries. Neighbours of a dropped event are not merged,
// even when they share a note.
type MinDuration struct {
	Threshold float64
}

func (MinDuration) Name() string { return NameMinDuration }

func (f MinDuration) Apply(s event.Stream) (event.Stream, error) {
	out := make(event.Stream, 0, len(s))
	for _, e := range s {
		if e.Duration.Value() >= f.Threshold {
			out = append(out, e)
		}
	}
	return out, nil
}

// Absorb smooths out pitch flicker. A short event sandwiched between two
// events of the same note is folded into one long note; any other event shorter
// than Threshold is dropped.
//
// Repeated notes separated by a short gap are merged as a side effect.
type Absorb struct {
	Threshold float64
}

func (Absorb) Name() string { return NameAbsorb }

func (f Absorb) Apply(s event.Stream) (event.Stream, error) {
	out := make(event.Stream, 0, len(s))

	for i := 0; i < len(s); {
		cur := s[i]

		if i+2 < len(s) {
			mid, next := s[i+1], s[i+2]
			if cur.Note == next.Note && mid.Duration.Value() < f.Threshold {
				d, err := cur.Duration.Add(mid.Duration)
				if err == nil {
					d, err = d.Add(next.Duration)
				}
				if err != nil {
					return nil, fmt.Errorf("event %d: %w", i, err)
				}
				out = append(out, event.Event{Note: cur.Note, Duration: d})
				i += 3
				continue
			}
		}

		if cur.Duration.Value() >= f.Threshold {
			out = append(out, cur)
		}
		i++
	}

	return out, nil
}

// Transpose shifts every note by Semitones. Rests stay rests.
type Transpose struct {
	Semitones int
	Range     note.RangePolicy
}

func (Transpose) Name() string { return NameTranspose }

func (f Transpose) Apply(s event.Stream) (event.Stream, error) {
	out := make(event.Stream, len(s))
	for i, e := range s {
		if !e.Note.IsRest() {
			n, err := f.Range.Apply(e.Note + note.Note(f.Semitones))
			if err != nil {
				return nil, fmt.Errorf("event %d (%d%+d): %w", i, int(e.Note), f.Semitones, err)
			}
			e.Note = n
		}
		out[i] = e
	}
	return out, nil
}

// DurationUnit converts window counts to seconds:
// seconds = windows * WindowSize / SampleRate.
//
// Running it on a stream already in seconds (or steps) fails with
// event.ErrAlreadyConverted. Zero parameters are filled by Bind.
type DurationUnit struct {
	SampleRate int
	WindowSize int
}

func (DurationUnit) Name() string { return NameSeconds }

func (f DurationUnit) Bind(sampleRate, windowSize int) Filter {
	if f.SampleRate == 0 {
		f.SampleRate = sampleRate
	}
	if f.WindowSize == 0 {
		f.WindowSize = windowSize
	}
	return f
}

func (f DurationUnit) Apply(s event.Stream) (event.Stream, error) {
	out := make(event.Stream, len(s))
	for i, e := range s {
		d, err := e.Duration.ToSeconds(f.WindowSize, f.SampleRate)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		out[i] = event.Event{Note: e.Note, Duration: d}
	}
	return out, nil
}

// Quantize rounds durations in seconds onto a grid of Ratio steps per second.
type Quantize struct {
	Ratio float64
}

func (Quantize) Name() string { return NameQuantize }

func (f Quantize) Apply(s event.Stream) (event.Stream, error) {
	out := make(event.Stream, len(s))
	for i, e := range s {
		d, err := e.Duration.ToSteps(f.Ratio)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		out[i] = event.Event{Note: e.Note, Duration: d}
	}
	return out, nil
}
