// SPDX-License-Identifier: EPL-2.0

package midi

import (
	"fmt"
	"io"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/ik5/audnote/event"
)

const (
	DefaultDivision = 96
	DefaultTempo    = 500000 // µs per quarter note, 120 bpm
	DefaultVelocity = 127

	// largest value a variable-length delta can carry
	maxDelta = 0x0FFFFFFF
	maxTempo = 0xFFFFFF
)

// Writer produces a format 0 MIDI file: a single track on channel 0.
// Zero fields take the defaults above.
type Writer struct {
	Division  uint16 // ticks per quarter note
	Tempo     uint32 // µs per quarter note
	Velocity  uint8
	Normalize bool // round note lengths to sixteenth notes
}

func (Writer) Extension() string { return ".mid" }

func (w Writer) Write(out io.Writer, st event.Stream) error {
	f, err := w.File(st)
	if err != nil {
		return err
	}
	if _, err := f.WriteTo(out); err != nil {
		return fmt.Errorf("writing midi: %w", err)
	}
	return nil
}

// File builds the SMF for st without serializing it.
func (w Writer) File(st event.Stream) (*smf.SMF, error) {
	if err := w.validate(); err != nil {
		return nil, err
	}
	div, tempo, vel := w.division(), w.tempo(), w.velocity()

	var (
		tr   smf.Track
		rest int
	)
	tr.Add(0, smf.MetaTempo(60_000_000/float64(tempo)))

	for i, e := range stripTrailingRests(st) {
		if e.Duration.Unit() != event.Seconds {
			return nil, fmt.Errorf("event %d is in %s: %w", i, e.Duration.Unit(), ErrNotSeconds)
		}

		ticks := w.ticks(e.Duration.Value(), div, tempo)
		if e.Note.IsRest() {
			rest += ticks
			continue
		}
		if !e.Note.Valid() {
			return nil, fmt.Errorf("event %d: note %d: %w", i, int(e.Note), ErrNoteOutOfRange)
		}
		if ticks > maxDelta || rest > maxDelta {
			return nil, fmt.Errorf("event %d: %d ticks: %w", i, max(ticks, rest), ErrDurationTooLong)
		}

		key := uint8(e.Note)
		tr.Add(uint32(rest), gomidi.NoteOn(0, key, vel))
		tr.Add(uint32(ticks), gomidi.NoteOff(0, key))
		rest = 0
	}
	tr.Close(0)

	f := smf.New()
	f.TimeFormat = smf.MetricTicks(div)
	if err := f.Add(tr); err != nil {
		return nil, fmt.Errorf("building midi: %w", err)
	}
	return f, nil
}

func (w Writer) validate() error {
	if w.Velocity > 127 {
		return fmt.Errorf("%w: %d", ErrInvalidVelocity, w.Velocity)
	}
	if w.Tempo > maxTempo {
		return fmt.Errorf("%w: %d", ErrInvalidTempo, w.Tempo)
	}
	return nil
}

func (w Writer) ticks(seconds float64, div uint16, tempo uint32) int {
	ticks := int(seconds * float64(div) * 1e6 / float64(tempo))
	if w.Normalize {
		ticks = roundToSixteenth(ticks, int(div))
	}
	return ticks
}

func (w Writer) division() uint16 {
	if w.Division == 0 {
		return DefaultDivision
	}
	return w.Division
}

func (w Writer) tempo() uint32 {
	if w.Tempo == 0 {
		return DefaultTempo
	}
	return w.Tempo
}

func (w Writer) velocity() uint8 {
	if w.Velocity == 0 {
		return DefaultVelocity
	}
	return w.Velocity
}

// roundToSixteenth rounds ticks to a multiple of division/4. Exact halves
// round down.
func roundToSixteenth(ticks, division int) int {
	t := division / 4
	if t == 0 {
		return ticks
	}
	n := ticks / t
	if ticks%t > t/2 {
		n++
	}
	return n * t
}

func stripTrailingRests(st event.Stream) event.Stream {
	end := len(st)
	for end > 0 && st[end-1].Note.IsRest() {
		end--
	}
	return st[:end]
}
