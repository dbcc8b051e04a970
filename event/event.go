// SPDX-License-Identifier: EPL-2.0

package event

import (
	"fmt"

	"github.com/ik5/audnote/note"
)

// Event is one note held for a duration.
type Event struct {
	Note     note.Note
	Duration Duration
}

func (e Event) String() string {
	return fmt.Sprintf("(%d, %s)", int(e.Note), e.Duration)
}

// Stream is a sequence of events in playback order.
type Stream []Event

// Unit returns the unit shared by every event. An empty stream reports ok=false.
// A stream mixing units returns ErrMixedUnits.
func (s Stream) Unit() (u Unit, ok bool, err error) {
	if len(s) == 0 {
		return 0, false, nil
	}
	u = s[0].Duration.Unit()
	for i, e := range s[1:] {
		if e.Duration.Unit() != u {
			return u, true, fmt.Errorf("%w: event %d is %s, event 0 is %s",
				ErrMixedUnits, i+1, e.Duration.Unit(), u)
		}
	}
	return u, true, nil
}

// Total sums the durations of the stream. An empty stream totals zero windows.
func (s Stream) Total() (Duration, error) {
	var total Duration
	if len(s) > 0 {
		total = Duration{unit: s[0].Duration.Unit()}
	}
	for _, e := range s {
		var err error
		if total, err = total.Add(e.Duration); err != nil {
			return Duration{}, err
		}
	}
	return total, nil
}

// Expand repeats each note by its window count, undoing Aggregate.
// Events that are not measured in windows fail with ErrUnitMismatch.
func (s Stream) Expand() ([]note.Note, error) {
	var notes []note.Note
	for i, e := range s {
		if e.Duration.Unit() != Windows {
			return nil, fmt.Errorf("%w: event %d is %s", ErrUnitMismatch, i, e.Duration.Unit())
		}
		for range int(e.Duration.Value()) {
			notes = append(notes, e.Note)
		}
	}
	return notes, nil
}

// Clone returns a copy that shares no backing array with s.
func (s Stream) Clone() Stream {
	if s == nil {
		return nil
	}
	out := make(Stream, len(s))
	copy(out, s)
	return out
}
