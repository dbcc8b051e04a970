// SPDX-License-Identifier: EPL-2.0

package event

import "github.com/ik5/audnote/note"

// Aggregator run-length encodes a note sequence in a single pass. It holds
// only the current run, so it can sit at the end of a streaming pipeline.
type Aggregator struct {
	current note.Note
	count   int
}

// Push adds the note of the next window. When n ends the current run the
// finished event is returned with ok=true.
func (a *Aggregator) Push(n note.Note) (ev Event, ok bool) {
	if a.count > 0 && n == a.current {
		a.count++
		return Event{}, false
	}

	ev, ok = a.Flush()
	a.current = n
	a.count = 1

	return ev, ok
}

// Flush emits the pending run, if any, and resets the aggregator.
func (a *Aggregator) Flush() (Event, bool) {
	if a.count == 0 {
		return Event{}, false
	}
	ev := Event{Note: a.current, Duration: WindowCount(a.count)}
	a.count = 0
	return ev, true
}

// Aggregate run-length encodes a complete note sequence.
func Aggregate(notes []note.Note) Stream {
	var (
		agg Aggregator
		out Stream
	)
	for _, n := range notes {
		if ev, ok := agg.Push(n); ok {
			out = append(out, ev)
		}
	}
	if ev, ok := agg.Flush(); ok {
		out = append(out, ev)
	}
	return out
}
