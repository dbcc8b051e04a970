// SPDX-License-Identifier: EPL-2.0

// Package event models the note event stream produced by transcription.
//
// # Durations
//
// Every duration carries its unit. Aggregation produces window counts;
// the seconds filter converts them once with Duration.ToSeconds, which refuses
// anything that is not a window count:
//
//	d := event.WindowCount(2)
//	s, _ := d.ToSeconds(4096, 44100) // 0.186s
//	_, err := s.ToSeconds(4096, 44100) // ErrAlreadyConverted
//
// # Aggregation
//
// Aggregator collapses runs of equal notes into events while holding only the
// current run:
//
//	var agg event.Aggregator
//	for _, n := range notes {
//	    if ev, ok := agg.Push(n); ok {
//	        emit(ev)
//	    }
//	}
//	if ev, ok := agg.Flush(); ok {
//	    emit(ev)
//	}
//
// Two adjacent events never share a note and every duration is at least one
// window. Stream.Expand reverses the encoding.
//
// # Writers
//
// Writer is the output boundary. WriterRegistry selects a writer by name the
// same way audio.Registry selects a decoder.
package event
