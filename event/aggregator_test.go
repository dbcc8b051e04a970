// SPDX-License-Identifier: EPL-2.0

package event

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/ik5/audnote/note"
)

func TestAggregate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		notes []note.Note
		want  Stream
	}{
		{
			name:  "empty",
			notes: nil,
			want:  nil,
		},
		{
			name:  "single window",
			notes: []note.Note{69},
			want:  Stream{{Note: 69, Duration: WindowCount(1)}},
		},
		{
			name:  "two runs",
			notes: []note.Note{69, 69, 81},
			want: Stream{
				{Note: 69, Duration: WindowCount(2)},
				{Note: 81, Duration: WindowCount(1)},
			},
		},
		{
			name:  "repeat after change",
			notes: []note.Note{53, 92, 92, 92, 96, 96, 92},
			want: Stream{
				{Note: 53, Duration: WindowCount(1)},
				{Note: 92, Duration: WindowCount(3)},
				{Note: 96, Duration: WindowCount(2)},
				{Note: 92, Duration: WindowCount(1)},
			},
		},
		{
			name:  "rests aggregate like notes",
			notes: []note.Note{note.Rest, note.Rest, 60, note.Rest},
			want: Stream{
				{Note: note.Rest, Duration: WindowCount(2)},
				{Note: 60, Duration: WindowCount(1)},
				{Note: note.Rest, Duration: WindowCount(1)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Aggregate(tt.notes)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Aggregate(%v) = %v, want %v", tt.notes, got, tt.want)
			}
		})
	}
}

func TestAggregate_RunLengthLaw(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2))

	for trial := range 200 {
		notes := make([]note.Note, rng.IntN(64))
		for i := range notes {
			// Small alphabet so runs actually form.
			notes[i] = note.Note(60 + rng.IntN(3))
		}

		stream := Aggregate(notes)

		expanded, err := stream.Expand()
		if err != nil {
			t.Fatalf("trial %d: Expand() error = %v", trial, err)
		}
		if !slices.Equal(expanded, notes) && len(notes) > 0 {
			t.Fatalf("trial %d: Expand(Aggregate(x)) = %v, want %v", trial, expanded, notes)
		}

		for i, ev := range stream {
			if ev.Duration.Value() < 1 {
				t.Fatalf("trial %d: event %d has duration %v", trial, i, ev.Duration)
			}
			if i > 0 && stream[i-1].Note == ev.Note {
				t.Fatalf("trial %d: events %d and %d share note %d", trial, i-1, i, ev.Note)
			}
		}
	}
}

func TestAggregator_Streaming(t *testing.T) {
	t.Parallel()

	var agg Aggregator

	if _, ok := agg.Flush(); ok {
		t.Fatal("Flush() on empty aggregator returned an event")
	}

	if _, ok := agg.Push(69); ok {
		t.Error("first Push() should not emit")
	}
	if _, ok := agg.Push(69); ok {
		t.Error("Push() of same note should not emit")
	}

	ev, ok := agg.Push(81)
	if !ok || ev.Note != 69 || ev.Duration != WindowCount(2) {
		t.Errorf("Push(81) = %v, %v; want (69, 2w), true", ev, ok)
	}

	ev, ok = agg.Flush()
	if !ok || ev.Note != 81 || ev.Duration != WindowCount(1) {
		t.Errorf("Flush() = %v, %v; want (81, 1w), true", ev, ok)
	}

	if _, ok := agg.Flush(); ok {
		t.Error("second Flush() should be empty")
	}
}

func BenchmarkAggregator(b *testing.B) {
	notes := make([]note.Note, 4096)
	for i := range notes {
		notes[i] = note.Note(60 + (i/7)%5)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		var agg Aggregator
		for _, n := range notes {
			agg.Push(n)
		}
		agg.Flush()
	}
}

func TestAggregator_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	var agg Aggregator
	allocs := testing.AllocsPerRun(1000, func() {
		agg.Push(60)
		agg.Push(61)
	})

	if allocs > 0 {
		t.Errorf("Aggregator.Push allocated %v times, want 0", allocs)
	}
}
