// SPDX-License-Identifier: EPL-2.0

package filter

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/ik5/audnote/event"
	"github.com/ik5/audnote/fault"
	"github.com/ik5/audnote/note"
)

func windows(pairs ...int) event.Stream {
	var s event.Stream
	for i := 0; i+1 < len(pairs); i += 2 {
		s = append(s, event.Event{Note: note.Note(pairs[i]), Duration: event.WindowCount(pairs[i+1])})
	}
	return s
}

func TestTranspose(t *testing.T) {
	t.Parallel()

	in := windows(69, 2, 81, 1)
	got, err := Transpose{Semitones: 12}.Apply(in)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if want := windows(81, 2, 93, 1); !slices.Equal(got, want) {
		t.Errorf("Transpose(+12) = %v, want %v", got, want)
	}
	if want := windows(69, 2, 81, 1); !slices.Equal(in, want) {
		t.Errorf("input was modified: %v", in)
	}
}

func TestTranspose_Range(t *testing.T) {
	t.Parallel()

	in := windows(120, 1, 2, 1)

	got, err := Transpose{Semitones: 10, Range: note.RangeClamp}.Apply(in)
	if err != nil {
		t.Fatalf("clamp Apply() error = %v", err)
	}
	if want := windows(127, 1, 12, 1); !slices.Equal(got, want) {
		t.Errorf("clamp = %v, want %v", got, want)
	}

	_, err = Transpose{Semitones: 10, Range: note.RangeFail}.Apply(in)
	if !errors.Is(err, fault.ErrRange) {
		t.Errorf("fail Apply() error = %v, want ErrRange", err)
	}

	// Landing on -1 must not turn into a rest.
	got, err = Transpose{Semitones: -3}.Apply(in)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got[1].Note != note.Min {
		t.Errorf("2-3 clamped to %d, want %d", got[1].Note, note.Min)
	}
}

func TestTranspose_KeepsRests(t *testing.T) {
	t.Parallel()

	in := event.Stream{{Note: note.Rest, Duration: event.WindowCount(3)}}
	got, err := Transpose{Semitones: 5}.Apply(in)
	if err != nil || got[0].Note != note.Rest {
		t.Errorf("Apply() = %v, %v; rest should stay a rest", got, err)
	}
}

func TestMinDuration(t *testing.T) {
	t.Parallel()

	got, err := MinDuration{Threshold: 2}.Apply(windows(69, 2, 81, 1))
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if want := windows(69, 2); !slices.Equal(got, want) {
		t.Errorf("MinDuration(2) = %v, want %v", got, want)
	}
}

func TestMinDuration_DoesNotMerge(t *testing.T) {
	t.Parallel()

	got, _ := MinDuration{Threshold: 2}.Apply(windows(60, 3, 62, 1, 60, 4))
	if want := windows(60, 3, 60, 4); !slices.Equal(got, want) {
		t.Errorf("MinDuration(2) = %v, want %v", got, want)
	}
}

func TestMinDuration_NeverGrows(t *testing.T) {
	t.Parallel()

	in := windows(60, 1, 61, 5, 62, 2, 63, 7, 64, 1, 65, 3)
	for th := 0.0; th <= 8; th += 0.5 {
		got, err := MinDuration{Threshold: th}.Apply(in)
		if err != nil {
			t.Fatalf("Apply() error = %v", err)
		}
		if len(got) > len(in) {
			t.Fatalf("threshold %v: %d events out of %d", th, len(got), len(in))
		}
		// Survivors are an order preserving subsequence of the input.
		j := 0
		for _, e := range got {
			for j < len(in) && in[j] != e {
				j++
			}
			if j == len(in) {
				t.Fatalf("threshold %v: %v is not an unchanged input event", th, e)
			}
			j++
		}
	}
}

func TestAbsorb(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		threshold float64
		in        event.Stream
		want      event.Stream
	}{
		{
			name:      "flicker absorbed",
			threshold: 2,
			in:        windows(95, 2, 96, 1, 95, 8, 92, 6),
			want:      windows(95, 11, 92, 6),
		},
		{
			name:      "short trailing note dropped",
			threshold: 2,
			in:        windows(60, 4, 62, 1),
			want:      windows(60, 4),
		},
		{
			name:      "different surrounding notes",
			threshold: 2,
			in:        windows(60, 4, 62, 1, 64, 4),
			want:      windows(60, 4, 64, 4),
		},
		{
			name:      "empty",
			threshold: 2,
			in:        nil,
			want:      event.Stream{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Absorb{Threshold: tt.threshold}.Apply(tt.in)
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Absorb(%v) = %v, want %v", tt.threshold, got, tt.want)
			}
		})
	}
}

func TestDurationUnit(t *testing.T) {
	t.Parallel()

	in := windows(69, 2, 81, 1, 70, 5)
	f := DurationUnit{SampleRate: 44100, WindowSize: 4096}

	got, err := f.Apply(in)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	var sumSeconds, sumWindows float64
	for i, e := range got {
		if e.Duration.Unit() != event.Seconds {
			t.Errorf("event %d unit = %v, want seconds", i, e.Duration.Unit())
		}
		if e.Note != in[i].Note {
			t.Errorf("event %d note changed: %d -> %d", i, in[i].Note, e.Note)
		}
		sumSeconds += e.Duration.Value()
		sumWindows += in[i].Duration.Value()
	}

	want := sumWindows * 4096 / 44100
	if math.Abs(sumSeconds-want) > 1e-9 {
		t.Errorf("sum(seconds) = %v, want %v", sumSeconds, want)
	}

	_, err = f.Apply(got)
	if !errors.Is(err, fault.ErrUnit) || !errors.Is(err, event.ErrAlreadyConverted) {
		t.Errorf("second Apply() error = %v, want ErrUnit", err)
	}
}

func TestQuantize(t *testing.T) {
	t.Parallel()

	in := event.Stream{
		{Note: 60, Duration: event.SecondsOf(0.25)},
		{Note: 62, Duration: event.SecondsOf(0.1)},
	}
	got, err := Quantize{Ratio: 16}.Apply(in)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	want := event.Stream{
		{Note: 60, Duration: event.StepCount(4)},
		{Note: 62, Duration: event.StepCount(2)},
	}
	if !slices.Equal(got, want) {
		t.Errorf("Quantize(16) = %v, want %v", got, want)
	}

	if _, err := (Quantize{Ratio: 16}).Apply(windows(60, 1)); !errors.Is(err, fault.ErrUnit) {
		t.Errorf("Quantize on windows error = %v, want ErrUnit", err)
	}
}

func TestChain(t *testing.T) {
	t.Parallel()

	in := windows(69, 2, 81, 1)

	chain := Chain{Transpose{Semitones: 12}, MinDuration{Threshold: 2}}
	got, err := chain.Apply(in)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if want := windows(81, 2); !slices.Equal(got, want) {
		t.Errorf("chain = %v, want %v", got, want)
	}

	if names := chain.Names(); !slices.Equal(names, []string{"transpose", "min_duration"}) {
		t.Errorf("Names() = %v", names)
	}
}

func TestChain_DoubleConversionFails(t *testing.T) {
	t.Parallel()

	chain := Chain{DurationUnit{}, DurationUnit{}}.Bind(44100, 4096)
	_, err := chain.Apply(windows(69, 2))
	if !errors.Is(err, fault.ErrUnit) {
		t.Fatalf("Apply() error = %v, want ErrUnit", err)
	}
}

func TestChain_Bind(t *testing.T) {
	t.Parallel()

	chain := Chain{DurationUnit{}, DurationUnit{SampleRate: 8000}, MinDuration{Threshold: 1}}
	bound := chain.Bind(44100, 4096)

	if got := bound[0].(DurationUnit); got.SampleRate != 44100 || got.WindowSize != 4096 {
		t.Errorf("bound[0] = %+v", got)
	}
	if got := bound[1].(DurationUnit); got.SampleRate != 8000 || got.WindowSize != 4096 {
		t.Errorf("bound[1] = %+v, explicit rate must win", got)
	}
	if _, ok := chain[0].(DurationUnit); !ok || chain[0].(DurationUnit).SampleRate != 0 {
		t.Error("Bind() modified the original chain")
	}
}

func TestChain_Unit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		chain Chain
		want  event.Unit
	}{
		{"empty", nil, event.Windows},
		{"seconds", Chain{DurationUnit{}, MinDuration{}}, event.Seconds},
		{"steps", Chain{DurationUnit{}, Absorb{}, Quantize{Ratio: 16}}, event.Steps},
		{"transpose only", Chain{Transpose{Semitones: 2}}, event.Windows},
	}
	for _, tt := range tests {
		if got := tt.chain.Unit(event.Windows); got != tt.want {
			t.Errorf("%s: Unit() = %s, want %s", tt.name, got, tt.want)
		}
	}
}
