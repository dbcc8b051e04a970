// SPDX-License-Identifier: EPL-2.0

package debug

import (
	"os"
	"strings"
	"testing"

	"github.com/ik5/audnote/event"
	"github.com/ik5/audnote/note"
)

func TestWriter_Write(t *testing.T) {
	t.Parallel()

	st := event.Stream{
		{Note: 69, Duration: event.WindowCount(2)},
		{Note: note.Rest, Duration: event.WindowCount(1)},
		{Note: 81, Duration: event.WindowCount(1)},
	}

	var sb strings.Builder
	if err := (Writer{}).Write(&sb, st); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines:\n%s", len(lines), sb.String())
	}
	col := strings.Index(lines[0], "duration")
	for _, l := range lines[1:] {
		if len(l) <= col || l[col-1] != ' ' {
			t.Errorf("line %q is not aligned on column %d", l, col)
		}
	}
	if !strings.HasSuffix(lines[4], "4w") {
		t.Errorf("total line = %q, want 4w", lines[4])
	}
}

func TestWriter_MixedUnits(t *testing.T) {
	t.Parallel()

	st := event.Stream{
		{Note: 60, Duration: event.SecondsOf(1)},
		{Note: 61, Duration: event.WindowCount(1)},
	}

	var sb strings.Builder
	if err := (Writer{}).Write(&sb, st); err != nil {
		t.Fatalf("Write() error = %v, the table should still print", err)
	}
	if !strings.Contains(sb.String(), "unit mismatch") {
		t.Errorf("missing unit complaint:\n%s", sb.String())
	}
}

func TestWriter_Empty(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	if err := (Writer{}).Write(&sb, nil); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(sb.String()); got != "#  note  name  duration" {
		t.Errorf("Write(nil) = %q", got)
	}
}

func ExampleWriter() {
	st := event.Stream{
		{Note: 69, Duration: event.SecondsOf(0.186)},
		{Note: note.Rest, Duration: event.SecondsOf(0.093)},
		{Note: 81, Duration: event.SecondsOf(0.093)},
	}
	_ = Writer{}.Write(os.Stdout, st)
	// Output:
	// #      note  name  duration
	// 0      69    A4    0.186s
	// 1      -1    rest  0.093s
	// 2      81    A5    0.093s
	// total              0.372s
}
