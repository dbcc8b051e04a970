// SPDX-License-Identifier: EPL-2.0

// Package debug prints event streams as an aligned table for eyeballing a
// transcription. Any unit is accepted.
package debug

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ik5/audnote/event"
)

type Writer struct{}

func (Writer) Extension() string { return ".txt" }

func (Writer) Write(out io.Writer, st event.Stream) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "#\tnote\tname\tduration")
	for i, e := range st {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\n", i, int(e.Note), e.Note, e.Duration)
	}

	if total, err := st.Total(); err != nil {
		fmt.Fprintf(tw, "\t\t\t%v\n", err)
	} else if len(st) > 0 {
		fmt.Fprintf(tw, "total\t\t\t%s\n", total)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing debug table: %w", err)
	}
	return nil
}
