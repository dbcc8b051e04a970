// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ik5/audnote/internal/codecs"
)

func newWritersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "writers",
		Short: "List output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := codecs.Writers()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range reg.Names() {
				w, _ := reg.Get(name)
				fmt.Fprintf(tw, "%s\t%s\t%s\n", name, w.Extension(), codecs.ContentType(w))
			}
			return tw.Flush()
		},
	}
}
