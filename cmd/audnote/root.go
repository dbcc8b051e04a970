// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries state shared by the subcommands. Tests preset log.
type app struct {
	verbose bool
	log     *zap.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "audnote",
		Short: "Transcribe monophonic audio into note events",
		Long: `audnote finds the dominant pitch of every analysis window of a
recording, turns the pitches into notes and writes the resulting melody
in one of several formats.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setupLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log per-stage details")

	root.AddCommand(newConvertCmd(a), newServeCmd(a), newWritersCmd())
	return root
}

func (a *app) setupLogger() error {
	if a.log != nil {
		return nil
	}

	cfg := zap.NewProductionConfig()
	if a.verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	log, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	a.log = log
	return nil
}
