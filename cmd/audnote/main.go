// SPDX-License-Identifier: EPL-2.0

// Command audnote transcribes monophonic recordings into note events and
// writes them as MIDI, Flopkestra tables, JSON or a debug listing.
//
//	audnote convert melody.wav -w midi
//	audnote convert melody.mp3 -w floppy -f seconds,absorb:0.1 --stdout
//	audnote serve --addr :8080
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(&app{}).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
