// SPDX-License-Identifier: EPL-2.0

// Package filter transforms note event streams between aggregation and output.
//
// A Chain is an ordered list of filters applied as a left fold. Order is part
// of the configuration: a chain is never reordered or completed implicitly.
//
//	chain := filter.Chain{
//	    filter.DurationUnit{SampleRate: 44100, WindowSize: 4096},
//	    filter.MinDuration{Threshold: 0.25},
//	    filter.Transpose{Semitones: 12},
//	}
//	out, err := chain.Apply(events)
//
// # Filters
//
//   - MinDuration drops short events without merging their neighbours.
//   - Absorb folds a short event between two equal notes into one long note.
//   - Transpose shifts notes, clamping or failing at the range boundaries.
//   - DurationUnit converts window counts to seconds, exactly once.
//   - Quantize rounds seconds onto an integer grid.
//
// # Configuration
//
// Build turns a list of Spec values (from JSON or from ParseSpec on the
// command line) into a Chain, rejecting unknown names and invalid parameters
// with errors wrapping fault.ErrInvalidConfiguration.
package filter
