// SPDX-License-Identifier: EPL-2.0

// Package fault holds the error taxonomy shared by every stage of the
// transcription pipeline.
//
// Package specific errors wrap one of the kinds below, so callers classify a
// failure with errors.Is regardless of which stage produced it:
//
//	if errors.Is(err, fault.ErrUnit) {
//	    // filter chain is misordered
//	}
package fault

import "errors"

var (
	// ErrInvalidConfiguration is returned before any sample is read when the
	// configuration cannot describe a valid run.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvalidInput marks data that cannot be analyzed: silence reaching the
	// quantizer or a stream too short to fill a single window.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnit marks a duration carrying the wrong unit for an operation.
	ErrUnit = errors.New("duration unit error")

	// ErrRange marks a note outside the representable range.
	ErrRange = errors.New("note out of range")
)
