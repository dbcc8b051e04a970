// SPDX-License-Identifier: EPL-2.0

// Package note maps pitches to discrete notes of the equal-tempered scale.
//
// Notes follow the MIDI note number convention: 69 is A4 at 440 Hz and every
// semitone adds one. Valid notes lie in [Min, Max] (0..127); Rest (-1) is a
// sentinel for windows without a tone.
//
// # Quantization
//
//	q := note.Quantizer{Range: note.RangeClamp}
//	n, err := q.Quantize(440) // 69, nil
//
// Rounding is half up: a pitch exactly between two notes resolves to the
// higher one. Silence (a pitch of zero or less) returns ErrSilence, which
// wraps fault.ErrInvalidInput; the caller decides whether that becomes a Rest.
package note
