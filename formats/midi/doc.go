// SPDX-License-Identifier: EPL-2.0

// Package midi writes an event stream as a single-track Standard MIDI File
// using gitlab.com/gomidi/midi/v2/smf.
//
// Every note becomes a note-on at velocity Velocity followed by a note-off
// after its duration. Rests produce no messages; their time is added to the
// delta of the next note-on. Trailing rests are dropped, so the file ends
// with the last sounding note.
//
// Tick lengths follow the classic formula
//
//	ticks = seconds * division * 1e6 / tempo
//
// truncated toward zero, or rounded to the nearest sixteenth note when
// Normalize is set.
package midi
