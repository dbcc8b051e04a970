// SPDX-License-Identifier: EPL-2.0

package note

import (
	"fmt"
	"math"
)

// Note is a MIDI note number: 69 is A4 (440 Hz), 12 semitones per octave.
type Note int

const (
	// Rest marks a window or event without a tonal component.
	Rest Note = -1

	// Min and Max bound the valid note range.
	Min Note = 0
	Max Note = 127

	// A4 is the reference note of the scale.
	A4 Note = 69

	// A4Frequency is the reference pitch in hertz.
	A4Frequency = 440.0
)

var names = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Valid reports whether n lies inside [Min, Max]. Rest is not valid.
func (n Note) Valid() bool { return n >= Min && n <= Max }

// IsRest reports whether n is the rest sentinel.
func (n Note) IsRest() bool { return n == Rest }

// String returns the scientific pitch name, e.g. "A4" or "C#5".
func (n Note) String() string {
	if n.IsRest() {
		return "rest"
	}
	if n < Min {
		return fmt.Sprintf("note(%d)", int(n))
	}
	return fmt.Sprintf("%s%d", names[int(n)%12], int(n)/12-1)
}

// Frequency returns the equal-tempered pitch of n in hertz.
func Frequency(n Note) float64 {
	return A4Frequency * math.Exp2(float64(n-A4)/12)
}
