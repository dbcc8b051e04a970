// SPDX-License-Identifier: EPL-2.0

package note

import (
	"fmt"
	"math"
)

// RangePolicy decides what happens to a note computed outside [Min, Max].
type RangePolicy int

const (
	// RangeClamp replaces the note with the nearest boundary.
	RangeClamp RangePolicy = iota
	// RangeFail returns ErrOutOfRange.
	RangeFail
)

// ParseRangePolicy maps "clamp" and "fail" to a RangePolicy.
func ParseRangePolicy(s string) (RangePolicy, error) {
	switch s {
	case "", "clamp":
		return RangeClamp, nil
	case "fail":
		return RangeFail, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRangePolicy, s)
}

func (p RangePolicy) String() string {
	if p == RangeFail {
		return "fail"
	}
	return "clamp"
}

// tieTolerance absorbs floating point error around exact half-semitone ties.
const tieTolerance = 1e-9

// Quantizer maps frequencies to the nearest note of the equal-tempered scale.
// The zero value clamps out of range results.
type Quantizer struct {
	Range RangePolicy
}

// Quantize returns round(69 + 12*log2(hz/440)), rounding exact halves up.
//
// A non-positive, NaN or infinite pitch returns ErrSilence.
func (q Quantizer) Quantize(hz float64) (Note, error) {
	if !(hz > 0) || math.IsInf(hz, 1) {
		return Rest, fmt.Errorf("%w: %v Hz", ErrSilence, hz)
	}

	semis := float64(A4) + 12*math.Log2(hz/A4Frequency)
	n := Note(math.Floor(semis + 0.5 + tieTolerance))

	return q.Range.Apply(n)
}

// Apply enforces the policy on a computed note. n is taken as a plain number,
// so -1 is out of range here, not a rest.
func (p RangePolicy) Apply(n Note) (Note, error) {
	if n.Valid() {
		return n, nil
	}
	if p == RangeFail {
		return n, fmt.Errorf("%w: %d", ErrOutOfRange, int(n))
	}
	if n < Min {
		return Min, nil
	}
	return Max, nil
}
