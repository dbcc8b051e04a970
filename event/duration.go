// SPDX-License-Identifier: EPL-2.0

package event

import (
	"fmt"
	"math"
)

// Unit tags the meaning of a duration value.
type Unit int

const (
	// Windows counts consecutive analysis windows. Aggregated events start here.
	Windows Unit = iota
	// Seconds is wall-clock time.
	Seconds
	// Steps is an integer grid (e.g. sixteenth notes) produced by quantizing seconds.
	Steps
)

var unitNames = [...]string{Windows: "windows", Seconds: "seconds", Steps: "steps"}

func (u Unit) String() string {
	if int(u) < len(unitNames) && u >= 0 {
		return unitNames[u]
	}
	return fmt.Sprintf("unit(%d)", int(u))
}

// ParseUnit maps a unit name back to a Unit.
func ParseUnit(s string) (Unit, error) {
	for u, name := range unitNames {
		if name == s {
			return Unit(u), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

// Duration is a length tagged with its unit. The zero value is zero windows.
type Duration struct {
	value float64
	unit  Unit
}

// WindowCount returns a duration of n analysis windows.
func WindowCount(n int) Duration { return Duration{value: float64(n), unit: Windows} }

// SecondsOf returns a duration of s seconds.
func SecondsOf(s float64) Duration { return Duration{value: s, unit: Seconds} }

// StepCount returns a duration of n grid steps.
func StepCount(n int) Duration { return Duration{value: float64(n), unit: Steps} }

// Value is the magnitude in the duration's own unit.
func (d Duration) Value() float64 { return d.value }

// Unit returns the tag.
func (d Duration) Unit() Unit { return d.unit }

// Add sums two durations of the same unit.
func (d Duration) Add(o Duration) (Duration, error) {
	if d.unit != o.unit {
		return Duration{}, fmt.Errorf("%w: %s + %s", ErrUnitMismatch, d.unit, o.unit)
	}
	return Duration{value: d.value + o.value, unit: d.unit}, nil
}

// ToSeconds converts a window count to seconds. Any other unit fails with
// ErrAlreadyConverted so a conversion cannot silently run twice.
func (d Duration) ToSeconds(windowSize, sampleRate int) (Duration, error) {
	if d.unit != Windows {
		return Duration{}, fmt.Errorf("%w: duration is in %s", ErrAlreadyConverted, d.unit)
	}
	if windowSize <= 0 || sampleRate <= 0 {
		return Duration{}, fmt.Errorf("%w: window %d, rate %d", ErrBadConversion, windowSize, sampleRate)
	}
	return SecondsOf(d.value * float64(windowSize) / float64(sampleRate)), nil
}

// ToSteps rounds seconds onto a grid of ratio steps per second.
func (d Duration) ToSteps(ratio float64) (Duration, error) {
	if d.unit != Seconds {
		return Duration{}, fmt.Errorf("%w: want seconds, duration is in %s", ErrUnitMismatch, d.unit)
	}
	if !(ratio > 0) {
		return Duration{}, fmt.Errorf("%w: ratio %v", ErrBadConversion, ratio)
	}
	return StepCount(int(math.Round(d.value * ratio))), nil
}

func (d Duration) String() string {
	switch d.unit {
	case Seconds:
		return fmt.Sprintf("%.3fs", d.value)
	case Windows:
		return fmt.Sprintf("%gw", d.value)
	}
	return fmt.Sprintf("%g %s", d.value, d.unit)
}
