// SPDX-License-Identifier: EPL-2.0

package filter

import (
	"fmt"

	"github.com/ik5/audnote/event"
)

// Filter transforms an event stream. Implementations must not reorder
// surviving events and must not modify the input slice.
type Filter interface {
	Name() string
	Apply(s event.Stream) (event.Stream, error)
}

// Binder is implemented by filters that need analysis parameters known only
// once the input is open. Bind returns a copy with unset parameters filled in.
type Binder interface {
	Bind(sampleRate, windowSize int) Filter
}

// Chain applies filters in order, each consuming the previous output.
type Chain []Filter

// Apply folds s through the chain. The first error stops the fold and is
// returned with the position and name of the failing filter.
func (c Chain) Apply(s event.Stream) (event.Stream, error) {
	for i, f := range c {
		out, err := f.Apply(s)
		if err != nil {
			return nil, fmt.Errorf("filter %d (%s): %w", i, f.Name(), err)
		}
		s = out
	}
	return s, nil
}

// Bind returns a chain where every Binder has been bound to the analysis
// parameters. Other filters are kept as is.
func (c Chain) Bind(sampleRate, windowSize int) Chain {
	out := make(Chain, len(c))
	for i, f := range c {
		if b, ok := f.(Binder); ok {
			f = b.Bind(sampleRate, windowSize)
		}
		out[i] = f
	}
	return out
}

// Names lists the filter names in chain order.
func (c Chain) Names() []string {
	names := make([]string, len(c))
	for i, f := range c {
		names[i] = f.Name()
	}
	return names
}

// Unit reports the duration unit the chain produces from a stream in unit
// from, following the conversions DurationUnit and Quantize perform. It does
// not check that each conversion is legal; Apply does that.
func (c Chain) Unit(from event.Unit) event.Unit {
	u := from
	for _, f := range c {
		switch f.(type) {
		case DurationUnit, *DurationUnit:
			u = event.Seconds
		case Quantize, *Quantize:
			u = event.Steps
		}
	}
	return u
}
