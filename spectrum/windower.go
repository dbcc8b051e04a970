// SPDX-License-Identifier: EPL-2.0

package spectrum

import (
	"fmt"
	"io"
	"iter"

	"github.com/ik5/audnote/audio"
)

// DefaultWindowSize is the analysis window length in samples.
const DefaultWindowSize = 4096

// PartialPolicy decides the fate of a trailing window shorter than the size.
type PartialPolicy int

const (
	// PartialDrop discards the trailing partial window.
	PartialDrop PartialPolicy = iota
	// PartialPad zero-pads it to the full size.
	PartialPad
)

// ParsePartialPolicy maps "drop" and "pad" to a policy.
func ParsePartialPolicy(s string) (PartialPolicy, error) {
	switch s {
	case "", "drop":
		return PartialDrop, nil
	case "pad":
		return PartialPad, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

func (p PartialPolicy) String() string {
	if p == PartialPad {
		return "pad"
	}
	return "drop"
}

// Window is a contiguous run of samples analyzed as one unit.
type Window struct {
	Index   int // position in the window sequence
	Offset  int // offset of the first sample in the stream
	Samples []float32
}

// Count is the number of windows n samples yield under policy.
func Count(n, size int, policy PartialPolicy) int {
	if size <= 0 || n <= 0 {
		return 0
	}
	if policy == PartialPad {
		return (n + size - 1) / size
	}
	return n / size
}

// Windower cuts a mono source into consecutive, non-overlapping windows.
// Samples are pulled from the source only as windows are requested.
type Windower struct {
	src    audio.Source
	size   int
	policy PartialPolicy

	index  int
	offset int
	eof    bool
}

// NewWindower validates size and channel count. The source must be mono;
// mix it with audio.NewMonoMixer first.
func NewWindower(src audio.Source, size int, policy PartialPolicy) (*Windower, error) {
	if size < 2 {
		return nil, fmt.Errorf("%w: %d", ErrWindowSize, size)
	}
	if src.Channels() != 1 {
		return nil, fmt.Errorf("%w: %d channels", ErrNotMono, src.Channels())
	}
	return &Windower{src: src, size: size, policy: policy}, nil
}

// Size is the window length in samples.
func (w *Windower) Size() int { return w.size }

// Produced is the number of windows handed out so far.
func (w *Windower) Produced() int { return w.index }

// Next returns the next window, or io.EOF once the source is exhausted.
// A stream that ends before yielding any window returns ErrNoWindows.
func (w *Windower) Next() (Window, error) {
	if w.eof {
		return Window{}, w.end()
	}

	buf := make([]float32, w.size)
	filled, err := w.fill(buf)
	if err != nil {
		return Window{}, err
	}

	if filled < w.size {
		w.eof = true
		if filled == 0 || w.policy == PartialDrop {
			return Window{}, w.end()
		}
		// buf is freshly allocated, the tail is already zero.
	}

	win := Window{Index: w.index, Offset: w.offset, Samples: buf}
	w.index++
	w.offset += w.size
	return win, nil
}

// fill reads until buf is full or the source ends.
func (w *Windower) fill(buf []float32) (int, error) {
	filled := 0
	for empty := 0; filled < len(buf) && !w.eof; {
		n, err := w.src.ReadSamples(buf[filled:])
		filled += n

		switch {
		case err == io.EOF:
			w.eof = true
		case err != nil:
			return filled, fmt.Errorf("reading samples at offset %d: %w", w.offset+filled, err)
		case n == 0:
			empty++
			if empty >= 100 {
				return filled, io.ErrNoProgress
			}
		}
	}
	return filled, nil
}

func (w *Windower) end() error {
	if w.index == 0 {
		return fmt.Errorf("%w: window of %d samples", ErrNoWindows, w.size)
	}
	return io.EOF
}

// All adapts the windower to a range loop. Errors other than io.EOF are
// yielded once and end the sequence; breaking out of the loop stops reading.
func (w *Windower) All() iter.Seq2[Window, error] {
	return func(yield func(Window, error) bool) {
		for {
			win, err := w.Next()
			if err == io.EOF {
				return
			}
			if !yield(win, err) || err != nil {
				return
			}
		}
	}
}
