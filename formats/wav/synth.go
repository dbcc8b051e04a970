// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"math"

	"github.com/ik5/audnote/event"
	"github.com/ik5/audnote/note"
	"github.com/ik5/audnote/utils"
)

const (
	DefaultSynthRate      = 44100
	DefaultSynthAmplitude = 0.5
)

// Synth renders a stream back to audio: every note becomes a sine at its
// equal-tempered frequency, every rest becomes silence. Listening to the
// result is the quickest way to judge a transcription.
//
// Durations must be in seconds. Zero fields take the defaults above.
type Synth struct {
	SampleRate int
	Amplitude  float64
}

func (Synth) Extension() string { return ".wav" }

func (s Synth) Write(w io.Writer, st event.Stream) error {
	samples, err := s.Render(st)
	if err != nil {
		return err
	}
	return WriteWAV16(w, s.rate(), samples)
}

func (s Synth) rate() int {
	if s.SampleRate <= 0 {
		return DefaultSynthRate
	}
	return s.SampleRate
}

// Render returns the 16-bit mono samples Write would store. The oscillator
// phase carries across events so note changes do not click.
func (s Synth) Render(st event.Stream) ([]int16, error) {
	rate := float64(s.rate())
	amp := s.Amplitude
	if amp <= 0 {
		amp = DefaultSynthAmplitude
	}
	amp = min(amp, 1)

	var (
		out   []int16
		phase float64
	)
	for i, e := range st {
		if e.Duration.Unit() != event.Seconds {
			return nil, fmt.Errorf("event %d is in %s: %w", i, e.Duration.Unit(), ErrNotSeconds)
		}

		n := int(math.Round(e.Duration.Value() * rate))
		if e.Note.IsRest() {
			out = append(out, make([]int16, n)...)
			continue
		}

		step := 2 * math.Pi * note.Frequency(e.Note) / rate
		for range n {
			out = append(out, utils.Float32ToInt16(float32(amp*math.Sin(phase))))
			phase = math.Mod(phase+step, 2*math.Pi)
		}
	}
	return out, nil
}
