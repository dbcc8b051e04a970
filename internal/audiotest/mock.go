// SPDX-License-Identifier: EPL-2.0

// Package audiotest generates synthetic audio for tests.
package audiotest

import (
	"io"
	"math"

	"github.com/ik5/audnote/utils"
)

// MockSource generates audio on the fly from a waveform function.
// It implements the audio.Source interface (without importing it to avoid cycles).
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // Total samples to generate (per channel)
	generated    int // Samples generated so far (per channel)
	waveform     func(sample int, channel int) float32
	reads        int
}

// NewMockSource creates a new mock audio source.
// totalSamples is the total number of samples per channel to generate.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(int, int) float32 { return 0 })
}

// NewSineSource creates a mock source that generates a sine wave on every channel.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, _ int) float32 {
		return Sine(sampleRate, frequency, sample)
	})
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(sampleRate, channels, totalSamples int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(int, int) float32 { return value })
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

// Generated is the number of frames handed out so far.
func (m *MockSource) Generated() int { return m.generated }

// Reads counts calls to ReadSamples.
func (m *MockSource) Reads() int { return m.reads }

// Reset resets the generated sample counter to allow re-reading
func (m *MockSource) Reset() {
	m.generated = 0
	m.reads = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	m.reads++
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.totalSamples-m.generated)
	for frame := range frames {
		idx := m.generated + frame
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(idx, ch)
		}
	}

	m.generated += frames
	if m.generated >= m.totalSamples {
		return frames * m.channels, io.EOF
	}
	return frames * m.channels, nil
}

// Sine is sample i of a unit-amplitude sine at frequency hz.
func Sine(sampleRate int, hz float64, i int) float32 {
	return float32(math.Sin(2 * math.Pi * hz * float64(i) / float64(sampleRate)))
}

// Segment is a stretch of pure tone; Hz == 0 is silence.
type Segment struct {
	Hz      float64
	Samples int
}

// Melody renders consecutive segments into one mono buffer. Phase runs on
// from the start of the buffer, as if one oscillator changed pitch.
func Melody(sampleRate int, segments ...Segment) []float32 {
	var out []float32
	for _, seg := range segments {
		for range seg.Samples {
			var v float32
			if seg.Hz > 0 {
				v = Sine(sampleRate, seg.Hz, len(out))
			}
			out = append(out, v)
		}
	}
	return out
}

// PCM16 scales samples to 16-bit integers for building encoded fixtures.
func PCM16(samples []float32) []int16 {
	out := make([]int16, len(samples))
	for i, v := range samples {
		out[i] = utils.Float32ToInt16(v)
	}
	return out
}
