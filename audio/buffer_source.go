// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// BufferSource serves samples already held in memory. The slice is never
// written to, so several sources may share it.
type BufferSource struct {
	samples    []float32
	sampleRate int
	channels   int
	pos        int
}

// NewBufferSource wraps interleaved samples. channels < 1 is treated as mono.
func NewBufferSource(sampleRate, channels int, samples []float32) *BufferSource {
	if channels < 1 {
		channels = 1
	}
	return &BufferSource{
		samples:    samples,
		sampleRate: sampleRate,
		channels:   channels,
	}
}

func (b *BufferSource) SampleRate() int { return b.sampleRate }
func (b *BufferSource) Channels() int   { return b.channels }
func (b *BufferSource) BufSize() int    { return 4096 }
func (b *BufferSource) Close() error    { return nil }

// Len is the total number of samples, all channels included.
func (b *BufferSource) Len() int { return len(b.samples) }

// Reset rewinds the source so it can be read again.
func (b *BufferSource) Reset() { b.pos = 0 }

func (b *BufferSource) ReadSamples(dst []float32) (int, error) {
	if len(dst)%b.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if b.pos >= len(b.samples) {
		return 0, io.EOF
	}

	n := copy(dst, b.samples[b.pos:])
	b.pos += n

	if b.pos >= len(b.samples) {
		return n, io.EOF
	}
	return n, nil
}
