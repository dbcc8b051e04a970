// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/audnote/utils"
)

// maxEmptyReads bounds consecutive (0, nil) reads from a source before the
// resampler gives up with io.ErrNoProgress.
const maxEmptyReads = 100

// Resampler streams src at a new sample rate using Catmull-Rom interpolation.
// It works on interleaved frames and keeps the channel count. When
// downsampling, input frames pass through a one-pole low-pass first.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames consumed per output frame
	channels int

	// hist[1] and hist[2] surround the output position; hist[0] and hist[3]
	// are the outer neighbours. real marks frames read from src as opposed to
	// edge duplicates.
	hist [4][]float32
	real [4]bool
	pos  float64

	buf     []float32
	bufN    int
	bufPos  int
	srcEOF  bool
	started bool

	lowpass bool
	lpReady bool
	lpState []float32
}

// NewResampler converts src to dstRate. dstRate must be positive.
func NewResampler(src Source, dstRate int) (*Resampler, error) {
	if dstRate <= 0 || src.SampleRate() <= 0 {
		return nil, fmt.Errorf("%w: %d -> %d Hz", ErrInvalidRate, src.SampleRate(), dstRate)
	}

	channels := max(src.Channels(), 1)
	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     float64(src.SampleRate()) / float64(dstRate),
		channels: channels,
		buf:      make([]float32, 4096*channels),
		lpState:  make([]float32, channels),
	}
	r.lowpass = r.step > 1
	for i := range r.hist {
		r.hist[i] = make([]float32, channels)
	}

	return r, nil
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("closing resampled source: %w", err)
	}
	return nil
}

// nextFrame copies the next source frame into dst. It reports false once the
// source is exhausted.
func (r *Resampler) nextFrame(dst []float32) (bool, error) {
	for empty := 0; r.bufPos >= r.bufN; {
		if r.srcEOF {
			return false, nil
		}

		n, err := r.src.ReadSamples(r.buf)
		r.bufN = n - n%r.channels
		r.bufPos = 0

		switch {
		case err == io.EOF:
			r.srcEOF = true
		case err != nil:
			return false, fmt.Errorf("reading source: %w", err)
		case n == 0:
			empty++
			if empty >= maxEmptyReads {
				return false, io.ErrNoProgress
			}
		}
	}

	copy(dst, r.buf[r.bufPos:r.bufPos+r.channels])
	r.bufPos += r.channels

	if r.lowpass && !r.lpReady {
		// Seed the filter with the first frame to avoid a warm-up transient.
		copy(r.lpState, dst)
		r.lpReady = true
	} else if r.lowpass {
		const alpha = 0.5
		for c := range dst {
			dst[c] = alpha*dst[c] + (1-alpha)*r.lpState[c]
			r.lpState[c] = dst[c]
		}
	}
	return true, nil
}

// advance shifts the history one frame and loads the next one into hist[3],
// duplicating the last frame at the end of the stream.
func (r *Resampler) advance() error {
	first := r.hist[0]
	copy(r.hist[:], r.hist[1:])
	copy(r.real[:], r.real[1:])
	r.hist[3] = first

	ok, err := r.nextFrame(r.hist[3])
	if err != nil {
		return err
	}
	if !ok {
		copy(r.hist[3], r.hist[2])
	}
	r.real[3] = ok
	return nil
}

func (r *Resampler) start() error {
	r.started = true

	ok, err := r.nextFrame(r.hist[1])
	if err != nil || !ok {
		return err
	}
	copy(r.hist[0], r.hist[1])
	r.real[1] = true

	for i := 2; i < 4; i++ {
		ok, err := r.nextFrame(r.hist[i])
		if err != nil {
			return err
		}
		if !ok {
			copy(r.hist[i], r.hist[i-1])
		}
		r.real[i] = ok
	}
	return nil
}

// ReadSamples produces interleaved samples at the destination rate.
// dst length should be a multiple of r.channels.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if !r.started {
		if err := r.start(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		// Past the last real frame there is nothing left to interpolate.
		if !r.real[1] || (!r.real[2] && r.pos > 0) {
			return written * r.channels, io.EOF
		}

		x := float32(r.pos)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = utils.CubicInterpolate(r.hist[0][c], r.hist[1][c], r.hist[2][c], r.hist[3][c], x)
		}
		written++

		r.pos += r.step
		for r.pos >= 1 {
			r.pos--
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}
	}

	return written * r.channels, nil
}
