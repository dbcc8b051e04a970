// SPDX-License-Identifier: EPL-2.0

package audnote

import (
	"fmt"
	"io"

	"github.com/ik5/audnote/audio"
	"github.com/ik5/audnote/utils"
)

// Prepare brings src into the shape the analyzer reads: channels are mixed
// down to mono, then the stream is resampled to rate. A rate of 0, or the
// source's own rate, skips resampling.
//
// Closing the returned source closes src.
func Prepare(src audio.Source, rate int) (audio.Source, error) {
	var out audio.Source = src
	if src.Channels() > 1 {
		out = audio.NewMonoMixer(out)
	}

	if rate > 0 && rate != out.SampleRate() {
		r, err := audio.NewResampler(out, rate)
		if err != nil {
			return nil, fmt.Errorf("preparing source: %w", err)
		}
		out = r
	}

	return out, nil
}

// Mono16 runs src through Prepare and collects the whole result as 16-bit
// PCM. It returns the samples and their rate. Handy for writing the signal
// the analyzer actually sees back to disk.
func Mono16(src audio.Source, rate int, bufferSize int) ([]int16, int, error) {
	mono, err := Prepare(src, rate)
	if err != nil {
		return nil, 0, err
	}
	if bufferSize <= 0 {
		bufferSize = mono.BufSize()
	}

	pcm16 := make([]int16, 0, mono.SampleRate()*2)
	buf := make([]float32, bufferSize)

	for {
		n, err := mono.ReadSamples(buf)
		for _, x := range buf[:n] {
			pcm16 = append(pcm16, utils.Float32ToInt16(x))
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, mono.SampleRate(), fmt.Errorf("collecting samples: %w", err)
		}
	}

	return pcm16, mono.SampleRate(), nil
}
