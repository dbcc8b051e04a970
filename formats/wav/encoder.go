// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/audnote/internal/pcm"
)

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate.
//
// The encoder patches chunk sizes once the data is written, so it needs to
// seek. A w positioned at offset 0 that can seek is written in place;
// anything else (pipes, buffers) gets the file assembled in memory first.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	var mem *pcm.WriteSeeker
	ws, ok := w.(io.WriteSeeker)
	if ok {
		if pos, err := ws.Seek(0, io.SeekCurrent); err != nil || pos != 0 {
			ok = false
		}
	}
	if !ok {
		mem = &pcm.WriteSeeker{}
		ws = mem
	}

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	enc := wav.NewEncoder(ws, sampleRate, 16, 1, formatPCM)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encoding wav data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finishing wav file: %w", err)
	}

	if mem != nil {
		if _, err := w.Write(mem.Bytes()); err != nil {
			return fmt.Errorf("writing wav file: %w", err)
		}
	}
	return nil
}
