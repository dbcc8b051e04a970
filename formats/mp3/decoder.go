// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audnote/audio"
	"github.com/ik5/audnote/utils"
)

// mp3Reader is the part of gomp3.Decoder the source uses.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// go-mp3 always yields 16-bit little-endian stereo.
const channels = 2

type source struct {
	dec        mp3Reader
	sampleRate int
	closer     io.Closer

	buf []byte
	// pending is 1 when the previous read stopped inside a sample; that byte
	// waits at buf[0].
	pending int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) BufSize() int    { return cap(s.buf) / 2 }

func (s *source) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * 2
	if cap(s.buf) < need {
		grown := make([]byte, need)
		copy(grown, s.buf[:s.pending])
		s.buf = grown
	}
	s.buf = s.buf[:need]

	n, err := s.dec.Read(s.buf[s.pending:])
	total := s.pending + n
	samples := total / 2

	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.buf[2*i:]))
		dst[i] = utils.PCMToFloat32(int(v), 16)
	}

	s.pending = total % 2
	if s.pending == 1 {
		s.buf[0] = s.buf[total-1]
	}

	if err == io.EOF {
		s.pending = 0
		return samples, io.EOF
	}
	if err != nil {
		return samples, fmt.Errorf("decoding mp3: %w", err)
	}
	return samples, nil
}

// Decoder reads MPEG-1/2 Layer III streams. Output is always stereo,
// even for mono files; mix it down with audio.NewMonoMixer.
type Decoder struct{}

// Decode reads the first frame header of r. If r is an io.Closer it is
// closed with the returned source.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3, err)
	}

	closer, _ := r.(io.Closer)
	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		closer:     closer,
		buf:        make([]byte, 8192),
	}, nil
}
