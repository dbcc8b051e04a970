// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"

	"github.com/ik5/audnote/audio"
	"github.com/ik5/audnote/internal/pcm"
)

// Decoder reads uncompressed AIFF files of 16, 24 or 32 bits.
type Decoder struct{}

// Decode parses the COMM chunk of r. go-audio needs to seek, so readers
// that cannot are loaded into memory first. If r is an io.Closer it is
// closed with the returned source.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := pcm.ReadSeeker(r)
	if err != nil {
		return nil, fmt.Errorf("reading aiff data: %w", err)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	switch dec.BitDepth {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedEncoding, dec.BitDepth)
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 || format.SampleRate <= 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	closer, _ := r.(io.Closer)
	return pcm.NewSource(dec, int(dec.BitDepth), closer), nil
}
