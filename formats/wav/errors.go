// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"

	"github.com/ik5/audnote/event"
	"github.com/ik5/audnote/fault"
)

var (
	ErrNotWavFile           = fmt.Errorf("%w: not a WAV file", fault.ErrInvalidInput)
	ErrUnsupportedWavLayout = fmt.Errorf("%w: unsupported WAV layout", fault.ErrInvalidInput)
	ErrUnsupportedEncoding  = fmt.Errorf("%w: only integer PCM of 8, 16, 24 or 32 bits is supported", fault.ErrInvalidInput)
	ErrInvalidSampleRate    = fmt.Errorf("%w: sample rate must be positive", fault.ErrInvalidConfiguration)

	// ErrNotSeconds is returned by Synth for streams not measured in seconds.
	ErrNotSeconds = fmt.Errorf("%w: synth needs durations in %s", event.ErrUnitMismatch, event.Seconds)
)
