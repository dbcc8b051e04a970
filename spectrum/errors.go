// SPDX-License-Identifier: EPL-2.0

package spectrum

import (
	"fmt"

	"github.com/ik5/audnote/fault"
)

var (
	ErrWindowSize         = fmt.Errorf("%w: window size must be at least 2", fault.ErrInvalidConfiguration)
	ErrSampleRate         = fmt.Errorf("%w: sample rate must be positive", fault.ErrInvalidConfiguration)
	ErrUnknownPolicy      = fmt.Errorf("%w: unknown partial window policy", fault.ErrInvalidConfiguration)
	ErrUnknownApodization = fmt.Errorf("%w: unknown apodization", fault.ErrInvalidConfiguration)
	ErrNotMono            = fmt.Errorf("%w: source must be mono", fault.ErrInvalidInput)
	ErrWindowLength       = fmt.Errorf("%w: window length does not match analyzer", fault.ErrInvalidInput)

	// ErrNoWindows is returned when the stream ends before a single window
	// is filled. It matches both ErrInvalidInput and ErrInvalidConfiguration.
	ErrNoWindows = fmt.Errorf("%w (%w): stream shorter than one window", fault.ErrInvalidInput, fault.ErrInvalidConfiguration)
)
