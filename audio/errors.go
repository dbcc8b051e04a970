// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"

	"github.com/ik5/audnote/fault"
)

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
	ErrUnknownFormat  = fmt.Errorf("%w: unknown audio format", fault.ErrInvalidInput)
	ErrInvalidRate    = fmt.Errorf("%w: sample rate must be positive", fault.ErrInvalidConfiguration)
)
