// SPDX-License-Identifier: EPL-2.0

package note

import (
	"fmt"

	"github.com/ik5/audnote/fault"
)

var (
	// ErrSilence is returned when a pitch cannot be mapped to a note.
	ErrSilence = fmt.Errorf("%w: non-positive pitch", fault.ErrInvalidInput)

	// ErrOutOfRange is returned under RangeFail for notes outside [Min, Max].
	ErrOutOfRange = fmt.Errorf("%w: outside 0..127", fault.ErrRange)

	ErrUnknownRangePolicy = fmt.Errorf("%w: unknown range policy", fault.ErrInvalidConfiguration)
)
