// SPDX-License-Identifier: EPL-2.0

package midi

import (
	"fmt"

	"github.com/ik5/audnote/event"
	"github.com/ik5/audnote/fault"
)

var (
	ErrNoteOutOfRange  = fmt.Errorf("%w: note outside the MIDI key range", fault.ErrRange)
	ErrDurationTooLong = fmt.Errorf("%w: duration does not fit a delta time", fault.ErrRange)
	ErrNotSeconds      = fmt.Errorf("%w: midi needs durations in seconds", event.ErrUnitMismatch)
	ErrInvalidVelocity = fmt.Errorf("%w: velocity must be 1..127", fault.ErrInvalidConfiguration)
	ErrInvalidTempo    = fmt.Errorf("%w: tempo must fit 24 bits", fault.ErrInvalidConfiguration)
)
