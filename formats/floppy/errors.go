// SPDX-License-Identifier: EPL-2.0

package floppy

import (
	"fmt"

	"github.com/ik5/audnote/event"
	"github.com/ik5/audnote/fault"
)

var (
	ErrNotSeconds      = fmt.Errorf("%w: floppy needs durations in seconds", event.ErrUnitMismatch)
	ErrNoteOutOfRange  = fmt.Errorf("%w: note does not fit a byte", fault.ErrRange)
	ErrDurationTooLong = fmt.Errorf("%w: duration exceeds 65535 ms", fault.ErrRange)
	ErrSongTooLong     = fmt.Errorf("%w: song length exceeds 16 bits", fault.ErrRange)
)
