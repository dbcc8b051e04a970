// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"

	"github.com/ik5/audnote/fault"
)

var ErrNotVorbis = fmt.Errorf("%w: not an Ogg Vorbis stream", fault.ErrInvalidInput)
