// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"

	"github.com/ik5/audnote/fault"
)

var ErrNotMP3 = fmt.Errorf("%w: not an MP3 stream", fault.ErrInvalidInput)
