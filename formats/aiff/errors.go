// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"

	"github.com/ik5/audnote/fault"
)

var (
	// ErrNotAiffFile indicates the file is not a valid AIFF file
	ErrNotAiffFile = fmt.Errorf("%w: not an AIFF file", fault.ErrInvalidInput)

	// ErrUnsupportedEncoding covers 8-bit and compressed (AIFF-C) files.
	ErrUnsupportedEncoding = fmt.Errorf("%w: only 16, 24 or 32-bit PCM AIFF is supported", fault.ErrInvalidInput)

	// ErrUnsupportedAiffLayout indicates an unsupported AIFF layout
	ErrUnsupportedAiffLayout = fmt.Errorf("%w: unsupported AIFF layout", fault.ErrInvalidInput)
)
