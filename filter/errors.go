// SPDX-License-Identifier: EPL-2.0

package filter

import (
	"fmt"

	"github.com/ik5/audnote/fault"
)

var (
	ErrUnknownFilter    = fmt.Errorf("%w: unknown filter", fault.ErrInvalidConfiguration)
	ErrMissingName      = fmt.Errorf("%w: filter without a name", fault.ErrInvalidConfiguration)
	ErrMissingParameter = fmt.Errorf("%w: missing filter parameter", fault.ErrInvalidConfiguration)
	ErrBadParameter     = fmt.Errorf("%w: bad filter parameter", fault.ErrInvalidConfiguration)
)
