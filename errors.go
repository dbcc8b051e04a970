// SPDX-License-Identifier: EPL-2.0

package audnote

import (
	"fmt"

	"github.com/ik5/audnote/fault"
)

var (
	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = fault.ErrInvalidConfiguration

	ErrUnitNotFinal = fmt.Errorf("%w: stream does not end in the target unit", fault.ErrUnit)
)
