// SPDX-License-Identifier: EPL-2.0

package event

import (
	"fmt"

	"github.com/ik5/audnote/fault"
)

var (
	ErrAlreadyConverted = fmt.Errorf("%w: already converted from windows", fault.ErrUnit)
	ErrUnitMismatch     = fmt.Errorf("%w: unit mismatch", fault.ErrUnit)
	ErrMixedUnits       = fmt.Errorf("%w: stream mixes units", fault.ErrUnit)
	ErrUnknownUnit      = fmt.Errorf("%w: unknown duration unit", fault.ErrInvalidConfiguration)
	ErrBadConversion    = fmt.Errorf("%w: bad conversion parameters", fault.ErrInvalidConfiguration)
	ErrUnknownWriter    = fmt.Errorf("%w: unknown writer", fault.ErrInvalidConfiguration)
)
