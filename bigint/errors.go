// SPDX-License-Identifier: MIT

package bigint

import (
	"fmt"

	"github.com/katalvlaran/regina"
)

var (
	// ErrDivideByZero is returned by Div, DivExact, Mod and their LargeInt
	// counterparts when the divisor is zero.
	ErrDivideByZero = fmt.Errorf("bigint: division by zero: %w", regina.ErrDomain)

	// ErrInfinity is returned when an operation has no value with infinity,
	// e.g. infinity times zero or a gcd involving infinity.
	ErrInfinity = fmt.Errorf("bigint: undefined operation on infinity: %w", regina.ErrDomain)

	// ErrParse is returned by Parse and ParseLarge for ill-formed decimal text.
	ErrParse = fmt.Errorf("bigint: malformed integer: %w", regina.ErrInvalidArgument)
)
