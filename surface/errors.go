// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"

	"github.com/katalvlaran/regina"
)

var (
	// ErrUnknownCoords indicates an unrecognised coordinate system name.
	ErrUnknownCoords = fmt.Errorf("surface: unknown coordinate system: %w", regina.ErrInvalidArgument)

	// ErrLength indicates a coordinate vector of the wrong length.
	ErrLength = fmt.Errorf("surface: coordinate vector has wrong length: %w", regina.ErrInvalidArgument)

	// ErrNegative indicates a negative coordinate.
	ErrNegative = fmt.Errorf("surface: negative coordinate: %w", regina.ErrInvalidArgument)

	// ErrWrongMode indicates a normal-surface encoding where angles were
	// expected, or the reverse.
	ErrWrongMode = fmt.Errorf("surface: encoding does not match object kind: %w", regina.ErrFailedPrecondition)

	// ErrNonCompact indicates a request that needs triangle coordinates of a
	// spun-normal (non-compact) surface.
	ErrNonCompact = fmt.Errorf("surface: surface is not compact: %w", regina.ErrFailedPrecondition)
)
