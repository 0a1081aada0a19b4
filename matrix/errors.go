// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All routines return these sentinels (possibly wrapped with call-site
// context through matrixErrorf) and tests check them via errors.Is.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/regina"
)

var (
	// ErrBadShape is returned when a requested shape has a negative dimension.
	ErrBadShape = fmt.Errorf("matrix: invalid shape: %w", regina.ErrInvalidArgument)

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	// Public indexers (At/Set) return this instead of panicking.
	ErrOutOfRange = fmt.Errorf("matrix: index out of range: %w", regina.ErrInvalidArgument)

	// ErrDimensionMismatch indicates incompatible operand sizes, e.g. MulVec
	// with a vector whose length differs from Cols().
	ErrDimensionMismatch = fmt.Errorf("matrix: dimension mismatch: %w", regina.ErrInvalidArgument)

	// ErrNilMatrix indicates that a nil *Dense was used.
	ErrNilMatrix = fmt.Errorf("matrix: nil receiver: %w", regina.ErrInvalidArgument)
)

// matrixErrorf attaches a method tag to a sentinel while keeping it
// matchable through errors.Is.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
