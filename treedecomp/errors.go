// SPDX-License-Identifier: MIT

package treedecomp

import (
	"fmt"

	"github.com/katalvlaran/regina"
)

var (
	// ErrPACE indicates malformed PACE input. The wrapping message names
	// the offending line.
	ErrPACE = fmt.Errorf("treedecomp: malformed PACE data: %w", regina.ErrInvalidArgument)

	// ErrBagOutOfRange indicates a bag index outside 0..Size()-1.
	ErrBagOutOfRange = fmt.Errorf("treedecomp: bag out of range: %w", regina.ErrInvalidArgument)

	// ErrCostLength indicates a cost table whose length differs from Size().
	ErrCostLength = fmt.Errorf("treedecomp: cost table length mismatch: %w", regina.ErrInvalidArgument)

	// ErrNotDecomposition indicates a failed Validate.
	ErrNotDecomposition = fmt.Errorf("treedecomp: not a tree decomposition: %w", regina.ErrFailedPrecondition)
)
