// SPDX-License-Identifier: MIT

package treetraversal

import (
	"fmt"

	"github.com/katalvlaran/regina"
)

var (
	// ErrUnsupported indicates a policy that cannot work in the encoding.
	ErrUnsupported = fmt.Errorf("treetraversal: encoding not supported by policy: %w", regina.ErrInvalidArgument)

	// ErrAngleEncoding indicates an angle encoding passed to a surface
	// search, or a surface encoding passed to a taut search.
	ErrAngleEncoding = fmt.Errorf("treetraversal: wrong encoding for this search: %w", regina.ErrInvalidArgument)

	// ErrNeedsTriangles indicates a single-solution search in an encoding
	// without triangle coordinates.
	ErrNeedsTriangles = fmt.Errorf("treetraversal: encoding must store triangles: %w", regina.ErrInvalidArgument)

	// ErrBadTypeOrder indicates a type order that is not a permutation of
	// the tetrahedra.
	ErrBadTypeOrder = fmt.Errorf("treetraversal: type order is not a permutation: %w", regina.ErrInvalidArgument)

	// ErrNoSolution indicates a reconstruction request with no current
	// solution.
	ErrNoSolution = fmt.Errorf("treetraversal: no current solution: %w", regina.ErrFailedPrecondition)

	// ErrWrongMode indicates a surface requested from a taut search or an
	// angle structure from a surface search.
	ErrWrongMode = fmt.Errorf("treetraversal: reconstruction does not match search mode: %w", regina.ErrFailedPrecondition)

	// ErrAlreadyRun indicates a second Find on the same SingleSoln.
	ErrAlreadyRun = fmt.Errorf("treetraversal: search already run: %w", regina.ErrFailedPrecondition)
)
