// SPDX-License-Identifier: MIT

package triangulation

import (
	"fmt"

	"github.com/katalvlaran/regina"
)

var (
	// ErrBadSignature indicates a malformed isomorphism signature.
	ErrBadSignature = fmt.Errorf("triangulation: bad isomorphism signature: %w", regina.ErrInvalidArgument)

	// ErrTetOutOfRange indicates a tetrahedron index outside 0..Size()-1.
	ErrTetOutOfRange = fmt.Errorf("triangulation: tetrahedron out of range: %w", regina.ErrInvalidArgument)

	// ErrFacetOutOfRange indicates a facet number outside 0..3.
	ErrFacetOutOfRange = fmt.Errorf("triangulation: facet out of range: %w", regina.ErrInvalidArgument)

	// ErrAlreadyGlued indicates a Join onto a facet that is already glued.
	ErrAlreadyGlued = fmt.Errorf("triangulation: facet already glued: %w", regina.ErrInvalidArgument)

	// ErrSelfGluing indicates an attempt to glue a facet to itself.
	ErrSelfGluing = fmt.Errorf("triangulation: facet glued to itself: %w", regina.ErrInvalidArgument)

	// ErrBadPermutation indicates images that do not form a permutation of 0..3.
	ErrBadPermutation = fmt.Errorf("triangulation: not a permutation of 0..3: %w", regina.ErrInvalidArgument)
)
