// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"

	"github.com/katalvlaran/regina"
)

var (
	// ErrNodeOutOfRange indicates a node index outside 0..Order()-1.
	ErrNodeOutOfRange = fmt.Errorf("graph: node out of range: %w", regina.ErrInvalidArgument)

	// ErrLoopNotAllowed indicates a self-loop on a graph built without WithLoops.
	ErrLoopNotAllowed = fmt.Errorf("graph: self-loop not allowed: %w", regina.ErrInvalidArgument)

	// ErrMultiEdgeNotAllowed indicates a parallel edge on a graph built without WithMultiEdges.
	ErrMultiEdgeNotAllowed = fmt.Errorf("graph: multi-edges not allowed: %w", regina.ErrInvalidArgument)

	// ErrTooFewNodes indicates a builder asked for fewer nodes than its
	// shape needs.
	ErrTooFewNodes = fmt.Errorf("graph: too few nodes: %w", regina.ErrInvalidArgument)

	// ErrAsymmetric indicates an adjacency matrix that is not square and symmetric.
	ErrAsymmetric = fmt.Errorf("graph: adjacency matrix is not symmetric: %w", regina.ErrInvalidArgument)
)
