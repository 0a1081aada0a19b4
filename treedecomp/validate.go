// SPDX-License-Identifier: MIT

package treedecomp

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/regina/graph"
)

// Validate checks that td is a tree decomposition of g: every node of g
// lies in some bag, every edge has both endpoints in a common bag, the
// bags holding each node form a connected subtree, and every bag index is
// smaller than its parent's.
func (td *TreeDecomposition) Validate(g *graph.Multigraph) error {
	n := g.Order()
	if td.order < n {
		return errors.Wrapf(ErrNotDecomposition, "decomposition covers %d nodes, graph has %d", td.order, n)
	}
	tops := make([]int, n) // bags holding v whose parent does not
	for _, b := range td.bags {
		if b.parent != nil && b.index >= b.parent.index {
			return errors.Wrapf(ErrNotDecomposition, "bag %d is not below its parent %d", b.index, b.parent.index)
		}
		for _, v := range b.elements {
			if v < 0 || v >= td.order {
				return errors.Wrapf(ErrNotDecomposition, "bag %d holds unknown node %d", b.index, v)
			}
			if v < n && (b.parent == nil || !b.parent.Contains(v)) {
				tops[v]++
			}
		}
	}
	for v, c := range tops {
		switch {
		case c == 0:
			return errors.Wrapf(ErrNotDecomposition, "node %d lies in no bag", v)
		case c > 1:
			return errors.Wrapf(ErrNotDecomposition, "bags holding node %d are disconnected", v)
		}
	}
	for _, e := range g.Edges() {
		if !td.covers(e.U, e.V) {
			return errors.Wrapf(ErrNotDecomposition, "edge %d-%d lies in no bag", e.U, e.V)
		}
	}

	return nil
}

func (td *TreeDecomposition) covers(u, v int) bool {
	for _, b := range td.bags {
		if b.Contains(u) && b.Contains(v) {
			return true
		}
	}

	return false
}
