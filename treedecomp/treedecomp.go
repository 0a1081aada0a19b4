// SPDX-License-Identifier: MIT

package treedecomp

import (
	"strings"

	"github.com/katalvlaran/regina/graph"
	"github.com/katalvlaran/regina/triangulation"
)

// TreeDecomposition is a rooted tree of bags over nodes 0..Order()-1.
type TreeDecomposition struct {
	order int    // nodes of the underlying graph
	root  *Bag   // nil when there are no bags
	bags  []*Bag // postfix order; bags[i].index == i
	width int
}

// FromGraph builds a decomposition of g by greedy fill-in. Loops and
// parallel edges are ignored.
//
// Complexity: O(n^3) time and O(n^2) memory for n nodes.
func FromGraph(g *graph.Multigraph, opts ...Option) *TreeDecomposition {
	n := g.Order()
	adj := make([][]bool, n)
	for u := range adj {
		adj[u] = make([]bool, n)
		nb, _ := g.Neighbors(u) // u is in range
		for _, v := range nb {
			adj[u][v] = true
		}
	}

	return build(n, adj, opts)
}

// FromAdjacency builds a decomposition of the graph with the given
// symmetric adjacency matrix. The diagonal is ignored.
func FromAdjacency(adj [][]bool, opts ...Option) (*TreeDecomposition, error) {
	g, err := graph.FromAdjacency(adj)
	if err != nil {
		return nil, err
	}

	return FromGraph(g, opts...), nil
}

// FromFacetPairing builds a decomposition of the facet-pairing graph: one
// node per tetrahedron, adjacent when glued along some facet.
func FromFacetPairing(p triangulation.FacetPairing, opts ...Option) *TreeDecomposition {
	return FromGraph(p.Graph(), opts...)
}

func build(n int, adj [][]bool, opts []Option) *TreeDecomposition {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	td := greedyFillIn(n, adj)
	if o.Compress || o.Nice {
		td.Compress()
	}
	if o.Nice {
		td.MakeNice()
	}

	return td
}

// greedyFillIn eliminates nodes one at a time, always choosing the node
// whose remaining neighbours miss the fewest edges among themselves (ties
// to the smaller node). Each elimination records the node and its
// remaining neighbours as a bag, whose parent is the bag of the neighbour
// eliminated next. Bags without such a neighbour are roots; several roots
// are hung below a new empty bag.
func greedyFillIn(n int, adj [][]bool) *TreeDecomposition {
	td := &TreeDecomposition{order: n}
	if n == 0 {
		td.reindex()

		return td
	}
	alive := make([]bool, n)
	for v := range alive {
		alive[v] = true
	}
	elimAt := make([]int, n)   // elimination step of each node
	elimBag := make([]*Bag, n) // bag recorded at each step
	elimNbr := make([][]int, n)

	for step := 0; step < n; step++ {
		best, bestFill := -1, -1
		for v := 0; v < n; v++ {
			if !alive[v] {
				continue
			}
			if f := fill(v, alive, adj); best < 0 || f < bestFill {
				best, bestFill = v, f
			}
		}
		v := best
		var nbr []int
		for u := 0; u < n; u++ {
			if alive[u] && u != v && adj[v][u] {
				nbr = append(nbr, u)
			}
		}
		for i, a := range nbr {
			for _, b := range nbr[i+1:] {
				adj[a][b], adj[b][a] = true, true
			}
		}
		alive[v] = false
		elimAt[v] = step
		elimBag[step] = newBag(append([]int{v}, nbr...))
		elimNbr[step] = nbr
	}

	var roots []*Bag
	for step := 0; step < n; step++ {
		parent := -1
		for _, u := range elimNbr[step] {
			if parent < 0 || elimAt[u] < parent {
				parent = elimAt[u]
			}
		}
		if parent < 0 {
			roots = append(roots, elimBag[step])
		} else {
			elimBag[parent].addChild(elimBag[step])
		}
	}
	if len(roots) == 1 {
		td.root = roots[0]
	} else {
		td.root = newBag(nil)
		for _, r := range roots {
			td.root.addChild(r)
		}
	}
	td.reindex()

	return td
}

// fill counts the missing edges among v's live neighbours.
func fill(v int, alive []bool, adj [][]bool) int {
	var nbr []int
	for u := range adj[v] {
		if alive[u] && u != v && adj[v][u] {
			nbr = append(nbr, u)
		}
	}
	missing := 0
	for i, a := range nbr {
		for _, b := range nbr[i+1:] {
			if !adj[a][b] {
				missing++
			}
		}
	}

	return missing
}

// reindex renumbers bags in postfix order and recomputes the width.
func (td *TreeDecomposition) reindex() {
	td.bags = td.bags[:0]
	td.width = -1
	if td.root == nil {
		return
	}
	for b := leftmostLeaf(td.root); b != nil; b = b.Next() {
		b.index = len(td.bags)
		td.bags = append(td.bags, b)
		if w := len(b.elements) - 1; w > td.width {
			td.width = w
		}
	}
}

// Order returns the number of nodes of the underlying graph.
func (td *TreeDecomposition) Order() int { return td.order }

// Size returns the number of bags.
func (td *TreeDecomposition) Size() int { return len(td.bags) }

// Width returns the largest bag size minus one, or -1 with no bags.
func (td *TreeDecomposition) Width() int { return td.width }

// Root returns the root bag, or nil with no bags.
func (td *TreeDecomposition) Root() *Bag { return td.root }

// Bag returns the bag with index i.
func (td *TreeDecomposition) Bag(i int) (*Bag, error) {
	if i < 0 || i >= len(td.bags) {
		return nil, ErrBagOutOfRange
	}

	return td.bags[i], nil
}

// First returns the first bag in postfix order (a leaf), or nil.
func (td *TreeDecomposition) First() *Bag {
	if td.root == nil {
		return nil
	}

	return td.bags[0]
}

// FirstPrefix returns the first bag in prefix order (the root), or nil.
func (td *TreeDecomposition) FirstPrefix() *Bag { return td.root }

// Postfix returns the bags in postfix order, children before parents.
func (td *TreeDecomposition) Postfix() []*Bag { return append([]*Bag(nil), td.bags...) }

// Prefix returns the bags in prefix order, parents before children.
func (td *TreeDecomposition) Prefix() []*Bag {
	out := make([]*Bag, 0, len(td.bags))
	for b := td.root; b != nil; b = b.NextPrefix() {
		out = append(out, b)
	}

	return out
}

// IsNice reports whether every bag carries a nice-decomposition type.
func (td *TreeDecomposition) IsNice() bool {
	if td.root == nil {
		return true
	}
	if td.root.Size() != 0 {
		return false
	}
	for _, b := range td.bags {
		if b.typ == Unclassified {
			return false
		}
	}

	return true
}

// String lists bags in postfix order, one per line: "index: {nodes} -> parent".
func (td *TreeDecomposition) String() string {
	var sb strings.Builder
	for _, b := range td.bags {
		sb.WriteString(bagLine(b))
		sb.WriteByte('\n')
	}

	return sb.String()
}
