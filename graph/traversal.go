// SPDX-License-Identifier: MIT

package graph

// Components returns the connected components of g. Each component lists
// its nodes in ascending order and components are ordered by their
// smallest node.
//
// Implementation:
//   - Iterative depth-first search with an explicit stack, seeded from
//     nodes in ascending order (forest traversal).
//
// Complexity: O(V + E) time, O(V) extra memory.
func (g *Multigraph) Components() [][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var (
		comp  = make([]int, g.n)
		out   [][]int
		stack []int
		u, w  int
	)
	for u = range comp {
		comp[u] = -1
	}
	for s := 0; s < g.n; s++ {
		if comp[s] >= 0 {
			continue
		}
		id := len(out)
		comp[s] = id
		stack = append(stack[:0], s)
		for len(stack) > 0 {
			u = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, w = range g.adj[u] {
				if comp[w] < 0 {
					comp[w] = id
					stack = append(stack, w)
				}
			}
		}
		out = append(out, nil)
	}
	for u = 0; u < g.n; u++ {
		out[comp[u]] = append(out[comp[u]], u)
	}

	return out
}

// BFSOrder returns the nodes reachable from start in breadth-first order,
// visiting neighbours in ascending order.
func (g *Multigraph) BFSOrder(start int) ([]int, error) {
	if start < 0 || start >= g.Order() {
		return nil, ErrNodeOutOfRange
	}
	var (
		seen  = make([]bool, g.Order())
		order = []int{start}
	)
	seen[start] = true
	for head := 0; head < len(order); head++ {
		nbrs, _ := g.Neighbors(order[head])
		for _, w := range nbrs {
			if !seen[w] {
				seen[w] = true
				order = append(order, w)
			}
		}
	}

	return order, nil
}
