// SPDX-License-Identifier: MIT

package graph

import "sort"

// FromAdjacency builds a simple graph from a square symmetric boolean
// matrix. Diagonal entries add self-loops, so the graph permits loops.
func FromAdjacency(adj [][]bool) (*Multigraph, error) {
	n := len(adj)
	g := New(n, WithLoops())
	for i := 0; i < n; i++ {
		if len(adj[i]) != n {
			return nil, ErrAsymmetric
		}
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if adj[i][j] != adj[j][i] {
				return nil, ErrAsymmetric
			}
			if adj[i][j] {
				g.addEdgeLocked(i, j)
			}
		}
	}

	return g, nil
}

// AddEdge inserts the undirected edge {u, v}.
func (g *Multigraph) AddEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return ErrNodeOutOfRange
	}
	if u == v && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	if !g.allowMulti && g.adjacentLocked(u, v) {
		return ErrMultiEdgeNotAllowed
	}
	g.addEdgeLocked(u, v)

	return nil
}

// addEdgeLocked appends the edge without validation; callers hold mu.
func (g *Multigraph) addEdgeLocked(u, v int) {
	if u > v {
		u, v = v, u
	}
	g.edges = append(g.edges, Edge{U: u, V: v})
	g.adj[u] = append(g.adj[u], v)
	if u != v {
		g.adj[v] = append(g.adj[v], u)
	}
}

// adjacentLocked reports whether an edge joins u and v; callers hold mu.
func (g *Multigraph) adjacentLocked(u, v int) bool {
	for _, w := range g.adj[u] {
		if w == v {
			return true
		}
	}

	return false
}

// Order returns the number of nodes.
func (g *Multigraph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.n
}

// Size returns the number of edges, counting parallel edges and loops.
func (g *Multigraph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Edges returns a copy of the edge list in insertion order.
func (g *Multigraph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Adjacent reports whether some edge joins u and v.
// Out-of-range nodes are never adjacent.
func (g *Multigraph) Adjacent(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return false
	}

	return g.adjacentLocked(u, v)
}

// Neighbors returns the distinct neighbours of u other than u itself, in
// ascending order. Loops and parallel edges collapse.
func (g *Multigraph) Neighbors(u int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if u < 0 || u >= g.n {
		return nil, ErrNodeOutOfRange
	}
	seen := make(map[int]struct{}, len(g.adj[u]))
	out := make([]int, 0, len(g.adj[u]))
	for _, w := range g.adj[u] {
		if w == u {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	sort.Ints(out)

	return out, nil
}

// Degree returns the number of edge ends at u; a loop counts twice.
func (g *Multigraph) Degree(u int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if u < 0 || u >= g.n {
		return 0, ErrNodeOutOfRange
	}
	d := len(g.adj[u])
	for _, w := range g.adj[u] {
		if w == u {
			d++ // a loop is stored once in adj[u]
		}
	}

	return d, nil
}

// AdjacencyMatrix returns the simple adjacency relation of g, ignoring
// multiplicities and loops.
func (g *Multigraph) AdjacencyMatrix() [][]bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	m := make([][]bool, g.n)
	for i := range m {
		m[i] = make([]bool, g.n)
	}
	for _, e := range g.edges {
		if e.U != e.V {
			m[e.U][e.V] = true
			m[e.V][e.U] = true
		}
	}

	return m
}
