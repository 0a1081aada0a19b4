// SPDX-License-Identifier: MIT

package graph

import "sync"

// Edge is an undirected edge between U and V; U <= V after insertion.
type Edge struct {
	U int
	V int
}

// Multigraph is an undirected graph on nodes 0..n-1.
type Multigraph struct {
	mu         sync.RWMutex
	n          int     // number of nodes
	adj        [][]int // adj[u]: neighbour per incident edge end, insertion order
	edges      []Edge  // all edges, insertion order
	allowLoops bool    // self-loops permitted
	allowMulti bool    // parallel edges permitted
}

// Option configures a Multigraph before creation.
type Option func(g *Multigraph)

// WithLoops permits self-loops.
func WithLoops() Option { return func(g *Multigraph) { g.allowLoops = true } }

// WithMultiEdges permits parallel edges.
func WithMultiEdges() Option { return func(g *Multigraph) { g.allowMulti = true } }

// New returns an edgeless graph on n nodes. A negative n is treated as 0.
func New(n int, opts ...Option) *Multigraph {
	if n < 0 {
		n = 0
	}
	g := &Multigraph{n: n, adj: make([][]int, n)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
