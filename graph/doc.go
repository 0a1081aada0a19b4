// Package graph defines Multigraph, a small undirected multigraph whose
// nodes are the integers 0..n-1.
//
// It is the common input of the tree-decomposition builder: the
// facet-pairing graph of a triangulation, the 4-valent graph of a link
// diagram, or any graph given as an adjacency matrix all arrive here.
//
// Key features:
//   - Parallel edges and self-loops are opt-in (WithMultiEdges, WithLoops),
//     mirroring how facet-pairing graphs need both.
//   - Neighbors returns distinct neighbours in ascending order, so every
//     algorithm built on top of it is deterministic.
//   - All methods are safe for concurrent use; a sync.RWMutex guards state.
//
// Complexity:
//
//   - AddEdge: O(1) amortised; Neighbors: O(d log d); Components: O(V + E).
package graph
