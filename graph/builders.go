// SPDX-License-Identifier: MIT

package graph

import "fmt"

const minCycleNodes = 3

// Path returns the path 0-1-...-(n-1).
//
// Complexity: O(n).
func Path(n int) (*Multigraph, error) {
	if n < 1 {
		return nil, fmt.Errorf("Path: n=%d: %w", n, ErrTooFewNodes)
	}
	g := New(n)
	for v := 0; v+1 < n; v++ {
		g.addEdgeLocked(v, v+1)
	}

	return g, nil
}

// Cycle returns the cycle C_n with edges i-(i+1 mod n) in increasing i.
//
// Complexity: O(n).
func Cycle(n int) (*Multigraph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewNodes)
	}
	g := New(n)
	for v := 0; v < n; v++ {
		g.addEdgeLocked(v, (v+1)%n)
	}

	return g, nil
}

// Complete returns K_n, edges emitted in lexicographic order.
//
// Complexity: O(n^2).
func Complete(n int) (*Multigraph, error) {
	if n < 1 {
		return nil, fmt.Errorf("Complete: n=%d: %w", n, ErrTooFewNodes)
	}
	g := New(n)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			g.addEdgeLocked(u, v)
		}
	}

	return g, nil
}

// Grid returns the rows x cols orthogonal grid. Node r*cols+c is cell
// (r, c); each cell emits its right edge, then its bottom edge.
//
// Complexity: O(rows*cols).
func Grid(rows, cols int) (*Multigraph, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("Grid: rows=%d, cols=%d: %w", rows, cols, ErrTooFewNodes)
	}
	g := New(rows * cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := r*cols + c
			if c+1 < cols {
				g.addEdgeLocked(v, v+1)
			}
			if r+1 < rows {
				g.addEdgeLocked(v, v+cols)
			}
		}
	}

	return g, nil
}
