// SPDX-License-Identifier: MIT

package surface

// QuadSeparating[i][j] is the quadrilateral type that keeps vertices i and
// j on the same side (-1 on the diagonal).
var QuadSeparating = [4][4]int{
	{-1, 0, 1, 2},
	{0, -1, 2, 1},
	{1, 2, -1, 0},
	{2, 1, 0, -1},
}

// QuadDefn[k] lists the two vertex pairs kept together by quadrilateral k.
var QuadDefn = [3][4]int{{0, 1, 2, 3}, {0, 2, 1, 3}, {0, 3, 1, 2}}

// quadCrosses reports whether quadrilateral q meets the edge ab.
func quadCrosses(q, a, b int) bool { return QuadSeparating[a][b] != q }

// octCrossings returns how many times octagon k meets edge ab: twice for the
// edges inside the pairs of QuadDefn[k], once otherwise.
func octCrossings(k, a, b int) int {
	if QuadSeparating[a][b] == k {
		return 2
	}

	return 1
}

// octInArc reports whether octagon k has an arc near vertex v in facet f.
// It does so exactly when the quadrilateral with that arc differs from k.
func octInArc(k, v, f int) bool { return QuadSeparating[v][f] != k }
