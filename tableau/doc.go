// Package tableau implements the linear programming layer of a tree
// traversal.
//
// Initial holds the starting system for a triangulation and encoding: the
// matching (or angle) equations, the extra rows of a constraint policy, and
// a column permutation that groups columns by tetrahedron. It is read-only
// after construction and can be shared between traversals.
//
// Data is a working tableau derived from an Initial. It supports the three
// operations a search tree needs, each keeping the system exact:
//   - ConstrainZero(c):      x_c = 0
//   - ConstrainPositive(c):  x_c >= 1, by substituting x_c = y + 1
//   - ConstrainOct(a, b):    x_a = x_b > 0, one octagon from two quads
//
// Infeasibility is not an error: it is reported by Feasible and is how a
// traversal prunes. Misuse (bad indices, operations on an unprepared
// tableau) panics with a "tableau:" message.
//
// Arithmetic: the tableau is stored as integers with a common positive
// denominator D, and pivots are fraction-free (Bareiss): every update is
// (p*T[i][j] - T[i][c]*T[r][j]) / D, an exact division. Basic columns hold
// D in their row. Pivot selection uses least-index rules throughout, which
// both terminates and makes every traversal deterministic.
package tableau
