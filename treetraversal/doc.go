// Package treetraversal searches for normal surfaces and taut angle
// structures by walking a tree of type vectors.
//
// Each tetrahedron gets a quadrilateral type: 0 for no quadrilaterals,
// 1..3 for quadrilaterals of one kind and, in encodings with octagons,
// 4..6 for a single octagon of one kind. In encodings with triangles each
// triangle also gets a type, 0 or 1. A node of the search tree fixes the
// types of a prefix of positions; the tableau behind the node carries the
// matching equations plus one constraint per fixed type, and an
// infeasible tableau prunes the whole subtree.
//
// Three searches share one driver:
//
//	Enumeration      every vertex surface, found at feasible leaves whose
//	                 type vector no earlier solution dominates
//	taut Enumeration every taut angle structure (types 1..3 only)
//	SingleSoln       one surface satisfying the constraint policy, with
//	                 at least one triangle coordinate zero
//
// The driver is generic over a linear constraint policy and a ban policy
// (see package constraint); the zero values of both are used.
//
// A traversal runs on the calling goroutine. Cancel and Percent may be
// called from any goroutine; the driver polls for cancellation, and for
// context cancellation, each time it moves between levels.
package treetraversal
