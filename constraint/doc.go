// Package constraint provides the compile-time policies of a tree
// traversal: linear constraints (LP) that add rows and columns to the
// initial tableau, and coordinate bans (Ban) that force columns to zero.
//
// Policies are zero-size struct types used as type parameters, e.g.
//
//	treetraversal.NewSingleSoln[constraint.EulerPositive, constraint.BanNone](...)
//
// so the "none" variants cost nothing at run time.
//
// Column indices handed to and from policies use the tableau layout of an
// encoding with octagons removed (surface.Encoding.WithoutOctagons): seven
// columns per tetrahedron when triangles are stored, three otherwise.
package constraint
