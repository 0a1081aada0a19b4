// Package regina is the root of a normal surface toolkit for triangulated
// 3-manifolds: exact tree-traversal enumeration of vertex normal surfaces
// and taut angle structures, single-solution searches for surfaces with
// prescribed Euler characteristic, and tree decompositions of facet-pairing
// graphs.
//
// The work is organised as flat subpackages:
//
//	bigint/        arbitrary precision integers with a native fast path and infinity
//	matrix/        exact dense integer matrices, rank and Smith normal form
//	graph/         small undirected multigraphs with integer nodes
//	triangulation/ 3-dimensional triangulations, isomorphism signatures, skeleton
//	surface/       encodings, normal surfaces and angle structures
//	tableau/       initial tableaux and the incremental exact dual simplex
//	typetrie/      domination tests over type vectors
//	constraint/    linear-constraint and ban policies
//	treetraversal/ the backtracking enumeration and search driver
//	treedecomp/    greedy tree decompositions, nice form, PACE 2016 I/O
//
// Quick example:
//
//	tri, _ := triangulation.FromIsoSig("cPcbbbiht") // figure-eight knot complement
//	enum, _ := treetraversal.NewEnumeration[constraint.None, constraint.BanNone](tri, surface.Quad)
//	_ = enum.Run(ctx, func(e *treetraversal.Enumeration[constraint.None, constraint.BanNone]) bool {
//		s, _ := e.BuildSurface()
//		fmt.Println(s)
//		return true
//	})
//
// This package itself only carries the error kinds shared by every
// subpackage; see errors.go.
package regina
