// SPDX-License-Identifier: MIT

package constraint

import (
	"github.com/katalvlaran/regina/surface"
	"github.com/katalvlaran/regina/triangulation"
)

// BanNone bans nothing.
type BanNone struct{}

// Name returns "none".
func (BanNone) Name() string { return "none" }

// Supported accepts every encoding.
func (BanNone) Supported(surface.Encoding) bool { return true }

// Columns returns all-false slices.
func (BanNone) Columns(tri *triangulation.Triangulation, enc surface.Encoding) ([]bool, []bool, error) {
	n := baseColumns(tri, enc)

	return make([]bool, n), make([]bool, n), nil
}

// BanBoundary bans every normal disc that meets a boundary facet.
type BanBoundary struct{}

// Name returns "boundary".
func (BanBoundary) Name() string { return "boundary" }

// Supported accepts normal surface encodings.
func (BanBoundary) Supported(enc surface.Encoding) bool { return !enc.StoresAngles() }

// Columns bans discs touching any boundary facet; nothing is marked.
func (BanBoundary) Columns(tri *triangulation.Triangulation, enc surface.Encoding) ([]bool, []bool, error) {
	if enc.StoresAngles() {
		return nil, nil, ErrUnsupportedEncoding
	}
	n := baseColumns(tri, enc)
	banned, marked := make([]bool, n), make([]bool, n)
	for t := 0; t < tri.Size(); t++ {
		for f := 0; f < 4; f++ {
			if tri.Adjacent(t, f) < 0 {
				banFacet(banned, enc, t, f)
			}
		}
	}

	return banned, marked, nil
}

// BanTorusBoundary bans every normal disc that meets a torus boundary
// component, real or ideal. Triangles at boundary or ideal vertices are
// marked.
type BanTorusBoundary struct{}

// Name returns "torus-boundary".
func (BanTorusBoundary) Name() string { return "torus-boundary" }

// Supported accepts normal surface encodings.
func (BanTorusBoundary) Supported(enc surface.Encoding) bool { return !enc.StoresAngles() }

// Columns bans discs on torus boundary facets and the triangles linking
// ideal torus vertices.
func (BanTorusBoundary) Columns(tri *triangulation.Triangulation, enc surface.Encoding) ([]bool, []bool, error) {
	if enc.StoresAngles() {
		return nil, nil, ErrUnsupportedEncoding
	}
	n := baseColumns(tri, enc)
	banned, marked := make([]bool, n), make([]bool, n)
	orientable := tri.IsOrientable()
	for _, bc := range tri.BoundaryComponents() {
		if !bc.IsTorus(orientable) {
			continue
		}
		if bc.Ideal {
			if enc.StoresTriangles() {
				for _, emb := range tri.Vertex(bc.Vertex).Embeddings {
					banned[7*emb.Tet+emb.Vertex] = true
				}
			}
			continue
		}
		for _, fc := range bc.Facets {
			banFacet(banned, enc, fc.Tet, fc.Vertex)
		}
	}
	if enc.StoresTriangles() {
		for t := 0; t < tri.Size(); t++ {
			for v := 0; v < 4; v++ {
				vtx := tri.Vertex(tri.VertexIndex(t, v))
				if vtx.IsBoundary() || vtx.IsIdeal() {
					marked[7*t+v] = true
				}
			}
		}
	}

	return banned, marked, nil
}

// banFacet bans the discs of tet that have an arc in facet f: every
// quadrilateral and the triangles at the three vertices of f.
func banFacet(banned []bool, enc surface.Encoding, tet, f int) {
	block, quad := 3, 0
	if enc.StoresTriangles() {
		block, quad = 7, 4
		for v := 0; v < 4; v++ {
			if v != f {
				banned[block*tet+v] = true
			}
		}
	}
	for k := 0; k < 3; k++ {
		banned[block*tet+quad+k] = true
	}
}
