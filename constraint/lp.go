// SPDX-License-Identifier: MIT

package constraint

import (
	"github.com/katalvlaran/regina/bigint"
	"github.com/katalvlaran/regina/surface"
	"github.com/katalvlaran/regina/triangulation"
)

// None adds no constraints.
type None struct{}

// Name returns "none".
func (None) Name() string { return "none" }

// Supported accepts every encoding.
func (None) Supported(surface.Encoding) bool { return true }

// ExtraColumns returns 0.
func (None) ExtraColumns() int { return 0 }

// Rows returns nil.
func (None) Rows(*triangulation.Triangulation, surface.Encoding) ([]Row, error) { return nil, nil }

// Constrain does nothing.
func (None) Constrain(Constrainer, int) {}

// Verify accepts every surface.
func (None) Verify(*surface.NormalSurface) bool { return true }

// EulerPositive requires a strictly positive Euler characteristic.
type EulerPositive struct{}

// Name returns "euler-positive".
func (EulerPositive) Name() string { return "euler-positive" }

// Supported requires triangle coordinates.
func (EulerPositive) Supported(enc surface.Encoding) bool { return enc.StoresTriangles() }

// ExtraColumns returns 1.
func (EulerPositive) ExtraColumns() int { return 1 }

// Rows returns the scaled Euler characteristic row.
func (EulerPositive) Rows(tri *triangulation.Triangulation, enc surface.Encoding) ([]Row, error) {
	return eulerRows(tri, enc)
}

// Constrain forces the Euler column to be at least one.
func (EulerPositive) Constrain(c Constrainer, firstExtra int) { c.ConstrainPositive(firstExtra) }

// Verify checks that the Euler characteristic is positive.
func (EulerPositive) Verify(s *surface.NormalSurface) bool {
	chi, err := s.EulerChar()

	return err == nil && chi.Sign() > 0
}

// EulerZero requires Euler characteristic zero.
type EulerZero struct{}

// Name returns "euler-zero".
func (EulerZero) Name() string { return "euler-zero" }

// Supported requires triangle coordinates.
func (EulerZero) Supported(enc surface.Encoding) bool { return enc.StoresTriangles() }

// ExtraColumns returns 1.
func (EulerZero) ExtraColumns() int { return 1 }

// Rows returns the scaled Euler characteristic row.
func (EulerZero) Rows(tri *triangulation.Triangulation, enc surface.Encoding) ([]Row, error) {
	return eulerRows(tri, enc)
}

// Constrain forces the Euler column to zero.
func (EulerZero) Constrain(c Constrainer, firstExtra int) { c.ConstrainZero(firstExtra) }

// Verify checks that the Euler characteristic is zero.
func (EulerZero) Verify(s *surface.NormalSurface) bool {
	chi, err := s.EulerChar()

	return err == nil && chi.IsZero()
}

// eulerRows builds L times the Euler characteristic as a linear function of
// standard coordinates, L = lcm(2, every edge degree), so that each disc's
// share of vertices and edges is integral:
//
//	faces:    +L per disc
//	edges:    -L/2 per arc on an internal facet, -L per arc on a boundary facet
//	vertices: +L/deg(e) per crossing of an edge embedding of e
//
// An octagon has the arcs and crossings of the two quadrilaterals it is
// modelled by but only one face, hence OctAdjust = -L.
func eulerRows(tri *triangulation.Triangulation, enc surface.Encoding) ([]Row, error) {
	if !enc.StoresTriangles() {
		return nil, ErrUnsupportedEncoding
	}
	if tri.IsIdeal() {
		return nil, ErrIdealTriangulation
	}
	var l bigint.Int
	l.SetInt64(2)
	for _, e := range tri.Edges() {
		l.LCM(&l, bigint.NewInt(int64(e.Degree())))
	}
	var half bigint.Int
	_, _ = half.DivExact(&l, bigint.NewInt(2)) // l is even

	perEdge := make([]bigint.Int, tri.CountEdges())
	for i, e := range tri.Edges() {
		_, _ = perEdge[i].DivExact(&l, bigint.NewInt(int64(e.Degree()))) // degree divides l
	}
	facet := func(t, f int) *bigint.Int {
		if tri.Adjacent(t, f) < 0 {
			return &l
		}

		return &half
	}
	vertex := func(t, a, b int) *bigint.Int {
		return &perEdge[tri.EdgeIndex(t, triangulation.EdgeNumber[a][b])]
	}

	row := Row{Coeffs: make([]bigint.Int, baseColumns(tri, enc))}
	for t := 0; t < tri.Size(); t++ {
		for v := 0; v < 4; v++ {
			c := &row.Coeffs[7*t+v]
			c.Set(&l)
			for w := 0; w < 4; w++ {
				if w != v {
					c.Sub(c, facet(t, w))
					c.Add(c, vertex(t, v, w))
				}
			}
		}
		for k := 0; k < 3; k++ {
			c := &row.Coeffs[7*t+4+k]
			c.Set(&l)
			for f := 0; f < 4; f++ {
				c.Sub(c, facet(t, f))
			}
			for a := 0; a < 4; a++ {
				for b := a + 1; b < 4; b++ {
					if surface.QuadSeparating[a][b] != k {
						c.Add(c, vertex(t, a, b))
					}
				}
			}
		}
	}
	row.OctAdjust.Neg(&l)

	return []Row{row}, nil
}
