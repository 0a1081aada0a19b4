// SPDX-License-Identifier: MIT

package surface

import (
	"github.com/katalvlaran/regina/matrix"
	"github.com/katalvlaran/regina/triangulation"
)

// rowBuilder accumulates sparse rows before they are packed into a matrix.
type rowBuilder struct {
	cols int
	rows []map[int]int64
}

func (b *rowBuilder) newRow() map[int]int64 {
	r := make(map[int]int64)
	b.rows = append(b.rows, r)

	return r
}

func (b *rowBuilder) dense() *matrix.Dense {
	m, _ := matrix.NewDense(len(b.rows), b.cols) // dimensions are non-negative
	for i, r := range b.rows {
		for j, v := range r {
			if v != 0 {
				_ = m.SetInt64(i, j, v)
			}
		}
	}

	return m
}

// addArc adds sign times the arc of tet near vertex v in facet f: the
// triangle at v, the quadrilateral pairing v with f and, when present, the
// octagons other than that quadrilateral's type.
func addArc(row map[int]int64, enc Encoding, tet, f, v int, sign int64) {
	base := tet * enc.BlockSize()
	q := QuadSeparating[v][f]
	if enc.StoresTriangles() {
		row[base+v] += sign
	}
	row[base+enc.QuadOffset()+q] += sign
	if o := enc.OctOffset(); o >= 0 {
		for k := 0; k < 3; k++ {
			if octInArc(k, v, f) {
				row[base+o+k] += sign
			}
		}
	}
}

// MatchingEquations returns the matching equations of tri in enc: every
// admissible vector x satisfies M x = 0.
//
// Triangle-storing encodings get three rows per glued facet pair, equating
// arcs across the gluing. Quadrilateral encodings get one row per internal
// edge, from the quadrilateral walk around that edge.
func MatchingEquations(tri *triangulation.Triangulation, enc Encoding) (*matrix.Dense, error) {
	if enc.StoresAngles() {
		return nil, ErrWrongMode
	}
	b := &rowBuilder{cols: enc.Columns(tri.Size())}
	if enc.StoresTriangles() {
		for t := 0; t < tri.Size(); t++ {
			for f := 0; f < 4; f++ {
				u := tri.Adjacent(t, f)
				g := tri.Gluing(t, f)
				if u < 0 || u < t || (u == t && g.At(f) < f) {
					continue
				}
				for v := 0; v < 4; v++ {
					if v == f {
						continue
					}
					row := b.newRow()
					addArc(row, enc, t, f, v, 1)
					addArc(row, enc, u, g.At(f), g.At(v), -1)
				}
			}
		}

		return b.dense(), nil
	}

	for _, e := range tri.Edges() {
		if e.Boundary {
			continue
		}
		row := b.newRow()
		for _, emb := range e.Embeddings {
			a, c, d := int(emb.Vertices[0]), int(emb.Vertices[2]), int(emb.Vertices[3])
			base := emb.Tet * enc.BlockSize()
			plus, minus := QuadSeparating[a][d], QuadSeparating[a][c]
			row[base+plus]++
			row[base+minus]--
			if o := enc.OctOffset(); o >= 0 {
				// An octagon of type k acts as the two quadrilaterals other than k.
				for k := 0; k < 3; k++ {
					if k != plus {
						row[base+o+k]++
					}
					if k != minus {
						row[base+o+k]--
					}
				}
			}
		}
	}

	return b.dense(), nil
}

// AngleEquations returns the angle equations of tri: per tetrahedron the
// three angles sum to the scale column, and around each internal edge the
// angles sum to twice the scale column.
func AngleEquations(tri *triangulation.Triangulation) *matrix.Dense {
	n := tri.Size()
	scale := 3 * n
	b := &rowBuilder{cols: 3*n + 1}
	for t := 0; t < n; t++ {
		row := b.newRow()
		for k := 0; k < 3; k++ {
			row[3*t+k] = 1
		}
		row[scale] = -1
	}
	for _, e := range tri.Edges() {
		if e.Boundary {
			continue
		}
		row := b.newRow()
		for _, emb := range e.Embeddings {
			row[3*emb.Tet+QuadSeparating[emb.Vertices[0]][emb.Vertices[1]]]++
		}
		row[scale] -= 2
	}

	return b.dense()
}
