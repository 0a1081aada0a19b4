// SPDX-License-Identifier: MIT

package surface

import (
	"strings"

	"github.com/katalvlaran/regina/bigint"
	"github.com/katalvlaran/regina/triangulation"
)

// NormalSurface is an immutable normal (or almost normal) surface written
// in a fixed encoding, coordinates in block order.
type NormalSurface struct {
	tri    *triangulation.Triangulation
	enc    Encoding
	coords []bigint.Int
}

// NewNormalSurface validates and wraps a coordinate vector. The vector is
// copied.
func NewNormalSurface(tri *triangulation.Triangulation, enc Encoding, coords []bigint.Int) (*NormalSurface, error) {
	if enc.StoresAngles() {
		return nil, ErrWrongMode
	}
	if len(coords) != enc.Columns(tri.Size()) {
		return nil, ErrLength
	}
	for i := range coords {
		if coords[i].Sign() < 0 {
			return nil, ErrNegative
		}
	}
	c := make([]bigint.Int, len(coords))
	copy(c, coords)

	return &NormalSurface{tri: tri, enc: enc, coords: c}, nil
}

// Triangulation returns the underlying triangulation.
func (s *NormalSurface) Triangulation() *triangulation.Triangulation { return s.tri }

// Encoding returns the encoding of the stored vector.
func (s *NormalSurface) Encoding() Encoding { return s.enc }

// Vector returns a copy of the raw coordinates.
func (s *NormalSurface) Vector() []bigint.Int {
	c := make([]bigint.Int, len(s.coords))
	copy(c, s.coords)

	return c
}

// Triangles returns the number of triangles at vertex v of tet. For
// quadrilateral encodings the triangles are those of the compact
// representative (see Standard); a non-compact surface reports zero.
func (s *NormalSurface) Triangles(tet, v int) bigint.Int {
	if s.enc.StoresTriangles() {
		return s.coords[tet*s.enc.BlockSize()+v]
	}
	std, err := s.Standard()
	if err != nil {
		return bigint.Int{}
	}

	return std.coords[tet*std.enc.BlockSize()+v]
}

// Quads returns the number of quadrilaterals of type q in tet.
func (s *NormalSurface) Quads(tet, q int) bigint.Int {
	return s.coords[tet*s.enc.BlockSize()+s.enc.QuadOffset()+q]
}

// Octs returns the number of octagons of type k in tet, zero when the
// encoding has none.
func (s *NormalSurface) Octs(tet, k int) bigint.Int {
	if o := s.enc.OctOffset(); o >= 0 {
		return s.coords[tet*s.enc.BlockSize()+o+k]
	}

	return bigint.Int{}
}

// arc returns the arc count near v in facet f of tet.
func (s *NormalSurface) arc(tet, f, v int) bigint.Int {
	var a bigint.Int
	if s.enc.StoresTriangles() {
		tv := s.Triangles(tet, v)
		a.Add(&a, &tv)
	}
	q := s.Quads(tet, QuadSeparating[v][f])
	a.Add(&a, &q)
	for k := 0; k < 3; k++ {
		if octInArc(k, v, f) {
			o := s.Octs(tet, k)
			a.Add(&a, &o)
		}
	}

	return a
}

// Standard returns the surface in the triangle-storing encoding with the
// same octagon support: itself when triangles are stored, otherwise the
// compact surface with the given quadrilaterals and the fewest triangles.
// It fails with ErrNonCompact for spun-normal surfaces.
func (s *NormalSurface) Standard() (*NormalSurface, error) {
	if s.enc.StoresTriangles() {
		return s, nil
	}
	target := Standard
	if s.enc.StoresOctagons() {
		target = AlmostNormal
	}
	enc := MustEncoding(target)
	n := s.tri.Size()
	out := make([]bigint.Int, enc.Columns(n))
	for t := 0; t < n; t++ {
		for q := 0; q < 3; q++ {
			out[t*enc.BlockSize()+4+q] = s.Quads(t, q)
			if enc.StoresOctagons() {
				out[t*enc.BlockSize()+7+q] = s.Octs(t, q)
			}
		}
	}

	// Triangles on each vertex link are fixed up to one additive constant:
	// crossing facet f from (t, v) to (u, g v) changes the count by the
	// difference of the non-triangle arcs on either side.
	for _, vtx := range s.tri.Vertices() {
		rel := make(map[int]*bigint.Int, len(vtx.Embeddings))
		root := vtx.Embeddings[0]
		rel[root.Tet*4+root.Vertex] = new(bigint.Int)
		queue := []triangulation.VertexEmbedding{root}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			base := rel[cur.Tet*4+cur.Vertex]
			for f := 0; f < 4; f++ {
				u := s.tri.Adjacent(cur.Tet, f)
				if f == cur.Vertex || u < 0 {
					continue
				}
				g := s.tri.Gluing(cur.Tet, f)
				next := triangulation.VertexEmbedding{Tet: u, Vertex: g.At(cur.Vertex)}
				here := s.arc(cur.Tet, f, cur.Vertex)
				there := s.arc(u, g.At(f), next.Vertex)
				var val bigint.Int
				val.Add(base, &here)
				val.Sub(&val, &there)
				if prev, ok := rel[next.Tet*4+next.Vertex]; ok {
					if !prev.Equal(&val) {
						return nil, ErrNonCompact
					}
					continue
				}
				rel[next.Tet*4+next.Vertex] = &val
				queue = append(queue, next)
			}
		}
		var low bigint.Int
		first := true
		for _, v := range rel {
			if first || v.Cmp(&low) < 0 {
				low.Set(v)
				first = false
			}
		}
		for key, v := range rel {
			var shifted bigint.Int
			shifted.Sub(v, &low)
			out[(key/4)*enc.BlockSize()+key%4] = shifted
		}
	}

	return &NormalSurface{tri: s.tri, enc: enc, coords: out}, nil
}

// IsCompact reports whether the surface has finitely many discs, i.e. it
// has a triangle-storing representative.
func (s *NormalSurface) IsCompact() bool {
	_, err := s.Standard()

	return err == nil
}

// IsZero reports whether every coordinate is zero.
func (s *NormalSurface) IsZero() bool {
	for i := range s.coords {
		if !s.coords[i].IsZero() {
			return false
		}
	}

	return true
}

// IsVertexLinking reports whether the surface is a non-empty union of
// vertex links: it has no quadrilaterals or octagons.
func (s *NormalSurface) IsVertexLinking() bool {
	if s.IsZero() {
		return false
	}
	for t := 0; t < s.tri.Size(); t++ {
		for q := 0; q < 3; q++ {
			qq, oo := s.Quads(t, q), s.Octs(t, q)
			if !qq.IsZero() || !oo.IsZero() {
				return false
			}
		}
	}

	return true
}

// HasOctagon reports whether some octagon coordinate is positive.
func (s *NormalSurface) HasOctagon() bool {
	for t := 0; t < s.tri.Size(); t++ {
		for k := 0; k < 3; k++ {
			if o := s.Octs(t, k); !o.IsZero() {
				return true
			}
		}
	}

	return false
}

// HasRealBoundary reports whether some disc meets a boundary facet.
func (s *NormalSurface) HasRealBoundary() bool {
	std, err := s.Standard()
	if err != nil {
		return false
	}
	for t := 0; t < s.tri.Size(); t++ {
		for f := 0; f < 4; f++ {
			if s.tri.Adjacent(t, f) >= 0 {
				continue
			}
			for v := 0; v < 4; v++ {
				if v == f {
					continue
				}
				if a := std.arc(t, f, v); !a.IsZero() {
					return true
				}
			}
		}
	}

	return false
}

// EulerChar returns V - E + F of the compact surface. Quadrilateral
// encodings are first converted with Standard; spun-normal surfaces fail
// with ErrNonCompact.
func (s *NormalSurface) EulerChar() (bigint.Int, error) {
	std, err := s.Standard()
	if err != nil {
		return bigint.Int{}, err
	}
	var chi, sides, bnd bigint.Int
	for _, e := range s.tri.Edges() {
		// Points on an edge class: discs crossing any one of its embeddings.
		emb := e.Embeddings[0]
		pts := std.edgeWeight(emb.Tet, int(emb.Vertices[0]), int(emb.Vertices[1]))
		chi.Add(&chi, &pts)
	}
	for t := 0; t < s.tri.Size(); t++ {
		for v := 0; v < 4; v++ {
			c := std.Triangles(t, v)
			chi.Add(&chi, &c)
			sides.AddMul(&c, bigint.NewInt(3))
		}
		for k := 0; k < 3; k++ {
			q, o := std.Quads(t, k), std.Octs(t, k)
			chi.Add(&chi, &q)
			chi.Add(&chi, &o)
			sides.AddMul(&q, bigint.NewInt(4))
			sides.AddMul(&o, bigint.NewInt(8))
		}
		for f := 0; f < 4; f++ {
			if s.tri.Adjacent(t, f) >= 0 {
				continue
			}
			for v := 0; v < 4; v++ {
				if v != f {
					a := std.arc(t, f, v)
					bnd.Add(&bnd, &a)
				}
			}
		}
	}
	// Every arc side on an internal facet is shared by two discs.
	var edges bigint.Int
	edges.Add(&sides, &bnd)
	if _, err := edges.DivExact(&edges, bigint.NewInt(2)); err != nil {
		return bigint.Int{}, err
	}
	chi.Sub(&chi, &edges)

	return chi, nil
}

// edgeWeight counts disc crossings of edge ab inside tet.
func (s *NormalSurface) edgeWeight(tet, a, b int) bigint.Int {
	var w bigint.Int
	ta, tb := s.Triangles(tet, a), s.Triangles(tet, b)
	w.Add(&ta, &tb)
	for k := 0; k < 3; k++ {
		if quadCrosses(k, a, b) {
			q := s.Quads(tet, k)
			w.Add(&w, &q)
		}
		o := s.Octs(tet, k)
		w.AddMul(&o, bigint.NewInt(int64(octCrossings(k, a, b))))
	}

	return w
}

// Equal reports exact equality of encoding and coordinates.
func (s *NormalSurface) Equal(o *NormalSurface) bool {
	if s.enc != o.enc || len(s.coords) != len(o.coords) {
		return false
	}
	for i := range s.coords {
		if !s.coords[i].Equal(&o.coords[i]) {
			return false
		}
	}

	return true
}

// String returns "<encoding> c0 c1 ...".
func (s *NormalSurface) String() string { return formatVector(s.enc.String(), s.coords) }

func formatVector(name string, v []bigint.Int) string {
	var b strings.Builder
	b.WriteString(name)
	for i := range v {
		b.WriteByte(' ')
		b.WriteString(v[i].String())
	}

	return b.String()
}
