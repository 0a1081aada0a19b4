// SPDX-License-Identifier: MIT

package tableau

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/regina/bigint"
	"github.com/katalvlaran/regina/constraint"
	"github.com/katalvlaran/regina/matrix"
	"github.com/katalvlaran/regina/surface"
	"github.com/katalvlaran/regina/triangulation"
)

// Coord identifies what a tableau column stands for.
type Coord struct {
	Tet   int // tetrahedron, -1 for extra and scale columns
	Local int // offset inside the tetrahedron's block (e.g. 4+k for quad k in standard layout)
	Extra int // extra-constraint index, -1 otherwise
	Scale bool
}

// Initial is the read-only starting system of a traversal.
type Initial struct {
	tri    *triangulation.Triangulation
	enc    surface.Encoding // as requested, possibly with octagons
	layout surface.Encoding // enc without octagons: the tableau layout
	lp     constraint.LP

	m      *matrix.Dense // permuted columns
	perm   []int         // perm[col] = original column
	inv    []int         // inv[orig] = permuted column
	order  []int         // order[block] = tetrahedron
	block  []int         // block[tet] = block
	base   int           // columns before the extras
	extras []constraint.Row
	rank   int
}

// NewInitial builds the starting system for tri in enc with the extra rows
// of lp. It fails with ErrUnsupported when lp cannot work in enc, or with
// the policy's own error when it rejects tri.
func NewInitial(tri *triangulation.Triangulation, enc surface.Encoding, lp constraint.LP, opts ...Option) (*Initial, error) {
	if lp == nil {
		lp = constraint.None{}
	}
	if !lp.Supported(enc) {
		return nil, ErrUnsupported
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	in := &Initial{tri: tri, enc: enc, layout: enc.WithoutOctagons(), lp: lp}
	n := tri.Size()
	in.base = in.layout.Columns(n)

	var (
		eq  *matrix.Dense
		err error
	)
	if enc.StoresAngles() {
		eq = surface.AngleEquations(tri)
	} else if eq, err = surface.MatchingEquations(tri, in.layout); err != nil {
		return nil, err
	}
	if in.extras, err = lp.Rows(tri, enc); err != nil {
		return nil, err
	}
	if len(in.extras) != lp.ExtraColumns() {
		fail("policy row count disagrees with ExtraColumns")
	}

	in.order = blockOrder(tri, o.Optimise)
	in.block = make([]int, n)
	for b, t := range in.order {
		in.block[t] = b
	}
	in.buildPermutation()
	in.buildMatrix(eq)
	in.rank = in.m.Rank()

	return in, nil
}

// blockOrder returns tetrahedra in block order: identity, or breadth-first
// over the facet-pairing graph, component by component.
func blockOrder(tri *triangulation.Triangulation, optimise bool) []int {
	n := tri.Size()
	order := make([]int, 0, n)
	if !optimise {
		for t := 0; t < n; t++ {
			order = append(order, t)
		}

		return order
	}
	g := tri.FacetPairing().Graph()
	seen := make([]bool, n)
	for s := 0; s < n; s++ {
		if seen[s] {
			continue
		}
		bfs, _ := g.BFSOrder(s) // s is in range
		for _, t := range bfs {
			seen[t] = true
			order = append(order, t)
		}
	}

	return order
}

// buildPermutation lays out columns as: three quadrilateral (or angle)
// columns per block, then four triangle columns per block, then extras,
// then the angle scale column.
func (in *Initial) buildPermutation() {
	n := in.tri.Size()
	total := in.base + len(in.extras)
	in.perm = make([]int, 0, total)
	blk := in.layout.BlockSize()
	qoff := in.layout.QuadOffset()
	for _, t := range in.order {
		for k := 0; k < 3; k++ {
			in.perm = append(in.perm, blk*t+qoff+k)
		}
	}
	if in.layout.StoresTriangles() {
		for _, t := range in.order {
			for v := 0; v < 4; v++ {
				in.perm = append(in.perm, blk*t+v)
			}
		}
	}
	for j := range in.extras {
		in.perm = append(in.perm, in.base+j)
	}
	if in.enc.StoresAngles() {
		in.perm = append(in.perm, 3*n)
	}
	in.inv = make([]int, total)
	for c, o := range in.perm {
		in.inv[o] = c
	}
}

// buildMatrix packs the equations and extra rows into permuted columns.
// Extra row j reads Coeffs . x - e_j = 0.
func (in *Initial) buildMatrix(eq *matrix.Dense) {
	rows := eq.Rows() + len(in.extras)
	cols := len(in.perm)
	m, _ := matrix.NewDense(rows, cols) // dimensions are non-negative
	for i := 0; i < eq.Rows(); i++ {
		row, _ := eq.Row(i) // in range
		for j := range row {
			if !row[j].IsZero() {
				_ = m.Set(i, in.inv[j], &row[j])
			}
		}
	}
	for j, x := range in.extras {
		r := eq.Rows() + j
		for c := range x.Coeffs {
			if !x.Coeffs[c].IsZero() {
				_ = m.Set(r, in.inv[c], &x.Coeffs[c])
			}
		}
		_ = m.SetInt64(r, in.inv[in.base+j], -1)
	}
	in.m = m
}

// Triangulation returns the triangulation.
func (in *Initial) Triangulation() *triangulation.Triangulation { return in.tri }

// Encoding returns the requested encoding.
func (in *Initial) Encoding() surface.Encoding { return in.enc }

// Layout returns the tableau layout: the encoding without octagons.
func (in *Initial) Layout() surface.Encoding { return in.layout }

// LP returns the constraint policy.
func (in *Initial) LP() constraint.LP { return in.lp }

// Columns returns the number of columns, extras included.
func (in *Initial) Columns() int { return len(in.perm) }

// Rows returns the number of rows, extras included.
func (in *Initial) Rows() int { return in.m.Rows() }

// Rank returns the rank of the system.
func (in *Initial) Rank() int { return in.rank }

// BaseColumns returns the number of coordinate columns, without extras.
func (in *Initial) BaseColumns() int { return in.base }

// ExtraColumns returns the number of policy columns.
func (in *Initial) ExtraColumns() int { return len(in.extras) }

// FirstExtra returns the permuted index of the first policy column.
func (in *Initial) FirstExtra() int {
	if in.enc.StoresAngles() {
		return in.base - 1
	}

	return in.base
}

// ScaleColumn returns the permuted index of the angle scale column, or -1.
func (in *Initial) ScaleColumn() int {
	if !in.enc.StoresAngles() {
		return -1
	}

	return len(in.perm) - 1
}

// Original returns the original column behind permuted column col.
func (in *Initial) Original(col int) int { return in.perm[col] }

// Permuted returns the permuted column of original column orig.
func (in *Initial) Permuted(orig int) int { return in.inv[orig] }

// Tet returns the tetrahedron of block b.
func (in *Initial) Tet(b int) int { return in.order[b] }

// Block returns the block of tetrahedron t.
func (in *Initial) Block(t int) int { return in.block[t] }

// QuadColumn returns the permuted column of quadrilateral (or angle) k in
// block b.
func (in *Initial) QuadColumn(b, k int) int { return 3*b + k }

// TriangleColumn returns the permuted column of the triangle at vertex v in
// block b. The layout must store triangles.
func (in *Initial) TriangleColumn(b, v int) int { return 3*in.tri.Size() + 4*b + v }

// ColumnCoord describes permuted column col.
func (in *Initial) ColumnCoord(col int) Coord {
	o := in.perm[col]
	switch {
	case in.enc.StoresAngles() && col == len(in.perm)-1:
		return Coord{Tet: -1, Local: -1, Extra: -1, Scale: true}
	case o >= in.base:
		return Coord{Tet: -1, Local: -1, Extra: o - in.base}
	}
	blk := in.layout.BlockSize()

	return Coord{Tet: o / blk, Local: o % blk, Extra: -1}
}

// Entry returns entry (row, col) of the permuted matrix.
func (in *Initial) Entry(row, col int) bigint.Int {
	v, err := in.m.At(row, col)
	if err != nil {
		fail("entry out of range")
	}

	return v
}

// OctAdjust returns the octagon adjustment of extra column j.
func (in *Initial) OctAdjust(j int) *bigint.Int { return &in.extras[j].OctAdjust }

// Matrix returns a copy of the permuted matrix.
func (in *Initial) Matrix() *matrix.Dense { return in.m.Clone() }

// Dense returns a floating-point copy of the permuted matrix, or nil when a
// dimension is zero.
func (in *Initial) Dense() *mat.Dense { return in.m.Float() }
