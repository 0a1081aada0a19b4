// SPDX-License-Identifier: MIT

package tableau

import (
	"github.com/katalvlaran/regina/bigint"
)

// Data is a working tableau over an Initial.
//
// Row i reads  sum_k T[i][k] y_k = rhs[i]  where y_k = x_k - 1 for positive
// columns and y_k = x_k otherwise. The basic column of a row holds den in
// that row and zero elsewhere, so the current solution is y_b = rhs/den
// for basic columns and zero for the rest.
//
// A row whose basic column has been constrained to zero and cannot be
// pivoted elsewhere is dormant: its active entries and rhs are all zero and
// it keeps its (inactive) basic column.
type Data struct {
	init *Initial
	rows int
	cols int

	t   []bigint.Int // row-major rows x cols
	rhs []bigint.Int
	den bigint.Int

	basis    []int // basis[row] = column, -1 for a zero row
	basisRow []int // basisRow[col] = row, -1 for nonbasic columns
	active   []bool
	positive []bool

	octA, octB int // merged octagon columns, -1 when none

	feasible bool
	pivots   int
}

// Reserve attaches d to init and allocates storage without filling it.
func (d *Data) Reserve(init *Initial) {
	d.init = init
	d.rows, d.cols = init.Rows(), init.Columns()
	d.t = make([]bigint.Int, d.rows*d.cols)
	d.rhs = make([]bigint.Int, d.rows)
	d.basis = make([]int, d.rows)
	d.basisRow = make([]int, d.cols)
	d.active = make([]bool, d.cols)
	d.positive = make([]bool, d.cols)
	d.octA, d.octB = -1, -1
}

// NewData returns a reserved tableau for init.
func NewData(init *Initial) *Data {
	d := new(Data)
	d.Reserve(init)

	return d
}

// Initial returns the system d is attached to.
func (d *Data) Initial() *Initial { return d.init }

func (d *Data) at(i, k int) *bigint.Int { return &d.t[i*d.cols+k] }

func (d *Data) checkCol(c int) {
	if c < 0 || c >= d.cols {
		fail("column out of range")
	}
}

// InitStart fills d from its Initial: every column active, a basis found by
// fraction-free row reduction, then the policy's constraints on the extra
// columns. The starting point is the zero vector, which is feasible.
func (d *Data) InitStart() {
	if d.init == nil {
		fail("InitStart before Reserve")
	}
	for c := 0; c < d.cols; c++ {
		d.active[c] = true
		d.positive[c] = false
	}
	d.octA, d.octB = -1, -1
	d.feasible = true
	d.pivots = 0
	d.load()
	d.eliminate(true)
	if e := d.init.ExtraColumns(); e > 0 {
		d.init.LP().Constrain(d, d.init.FirstExtra())
	}
}

// InitClone makes d an independent copy of parent. Both must be reserved
// against the same Initial.
func (d *Data) InitClone(parent *Data) {
	if d.init != parent.init {
		fail("InitClone across different systems")
	}
	copy(d.t, parent.t)
	copy(d.rhs, parent.rhs)
	d.den.Set(&parent.den)
	copy(d.basis, parent.basis)
	copy(d.basisRow, parent.basisRow)
	copy(d.active, parent.active)
	copy(d.positive, parent.positive)
	d.octA, d.octB = parent.octA, parent.octB
	d.feasible = parent.feasible
	d.pivots = parent.pivots
}

// load copies the initial matrix into d, with the octagon merge applied,
// and resets the basis, rhs and denominator.
func (d *Data) load() {
	for i := 0; i < d.rows; i++ {
		for k := 0; k < d.cols; k++ {
			d.t[i*d.cols+k] = d.init.Entry(i, k)
		}
		d.rhs[i].SetInt64(0)
		d.basis[i] = -1
	}
	for k := range d.basisRow {
		d.basisRow[k] = -1
	}
	d.den.SetInt64(1)
	if d.octA >= 0 {
		d.mergeColumns(d.octA, d.octB)
	}
}

// eliminate pivots every row without a basis on its first nonbasic column
// with a nonzero entry, restricted to active (or to inactive) columns.
func (d *Data) eliminate(activeCols bool) {
	for r := 0; r < d.rows; r++ {
		if d.basis[r] >= 0 {
			continue
		}
		for k := 0; k < d.cols; k++ {
			if d.active[k] == activeCols && d.basisRow[k] < 0 && !d.at(r, k).IsZero() {
				d.pivot(r, k)

				break
			}
		}
	}
}

// pivot makes column j basic in row r.
//
// Complexity: O(rows * cols) big-integer operations.
func (d *Data) pivot(r, j int) {
	p := *d.at(r, j)
	if p.IsZero() {
		fail("pivot on a zero entry")
	}
	var x, y bigint.Int
	for i := 0; i < d.rows; i++ {
		if i == r {
			continue
		}
		f := *d.at(i, j)
		if f.IsZero() && p.Equal(&d.den) {
			continue
		}
		row := d.t[i*d.cols : (i+1)*d.cols]
		prow := d.t[r*d.cols : (r+1)*d.cols]
		for k := range row {
			x.Mul(&p, &row[k])
			if !f.IsZero() {
				y.Mul(&f, &prow[k])
				x.Sub(&x, &y)
			}
			if _, err := row[k].DivExact(&x, &d.den); err != nil {
				fail(err.Error())
			}
		}
		x.Mul(&p, &d.rhs[i])
		if !f.IsZero() {
			y.Mul(&f, &d.rhs[r])
			x.Sub(&x, &y)
		}
		_, _ = d.rhs[i].DivExact(&x, &d.den) // den > 0
	}
	if old := d.basis[r]; old >= 0 {
		d.basisRow[old] = -1
	}
	d.basis[r] = j
	d.basisRow[j] = r
	d.den.Set(&p)
	if p.Sign() < 0 {
		for k := range d.t {
			d.t[k].Neg(&d.t[k])
		}
		for i := range d.rhs {
			d.rhs[i].Neg(&d.rhs[i])
		}
		d.den.Neg(&d.den)
	}
	d.pivots++
}

// makeFeasible restores rhs >= 0 on every live row by least-index
// criss-cross pivots: the infeasible row with the smallest basic column
// leaves, and the smallest active column with a negative entry enters.
func (d *Data) makeFeasible() {
	for d.feasible {
		r, best := -1, d.cols
		for i, b := range d.basis {
			if b >= 0 && b < best && d.active[b] && d.rhs[i].Sign() < 0 {
				r, best = i, b
			}
		}
		if r < 0 {
			return
		}
		j := -1
		for k := 0; k < d.cols; k++ {
			if d.active[k] && d.basisRow[k] < 0 && d.at(r, k).Sign() < 0 {
				j = k

				break
			}
		}
		if j < 0 {
			d.feasible = false

			return
		}
		d.pivot(r, j)
	}
}

// repair moves the basis of row r onto an active column. It reports false
// when the row has no active nonzero entry; the row is then dormant, or
// the system infeasible if its rhs is nonzero.
func (d *Data) repair(r int) bool {
	for k := 0; k < d.cols; k++ {
		if d.active[k] && d.basisRow[k] < 0 && !d.at(r, k).IsZero() {
			d.pivot(r, k)

			return true
		}
	}
	if !d.rhs[r].IsZero() {
		d.feasible = false
	}

	return false
}

// ConstrainZero adds x_c = 0.
func (d *Data) ConstrainZero(c int) {
	d.checkCol(c)
	if !d.feasible || !d.active[c] {
		return
	}
	if d.positive[c] {
		d.feasible = false

		return
	}
	d.active[c] = false
	if r := d.basisRow[c]; r >= 0 {
		d.repair(r)
	}
	d.makeFeasible()
}

// ConstrainPositive adds x_c >= 1. Repeating it for the same column has no
// further effect.
func (d *Data) ConstrainPositive(c int) {
	d.checkCol(c)
	if !d.feasible || d.positive[c] {
		return
	}
	if !d.active[c] {
		d.feasible = false

		return
	}
	d.positive[c] = true
	d.shift(c)
	d.makeFeasible()
}

// shift substitutes x_c = y_c + 1.
func (d *Data) shift(c int) {
	for i := 0; i < d.rows; i++ {
		d.rhs[i].Sub(&d.rhs[i], d.at(i, c))
	}
}

// ConstrainOct adds x_a = x_b >= 1 and replaces the two quadrilateral
// columns by one octagon column held in a: column b is folded into a and
// switched off, and a is adjusted by each extra row's octagon term. A
// tableau holds at most one octagon.
func (d *Data) ConstrainOct(a, b int) {
	d.checkCol(a)
	d.checkCol(b)
	if a == b {
		fail("octagon over a single column")
	}
	if d.octA >= 0 {
		fail("second octagon")
	}
	if !d.feasible {
		return
	}
	if !d.active[a] || !d.active[b] {
		d.feasible = false

		return
	}
	if d.positive[a] || d.positive[b] {
		fail("octagon over a positive column")
	}
	d.mergeColumns(a, b)
	d.octA, d.octB = a, b
	d.active[b] = false

	if r := d.basisRow[a]; r >= 0 {
		d.basisRow[a] = -1
		d.basis[r] = -1
		if !d.repair(r) {
			if !d.feasible {
				return
			}
			d.rebuild()
		}
	}
	if r := d.basisRow[b]; r >= 0 && d.feasible {
		d.repair(r)
	}
	if !d.feasible {
		return
	}
	d.makeFeasible()
	d.ConstrainPositive(a)
}

// mergeColumns applies col a += col b - sum_e adj_e * col e over the extra
// columns e.
func (d *Data) mergeColumns(a, b int) {
	first := d.init.FirstExtra()
	var x bigint.Int
	for i := 0; i < d.rows; i++ {
		ca := d.at(i, a)
		ca.Add(ca, d.at(i, b))
		for j := 0; j < d.init.ExtraColumns(); j++ {
			x.Mul(d.init.OctAdjust(j), d.at(i, first+j))
			ca.Sub(ca, &x)
		}
	}
}

// rebuild recomputes d from its Initial under the current constraints:
// active columns are eliminated first, then rows left without one take an
// inactive basic column, then positive columns are shifted.
func (d *Data) rebuild() {
	d.load()
	d.eliminate(true)
	d.eliminate(false)
	for c := 0; c < d.cols; c++ {
		if d.positive[c] {
			d.shift(c)
		}
	}
	for i, b := range d.basis {
		if b >= 0 && !d.active[b] && !d.rhs[i].IsZero() {
			d.feasible = false

			return
		}
	}
	d.makeFeasible()
}

// Feasible reports whether the constraints so far admit a solution.
func (d *Data) Feasible() bool { return d.feasible }

// IsZero reports whether column c has been constrained to zero (or folded
// into an octagon).
func (d *Data) IsZero(c int) bool {
	d.checkCol(c)

	return !d.active[c]
}

// IsPositive reports whether column c has been constrained positive.
func (d *Data) IsPositive(c int) bool {
	d.checkCol(c)

	return d.positive[c]
}

// Octagon returns the merged columns, if any.
func (d *Data) Octagon() (a, b int, ok bool) { return d.octA, d.octB, d.octA >= 0 }

// Pivots returns the number of pivots performed since InitStart, clones
// included.
func (d *Data) Pivots() int { return d.pivots }

// Rank returns the number of rows with a basic column.
func (d *Data) Rank() int {
	n := 0
	for _, b := range d.basis {
		if b >= 0 {
			n++
		}
	}

	return n
}

// DeadRows returns the number of rows that carry no constraint on the
// active columns: zero rows and dormant rows.
func (d *Data) DeadRows() int {
	n := 0
	for _, b := range d.basis {
		if b < 0 || !d.active[b] {
			n++
		}
	}

	return n
}

// ExtractSolution returns the current solution in permuted column order,
// scaled to primitive integers. Both columns of an octagon carry the
// octagon count. It panics on an infeasible tableau.
func (d *Data) ExtractSolution() []bigint.Int {
	if !d.feasible {
		fail("extract from an infeasible tableau")
	}
	out := make([]bigint.Int, d.cols)
	for c := 0; c < d.cols; c++ {
		if !d.active[c] {
			continue
		}
		if d.positive[c] {
			out[c].Set(&d.den)
		}
		if r := d.basisRow[c]; r >= 0 {
			out[c].Add(&out[c], &d.rhs[r])
		}
	}
	if d.octA >= 0 {
		out[d.octB].Set(&out[d.octA])
	}
	bigint.DivByGCD(out)

	return out
}
