// SPDX-License-Identifier: MIT

// Package matrix - Smith normal form over the integers.
//
// Implementation:
//   - Stage 1: move the smallest nonzero entry of the trailing block to the pivot.
//   - Stage 2: clear the pivot row and column by truncated division; any
//     remainder is smaller than the pivot and becomes the new pivot.
//   - Stage 3: if the pivot fails to divide some trailing entry, add that
//     row into the pivot row and repeat Stage 2.
//
// Each restart strictly decreases |pivot|, so the loop terminates.

package matrix

import "github.com/katalvlaran/regina/bigint"

// SmithNormalForm returns the positive invariant factors d1 | d2 | ... | dk
// of m, where k is the rank of m. The receiver is not modified.
func (m *Dense) SmithNormalForm() []bigint.Int {
	if m == nil {
		return nil
	}
	var (
		a       = m.Clone()
		factors []bigint.Int
		t       int
	)
	for t = 0; t < a.rows && t < a.cols; t++ {
		pi, pj, ok := a.minNonZero(t)
		if !ok {
			break // trailing block is zero
		}
		a.swapRows(t, pi)
		a.swapCols(t, pj)
		for {
			if !a.clearPivot(t) {
				pi, pj = a.minInCross(t)
				a.swapRows(t, pi)
				a.swapCols(t, pj)

				continue
			}
			i := a.nonDivisibleRow(t)
			if i < 0 {
				break
			}
			a.addRow(t, i)
		}
		var d bigint.Int
		d.Abs(&a.data[t*a.cols+t])
		factors = append(factors, d)
	}

	return factors
}

// Rank returns the rank of m over the rationals.
func (m *Dense) Rank() int { return len(m.SmithNormalForm()) }

// at is an unchecked accessor for internal loops.
func (m *Dense) at(i, j int) *bigint.Int { return &m.data[i*m.cols+j] }

// minNonZero finds the nonzero entry of smallest magnitude in the block
// rows >= t, cols >= t, scanning rows then columns.
func (m *Dense) minNonZero(t int) (int, int, bool) {
	var (
		bi, bj = -1, -1
		best   bigint.Int
		cur    bigint.Int
	)
	for i := t; i < m.rows; i++ {
		for j := t; j < m.cols; j++ {
			e := m.at(i, j)
			if e.IsZero() {
				continue
			}
			cur.Abs(e)
			if bi < 0 || cur.Cmp(&best) < 0 {
				bi, bj = i, j
				best.Set(&cur)
			}
		}
	}

	return bi, bj, bi >= 0
}

// minInCross finds the smallest nonzero entry in column t (rows >= t) or
// row t (cols >= t).
func (m *Dense) minInCross(t int) (int, int) {
	var (
		bi, bj = t, t
		best   bigint.Int
		cur    bigint.Int
		found  bool
	)
	consider := func(i, j int) {
		e := m.at(i, j)
		if e.IsZero() {
			return
		}
		cur.Abs(e)
		if !found || cur.Cmp(&best) < 0 {
			bi, bj, found = i, j, true
			best.Set(&cur)
		}
	}
	for i := t; i < m.rows; i++ {
		consider(i, t)
	}
	for j := t + 1; j < m.cols; j++ {
		consider(t, j)
	}

	return bi, bj
}

// clearPivot reduces column t below and row t right of the pivot by
// integer multiples of the pivot. It reports whether both became zero.
func (m *Dense) clearPivot(t int) bool {
	var (
		p     = *m.at(t, t)
		q     bigint.Int
		clean = true
	)
	for i := t + 1; i < m.rows; i++ {
		if m.at(i, t).IsZero() {
			continue
		}
		_, _ = q.Div(m.at(i, t), &p) // p != 0
		m.subRowMultiple(i, t, &q)
		if !m.at(i, t).IsZero() {
			clean = false
		}
	}
	for j := t + 1; j < m.cols; j++ {
		if m.at(t, j).IsZero() {
			continue
		}
		_, _ = q.Div(m.at(t, j), &p)
		m.subColMultiple(j, t, &q)
		if !m.at(t, j).IsZero() {
			clean = false
		}
	}

	return clean
}

// nonDivisibleRow returns a row i > t holding an entry (beyond column t)
// not divisible by the pivot, or -1.
func (m *Dense) nonDivisibleRow(t int) int {
	var (
		p = *m.at(t, t)
		r bigint.Int
	)
	for i := t + 1; i < m.rows; i++ {
		for j := t + 1; j < m.cols; j++ {
			if m.at(i, j).IsZero() {
				continue
			}
			_, _ = r.Mod(m.at(i, j), &p)
			if !r.IsZero() {
				return i
			}
		}
	}

	return -1
}

// subRowMultiple performs row[dst] -= q*row[src].
func (m *Dense) subRowMultiple(dst, src int, q *bigint.Int) {
	var prod bigint.Int
	for j := 0; j < m.cols; j++ {
		s := m.at(src, j)
		if s.IsZero() {
			continue
		}
		prod.Mul(q, s)
		d := m.at(dst, j)
		d.Sub(d, &prod)
	}
}

// subColMultiple performs col[dst] -= q*col[src].
func (m *Dense) subColMultiple(dst, src int, q *bigint.Int) {
	var prod bigint.Int
	for i := 0; i < m.rows; i++ {
		s := m.at(i, src)
		if s.IsZero() {
			continue
		}
		prod.Mul(q, s)
		d := m.at(i, dst)
		d.Sub(d, &prod)
	}
}

// addRow performs row[dst] += row[src].
func (m *Dense) addRow(dst, src int) {
	for j := 0; j < m.cols; j++ {
		d := m.at(dst, j)
		d.Add(d, m.at(src, j))
	}
}

// swapRows exchanges rows a and b.
func (m *Dense) swapRows(a, b int) {
	if a == b {
		return
	}
	for j := 0; j < m.cols; j++ {
		m.data[a*m.cols+j], m.data[b*m.cols+j] = m.data[b*m.cols+j], m.data[a*m.cols+j]
	}
}

// swapCols exchanges columns a and b.
func (m *Dense) swapCols(a, b int) {
	if a == b {
		return
	}
	for i := 0; i < m.rows; i++ {
		m.data[i*m.cols+a], m.data[i*m.cols+b] = m.data[i*m.cols+b], m.data[i*m.cols+a]
	}
}
