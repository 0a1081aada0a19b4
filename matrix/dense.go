// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Keep the explicit index formula i*cols + j in one place.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Offer Row as a read-only view for tableau construction hot loops.

package matrix

import (
	"strings"

	"github.com/katalvlaran/regina/bigint"
)

// NewDense returns a zero-filled rows x cols matrix.
// Either dimension may be zero; a negative dimension fails with ErrBadShape.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(ctxNew, ErrBadShape)
	}

	return &Dense{rows: rows, cols: cols, data: make([]bigint.Int, rows*cols)}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.cols }

// inRange reports whether (i, j) is a valid index.
func (m *Dense) inRange(i, j int) bool {
	return i >= 0 && i < m.rows && j >= 0 && j < m.cols
}

// At returns a copy of entry (i, j).
func (m *Dense) At(i, j int) (bigint.Int, error) {
	if m == nil {
		return bigint.Int{}, matrixErrorf(ctxAt, ErrNilMatrix)
	}
	if !m.inRange(i, j) {
		return bigint.Int{}, matrixErrorf(ctxAt, ErrOutOfRange)
	}

	return m.data[i*m.cols+j], nil
}

// Set stores v at (i, j).
func (m *Dense) Set(i, j int, v *bigint.Int) error {
	if m == nil {
		return matrixErrorf(ctxSet, ErrNilMatrix)
	}
	if !m.inRange(i, j) {
		return matrixErrorf(ctxSet, ErrOutOfRange)
	}
	m.data[i*m.cols+j].Set(v)

	return nil
}

// SetInt64 stores v at (i, j).
func (m *Dense) SetInt64(i, j int, v int64) error {
	return m.Set(i, j, bigint.NewInt(v))
}

// AddInt64 adds v to entry (i, j). Matching equations are accumulated this
// way because one edge may meet a tetrahedron more than once.
func (m *Dense) AddInt64(i, j int, v int64) error {
	if m == nil {
		return matrixErrorf(ctxAdd, ErrNilMatrix)
	}
	if !m.inRange(i, j) {
		return matrixErrorf(ctxAdd, ErrOutOfRange)
	}
	e := &m.data[i*m.cols+j]
	e.Add(e, bigint.NewInt(v))

	return nil
}

// Row returns a read-only view of row i. The slice aliases the matrix and
// stays valid until the matrix is modified; callers must not write to it.
func (m *Dense) Row(i int) ([]bigint.Int, error) {
	if m == nil {
		return nil, matrixErrorf(ctxRow, ErrNilMatrix)
	}
	if i < 0 || i >= m.rows {
		return nil, matrixErrorf(ctxRow, ErrOutOfRange)
	}

	return m.data[i*m.cols : (i+1)*m.cols : (i+1)*m.cols], nil
}

// Clone returns an independent copy of m.
func (m *Dense) Clone() *Dense {
	c := &Dense{rows: m.rows, cols: m.cols, data: make([]bigint.Int, len(m.data))}
	copy(c.data, m.data) // bigint.Int values are safe to copy

	return c
}

// IsZero reports whether every entry is zero.
func (m *Dense) IsZero() bool {
	for i := range m.data {
		if !m.data[i].IsZero() {
			return false
		}
	}

	return true
}

// MulVec returns m·x.
func (m *Dense) MulVec(x []bigint.Int) ([]bigint.Int, error) {
	if m == nil {
		return nil, matrixErrorf(ctxMulVec, ErrNilMatrix)
	}
	if len(x) != m.cols {
		return nil, matrixErrorf(ctxMulVec, ErrDimensionMismatch)
	}
	var (
		out = make([]bigint.Int, m.rows)
		i   int
		j   int
	)
	for i = 0; i < m.rows; i++ {
		row := m.data[i*m.cols : (i+1)*m.cols]
		for j = 0; j < m.cols; j++ {
			if row[j].IsZero() || x[j].IsZero() {
				continue // sparse rows dominate matching systems
			}
			out[i].AddMul(&row[j], &x[j])
		}
	}

	return out, nil
}

// String renders the matrix one bracketed row per line.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(m.data[i*m.cols+j].String())
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
