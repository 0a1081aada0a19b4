// SPDX-License-Identifier: MIT

package surface

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/regina/bigint"
	"github.com/katalvlaran/regina/matrix"
)

// Residual returns the Euclidean norm of M x computed in floating point,
// a cheap sanity check for large vectors before an exact verification.
// M must have len(x) columns.
func Residual(m *matrix.Dense, x []bigint.Int) float64 {
	a := m.Float()
	if a == nil || len(x) == 0 {
		return 0
	}
	v := mat.NewVecDense(len(x), nil)
	for i := range x {
		v.SetVec(i, x[i].Float64())
	}
	var r mat.VecDense
	r.MulVec(a, v)

	return mat.Norm(&r, 2)
}

// satisfies reports whether M x = 0 exactly.
func satisfies(m *matrix.Dense, x []bigint.Int) bool {
	y, err := m.MulVec(x)
	if err != nil {
		return false
	}
	for i := range y {
		if !y[i].IsZero() {
			return false
		}
	}

	return true
}

// Verify reports whether the surface satisfies its matching equations
// exactly.
func (s *NormalSurface) Verify() bool {
	m, err := MatchingEquations(s.tri, s.enc)
	if err != nil {
		return false
	}

	return satisfies(m, s.coords)
}

// Verify reports whether the structure satisfies the angle equations
// exactly and has a positive scale.
func (a *AngleStructure) Verify() bool {
	s := a.Scale()

	return s.Sign() > 0 && satisfies(AngleEquations(a.tri), a.coords)
}
