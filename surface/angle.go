// SPDX-License-Identifier: MIT

package surface

import (
	"math/big"

	"github.com/katalvlaran/regina/bigint"
	"github.com/katalvlaran/regina/triangulation"
)

// AngleStructure assigns to each pair of opposite edges of each
// tetrahedron an angle, stored as a multiple of a common scale: the value
// a stands for the angle (a / scale) * pi.
type AngleStructure struct {
	tri    *triangulation.Triangulation
	coords []bigint.Int // 3n angles followed by the scale
}

// NewAngleStructure validates and wraps a vector in the angle encoding.
// The vector is copied.
func NewAngleStructure(tri *triangulation.Triangulation, coords []bigint.Int) (*AngleStructure, error) {
	if len(coords) != 3*tri.Size()+1 {
		return nil, ErrLength
	}
	for i := range coords {
		if coords[i].Sign() < 0 {
			return nil, ErrNegative
		}
	}
	c := make([]bigint.Int, len(coords))
	copy(c, coords)

	return &AngleStructure{tri: tri, coords: c}, nil
}

// Triangulation returns the underlying triangulation.
func (a *AngleStructure) Triangulation() *triangulation.Triangulation { return a.tri }

// Vector returns a copy of the raw coordinates, scale last.
func (a *AngleStructure) Vector() []bigint.Int {
	c := make([]bigint.Int, len(a.coords))
	copy(c, a.coords)

	return c
}

// Scale returns the scale coordinate.
func (a *AngleStructure) Scale() bigint.Int { return a.coords[len(a.coords)-1] }

// Angle returns the angle on edge pair k of tet as a rational multiple of
// pi. Pair k holds the two edges that quadrilateral k does not meet.
func (a *AngleStructure) Angle(tet, k int) *big.Rat {
	s := a.Scale()
	if s.IsZero() {
		return new(big.Rat)
	}

	return new(big.Rat).SetFrac(a.coords[3*tet+k].Big(), s.Big())
}

// IsTaut reports whether every angle is 0 or pi.
func (a *AngleStructure) IsTaut() bool {
	s := a.Scale()
	for i := 0; i < len(a.coords)-1; i++ {
		if !a.coords[i].IsZero() && !a.coords[i].Equal(&s) {
			return false
		}
	}

	return true
}

// IsStrict reports whether every angle lies strictly between 0 and pi.
func (a *AngleStructure) IsStrict() bool {
	s := a.Scale()
	for i := 0; i < len(a.coords)-1; i++ {
		if a.coords[i].IsZero() || a.coords[i].Cmp(&s) >= 0 {
			return false
		}
	}

	return true
}

// Equal reports exact equality of the vectors.
func (a *AngleStructure) Equal(o *AngleStructure) bool {
	if len(a.coords) != len(o.coords) {
		return false
	}
	for i := range a.coords {
		if !a.coords[i].Equal(&o.coords[i]) {
			return false
		}
	}

	return true
}

// String returns "angle a0 a1 ... scale".
func (a *AngleStructure) String() string { return formatVector(coordNames[Angle], a.coords) }
