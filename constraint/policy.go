// SPDX-License-Identifier: MIT

package constraint

import (
	"github.com/katalvlaran/regina/bigint"
	"github.com/katalvlaran/regina/surface"
	"github.com/katalvlaran/regina/triangulation"
)

// Constrainer is the part of a tableau that policies drive after the
// initial basis is built.
type Constrainer interface {
	ConstrainZero(col int)
	ConstrainPositive(col int)
}

// Row is one extra linear constraint. It defines a new non-negative column
// e by Coeffs . x - e = 0, where Coeffs covers the base columns.
type Row struct {
	Coeffs []bigint.Int

	// OctAdjust is added to the coefficient of a merged quadrilateral pair
	// when the pair is turned into a single octagon.
	OctAdjust bigint.Int
}

// LP is a linear-constraint policy.
type LP interface {
	// Name identifies the policy in logs and output.
	Name() string
	// Supported reports whether the encoding is compatible.
	Supported(enc surface.Encoding) bool
	// ExtraColumns returns the number of rows (and columns) Rows adds.
	ExtraColumns() int
	// Rows builds the extra rows for tri, or rejects the triangulation.
	Rows(tri *triangulation.Triangulation, enc surface.Encoding) ([]Row, error)
	// Constrain restricts the extra columns, which start at firstExtra.
	Constrain(c Constrainer, firstExtra int)
	// Verify checks a reconstructed surface against the policy.
	Verify(s *surface.NormalSurface) bool
}

// Ban is a coordinate-banning policy.
type Ban interface {
	// Name identifies the policy in logs and output.
	Name() string
	// Supported reports whether the encoding is compatible.
	Supported(enc surface.Encoding) bool
	// Columns returns, per base column, whether it is banned (forced to
	// zero at the start of a traversal) and whether it is marked (never
	// chosen as the forced-zero triangle of a single-solution search).
	Columns(tri *triangulation.Triangulation, enc surface.Encoding) (banned, marked []bool, err error)
}

// baseColumns returns the tableau width of enc on tri, without extras.
func baseColumns(tri *triangulation.Triangulation, enc surface.Encoding) int {
	return enc.WithoutOctagons().Columns(tri.Size())
}
