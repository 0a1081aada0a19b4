package tableau_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/regina"
	"github.com/katalvlaran/regina/bigint"
	"github.com/katalvlaran/regina/constraint"
	"github.com/katalvlaran/regina/surface"
	"github.com/katalvlaran/regina/tableau"
	"github.com/katalvlaran/regina/triangulation"
)

func lst(t *testing.T) *triangulation.Triangulation {
	t.Helper()
	tri := triangulation.New(1)
	require.NoError(t, tri.Join(0, 0, 0, triangulation.Perm4{1, 2, 3, 0}))

	return tri
}

func start(t *testing.T, tri *triangulation.Triangulation, c surface.Coords, lp constraint.LP) (*tableau.Initial, *tableau.Data) {
	t.Helper()
	sys, err := tableau.NewInitial(tri, surface.MustEncoding(c), lp)
	require.NoError(t, err)
	d := tableau.NewData(sys)
	d.InitStart()
	require.True(t, d.Feasible())

	return sys, d
}

// original returns the solution of d in original column order, as strings.
func original(sys *tableau.Initial, d *tableau.Data) []string {
	sol := d.ExtractSolution()
	out := make([]string, len(sol))
	for c := range sol {
		out[sys.Original(c)] = sol[c].String()
	}

	return out
}

func zeroAllBut(d *tableau.Data, sys *tableau.Initial, keep ...int) {
	kept := make(map[int]bool)
	for _, k := range keep {
		kept[k] = true
	}
	for c := 0; c < sys.BaseColumns(); c++ {
		if !kept[sys.Original(c)] {
			d.ConstrainZero(c)
		}
	}
}

func TestNewInitial_Layout(t *testing.T) {
	tri := triangulation.MustFromIsoSig("cPcbbbiht")
	sys, err := tableau.NewInitial(tri, surface.MustEncoding(surface.Standard), constraint.None{})
	require.NoError(t, err)

	assert.Equal(t, 14, sys.Columns())
	assert.Equal(t, 12, sys.Rows(), "three rows per glued facet pair")
	assert.Equal(t, 0, sys.ExtraColumns())
	assert.Equal(t, -1, sys.ScaleColumn())
	assert.Equal(t, sys.Matrix().Rank(), sys.Rank())

	// Quadrilaterals come first, then triangles.
	assert.Equal(t, 4, sys.Original(sys.QuadColumn(0, 0)))
	assert.Equal(t, 7*1+6, sys.Original(sys.QuadColumn(1, 2)))
	assert.Equal(t, 7*1+3, sys.Original(sys.TriangleColumn(1, 3)))
	for c := 0; c < sys.Columns(); c++ {
		assert.Equal(t, c, sys.Permuted(sys.Original(c)))
	}
	cc := sys.ColumnCoord(sys.QuadColumn(1, 1))
	assert.Equal(t, tableau.Coord{Tet: 1, Local: 5, Extra: -1}, cc)

	dense := sys.Dense()
	require.NotNil(t, dense)
	r, c := dense.Dims()
	assert.Equal(t, 12, r)
	assert.Equal(t, 14, c)
}

func TestNewInitial_OptimiseOrder(t *testing.T) {
	tri := triangulation.New(3)
	require.NoError(t, tri.Join(0, 0, 2, triangulation.Identity))
	require.NoError(t, tri.Join(2, 1, 1, triangulation.Identity))
	sys, err := tableau.NewInitial(tri, surface.MustEncoding(surface.Quad), nil, tableau.WithOptimise(true))
	require.NoError(t, err)

	got := []int{sys.Tet(0), sys.Tet(1), sys.Tet(2)}
	assert.Equal(t, []int{0, 2, 1}, got)
	for b := 0; b < 3; b++ {
		assert.Equal(t, b, sys.Block(sys.Tet(b)))
	}
}

func TestNewInitial_Errors(t *testing.T) {
	fig8 := triangulation.MustFromIsoSig("cPcbbbiht")

	_, err := tableau.NewInitial(fig8, surface.MustEncoding(surface.Quad), constraint.EulerPositive{})
	assert.ErrorIs(t, err, tableau.ErrUnsupported)
	assert.ErrorIs(t, err, regina.ErrInvalidArgument)

	_, err = tableau.NewInitial(fig8, surface.MustEncoding(surface.Standard), constraint.EulerPositive{})
	assert.ErrorIs(t, err, constraint.ErrIdealTriangulation)
	assert.ErrorIs(t, err, regina.ErrInvalidArgument)
}

func TestData_StartIsRankReduced(t *testing.T) {
	sys, d := start(t, triangulation.MustFromIsoSig("cPcbbbiht"), surface.Quad, nil)
	assert.Equal(t, sys.Rank(), d.Rank())
	assert.Equal(t, sys.Rows()-sys.Rank(), d.DeadRows())
}

func TestData_FigureEightVertex(t *testing.T) {
	sys, d := start(t, triangulation.MustFromIsoSig("cPcbbbiht"), surface.Quad, nil)
	zeroAllBut(d, sys, 0, 5)
	d.ConstrainPositive(sys.Permuted(0))
	require.True(t, d.Feasible())
	assert.Equal(t, []string{"2", "0", "0", "0", "0", "1"}, original(sys, d))
}

func TestData_FigureEightInfeasible(t *testing.T) {
	sys, d := start(t, triangulation.MustFromIsoSig("cPcbbbiht"), surface.Quad, nil)
	zeroAllBut(d, sys, 0)
	assert.True(t, d.Feasible(), "the zero vector is still admissible")
	d.ConstrainPositive(sys.Permuted(0))
	assert.False(t, d.Feasible())
}

func TestData_MeridianDisc(t *testing.T) {
	sys, d := start(t, lst(t), surface.Standard, nil)
	zeroAllBut(d, sys, 0, 1, 6)
	d.ConstrainPositive(sys.Permuted(0))
	require.True(t, d.Feasible())
	assert.Equal(t, []string{"1", "1", "0", "0", "0", "0", "1"}, original(sys, d))
}

func TestData_EulerPositive(t *testing.T) {
	sys, d := start(t, lst(t), surface.Standard, constraint.EulerPositive{})
	require.Equal(t, 1, sys.ExtraColumns())
	assert.True(t, d.IsPositive(sys.FirstExtra()))

	meridian := tableau.NewData(sys)
	meridian.InitClone(d)
	zeroAllBut(meridian, sys, 0, 1, 6)
	require.True(t, meridian.Feasible())
	// chi = 1, scaled by L = 6.
	assert.Equal(t, []string{"1", "1", "0", "0", "0", "0", "1", "6"}, original(sys, meridian))

	mobius := tableau.NewData(sys)
	mobius.InitClone(d)
	zeroAllBut(mobius, sys, 5)
	assert.False(t, mobius.Feasible(), "the Möbius band has chi = 0")
	assert.True(t, d.Feasible(), "clones leave their parent alone")
}

func TestData_EulerZeroAllowsMobius(t *testing.T) {
	sys, d := start(t, lst(t), surface.Standard, constraint.EulerZero{})
	zeroAllBut(d, sys, 5)
	d.ConstrainPositive(sys.Permuted(5))
	require.True(t, d.Feasible())
	assert.Equal(t, []string{"0", "0", "0", "0", "0", "1", "0", "0"}, original(sys, d))
}

func TestData_OctagonQuadOct(t *testing.T) {
	tri := triangulation.New(1)
	sys, d := start(t, tri, surface.QuadOct, nil)
	require.Equal(t, 0, sys.Rows())
	require.Equal(t, 3, sys.Columns())

	d.ConstrainZero(0)
	d.ConstrainOct(1, 2)
	require.True(t, d.Feasible())
	a, b, ok := d.Octagon()
	require.True(t, ok)
	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
	assert.True(t, d.IsZero(2))
	assert.True(t, d.IsPositive(1))
	assert.Equal(t, []string{"0", "1", "1"}, original(sys, d))
}

func TestData_OctagonEulerAdjust(t *testing.T) {
	sys, d := start(t, triangulation.New(1), surface.AlmostNormal, constraint.EulerPositive{})
	for v := 0; v < 4; v++ {
		d.ConstrainZero(sys.TriangleColumn(0, v))
	}
	d.ConstrainZero(sys.QuadColumn(0, 0))
	d.ConstrainOct(sys.QuadColumn(0, 1), sys.QuadColumn(0, 2))
	require.True(t, d.Feasible())
	// An octagon is a disc: chi = 1, scaled by L = 2.
	assert.Equal(t, []string{"0", "0", "0", "0", "0", "1", "1", "2"}, original(sys, d))
}

func TestData_OctagonOverZeroColumn(t *testing.T) {
	_, d := start(t, triangulation.New(1), surface.QuadOct, nil)
	d.ConstrainZero(1)
	d.ConstrainOct(1, 2)
	assert.False(t, d.Feasible())
}

func TestData_TautAngleStructure(t *testing.T) {
	sys, d := start(t, triangulation.MustFromIsoSig("cPcbbbiht"), surface.Angle, nil)
	require.Equal(t, 7, sys.Columns())
	require.Equal(t, 6, sys.ScaleColumn())
	for _, c := range []int{1, 2, 3, 5} {
		d.ConstrainZero(c)
	}
	d.ConstrainPositive(sys.ScaleColumn())
	require.True(t, d.Feasible())
	assert.Equal(t, []string{"1", "0", "0", "0", "1", "0", "1"}, original(sys, d))
}

func TestData_AllZeroIsDormant(t *testing.T) {
	sys, d := start(t, lst(t), surface.Standard, nil)
	for c := 0; c < sys.Columns(); c++ {
		d.ConstrainZero(c)
	}
	require.True(t, d.Feasible())
	assert.Equal(t, sys.Rows(), d.DeadRows())
	sol := d.ExtractSolution()
	for i := range sol {
		assert.True(t, sol[i].IsZero())
	}

	d.ConstrainPositive(0)
	assert.False(t, d.Feasible())
}

func TestData_ZeroAfterPositiveIsInfeasible(t *testing.T) {
	_, d := start(t, lst(t), surface.Standard, nil)
	d.ConstrainPositive(3)
	require.True(t, d.Feasible())
	d.ConstrainZero(3)
	assert.False(t, d.Feasible())
}

func TestData_Misuse(t *testing.T) {
	sys, d := start(t, lst(t), surface.Standard, nil)
	assert.PanicsWithValue(t, "tableau: column out of range", func() { d.ConstrainZero(sys.Columns()) })
	assert.Panics(t, func() { d.ConstrainOct(1, 1) })

	d.ConstrainZero(0)
	d.ConstrainPositive(0)
	require.False(t, d.Feasible())
	assert.Panics(t, func() { d.ExtractSolution() })

	other, _ := start(t, triangulation.New(1), surface.Quad, nil)
	assert.Panics(t, func() { tableau.NewData(other).InitClone(d) })
}

func TestPool_Slots(t *testing.T) {
	sys, err := tableau.NewInitial(lst(t), surface.MustEncoding(surface.Standard), nil)
	require.NoError(t, err)
	p := tableau.NewPool(sys, 3)
	assert.Equal(t, 3, p.Len())
	assert.Same(t, sys, p.Initial())

	p.Slot(0).InitStart()
	p.Slot(1).InitClone(p.Slot(0))
	p.Slot(1).ConstrainZero(0)
	assert.True(t, p.Slot(1).IsZero(0))
	assert.False(t, p.Slot(0).IsZero(0))
	assert.Panics(t, func() { p.Slot(3) })

	var total bigint.Int
	for _, v := range p.Slot(0).ExtractSolution() {
		total.Add(&total, &v)
	}
	assert.True(t, total.IsZero(), "the starting point is the zero vector")
}
