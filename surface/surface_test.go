package surface_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/regina"
	"github.com/katalvlaran/regina/bigint"
	"github.com/katalvlaran/regina/surface"
	"github.com/katalvlaran/regina/triangulation"
)

func ints(vs ...int64) []bigint.Int {
	out := make([]bigint.Int, len(vs))
	for i, v := range vs {
		out[i].SetInt64(v)
	}

	return out
}

func lst(t *testing.T) *triangulation.Triangulation {
	t.Helper()
	tri := triangulation.New(1)
	require.NoError(t, tri.Join(0, 0, 0, triangulation.Perm4{1, 2, 3, 0}))

	return tri
}

func euler(t *testing.T, s *surface.NormalSurface) int64 {
	t.Helper()
	chi, err := s.EulerChar()
	require.NoError(t, err)
	v, ok := chi.Int64()
	require.True(t, ok)

	return v
}

func TestParseCoords(t *testing.T) {
	for in, want := range map[string]surface.Coords{
		"standard": surface.Standard, "quad": surface.Quad, "AN": surface.AlmostNormal,
		"quad-oct": surface.QuadOct, "angle": surface.Angle,
	} {
		got, err := surface.ParseCoords(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := surface.ParseCoords("spun")
	assert.ErrorIs(t, err, surface.ErrUnknownCoords)
	assert.ErrorIs(t, err, regina.ErrInvalidArgument)
}

func TestEncodingLayout(t *testing.T) {
	an := surface.MustEncoding(surface.AlmostNormal)
	assert.True(t, an.StoresTriangles())
	assert.True(t, an.StoresOctagons())
	assert.Equal(t, 10, an.BlockSize())
	assert.Equal(t, 4, an.QuadOffset())
	assert.Equal(t, 7, an.OctOffset())

	q := surface.MustEncoding(surface.Quad)
	assert.Equal(t, -1, q.OctOffset())
	assert.Equal(t, 6, q.Columns(2))
	assert.Equal(t, 7, surface.MustEncoding(surface.Angle).Columns(2))

	_, err := surface.NewEncoding(surface.Coords(42))
	assert.ErrorIs(t, err, surface.ErrUnknownCoords)
}

func TestQuadSeparatingIsSymmetric(t *testing.T) {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.Equal(t, surface.QuadSeparating[i][j], surface.QuadSeparating[j][i])
		}
	}
	for k, d := range surface.QuadDefn {
		assert.Equal(t, k, surface.QuadSeparating[d[0]][d[1]])
		assert.Equal(t, k, surface.QuadSeparating[d[2]][d[3]])
	}
}

func TestFigureEightQuadEquations(t *testing.T) {
	tri := triangulation.MustFromIsoSig("cPcbbbiht")
	m, err := surface.MatchingEquations(tri, surface.MustEncoding(surface.Quad))
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 6, m.Cols())
	assert.Equal(t, 1, m.Rank(), "the two edge equations are negatives of each other")

	for _, v := range [][]int64{{2, 0, 0, 0, 0, 1}, {0, 1, 0, 2, 0, 0}, {0, 1, 0, 0, 2, 0}, {0, 0, 2, 0, 0, 1}} {
		s, err := surface.NewNormalSurface(tri, surface.MustEncoding(surface.Quad), ints(v...))
		require.NoError(t, err)
		assert.True(t, s.Verify(), "%v", v)
		assert.Zero(t, surface.Residual(m, ints(v...)))
	}
	bad, err := surface.NewNormalSurface(tri, surface.MustEncoding(surface.Quad), ints(1, 0, 0, 0, 0, 0))
	require.NoError(t, err)
	assert.False(t, bad.Verify())
	assert.Greater(t, surface.Residual(m, ints(1, 0, 0, 0, 0, 0)), 0.0)
}

func TestLayeredSolidTorusSurfaces(t *testing.T) {
	tri := lst(t)
	std := surface.MustEncoding(surface.Standard)

	disc, err := surface.NewNormalSurface(tri, std, ints(1, 1, 0, 0, 0, 0, 1))
	require.NoError(t, err)
	assert.True(t, disc.Verify())
	assert.Equal(t, int64(1), euler(t, disc))
	assert.True(t, disc.HasRealBoundary())
	assert.False(t, disc.IsVertexLinking())

	mobius, err := surface.NewNormalSurface(tri, std, ints(0, 0, 0, 0, 0, 1, 0))
	require.NoError(t, err)
	assert.True(t, mobius.Verify())
	assert.Equal(t, int64(0), euler(t, mobius))

	link, err := surface.NewNormalSurface(tri, std, ints(1, 1, 1, 1, 0, 0, 0))
	require.NoError(t, err)
	assert.True(t, link.Verify())
	assert.True(t, link.IsVertexLinking())
	assert.Equal(t, int64(1), euler(t, link))

	// The quadrilateral image of the disc recovers its triangles.
	qd, err := surface.NewNormalSurface(tri, surface.MustEncoding(surface.Quad), ints(0, 0, 1))
	require.NoError(t, err)
	conv, err := qd.Standard()
	require.NoError(t, err)
	assert.True(t, conv.Equal(disc), "got %s", conv)
	assert.True(t, qd.IsCompact())
	tr := qd.Triangles(0, 0)
	assert.True(t, tr.IsOne())
	assert.Equal(t, int64(1), euler(t, qd))
}

func TestThreeSphereSpheres(t *testing.T) {
	tri := triangulation.MustFromIsoSig("cPcbbbaaa")
	an := surface.MustEncoding(surface.AlmostNormal)

	quad := make([]int64, 20)
	quad[4], quad[14] = 1, 1
	s, err := surface.NewNormalSurface(tri, an, ints(quad...))
	require.NoError(t, err)
	assert.True(t, s.Verify())
	assert.Equal(t, int64(2), euler(t, s))
	assert.False(t, s.HasOctagon())

	oct := make([]int64, 20)
	oct[8], oct[18] = 1, 1
	o, err := surface.NewNormalSurface(tri, an, ints(oct...))
	require.NoError(t, err)
	assert.True(t, o.Verify())
	assert.True(t, o.HasOctagon())
	assert.Equal(t, int64(2), euler(t, o))
	assert.Equal(t, "an 0 0 0 0 0 0 0 0 1 0 0 0 0 0 0 0 0 0 1 0", o.String())
}

func TestNormalSurfaceValidation(t *testing.T) {
	tri := lst(t)
	_, err := surface.NewNormalSurface(tri, surface.MustEncoding(surface.Standard), ints(1, 2))
	assert.ErrorIs(t, err, surface.ErrLength)
	_, err = surface.NewNormalSurface(tri, surface.MustEncoding(surface.Quad), ints(0, -1, 0))
	assert.ErrorIs(t, err, surface.ErrNegative)
	_, err = surface.NewNormalSurface(tri, surface.MustEncoding(surface.Angle), ints(0, 0, 0, 1))
	assert.ErrorIs(t, err, surface.ErrWrongMode)
	assert.ErrorIs(t, err, regina.ErrFailedPrecondition)
	_, err = surface.MatchingEquations(tri, surface.MustEncoding(surface.Angle))
	assert.ErrorIs(t, err, surface.ErrWrongMode)
}

func TestFigureEightTautStructures(t *testing.T) {
	tri := triangulation.MustFromIsoSig("cPcbbbiht")
	m := surface.AngleEquations(tri)
	assert.Equal(t, 4, m.Rows(), "two tetrahedra and two internal edges")
	assert.Equal(t, 7, m.Cols())

	for _, v := range [][]int64{{1, 0, 0, 0, 1, 0, 1}, {0, 1, 0, 0, 0, 1, 1}, {0, 0, 1, 1, 0, 0, 1}} {
		a, err := surface.NewAngleStructure(tri, ints(v...))
		require.NoError(t, err)
		assert.True(t, a.Verify(), "%v", v)
		assert.True(t, a.IsTaut())
		assert.False(t, a.IsStrict())
	}
	strict, err := surface.NewAngleStructure(tri, ints(1, 1, 1, 1, 1, 1, 3))
	require.NoError(t, err)
	assert.True(t, strict.Verify())
	assert.True(t, strict.IsStrict())
	assert.Equal(t, 0, big.NewRat(1, 3).Cmp(strict.Angle(1, 2)))
	assert.Equal(t, "angle 1 1 1 1 1 1 3", strict.String())

	_, err = surface.NewAngleStructure(tri, ints(1, 0, 0))
	assert.ErrorIs(t, err, surface.ErrLength)
}
