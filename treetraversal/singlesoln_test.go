package treetraversal_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/regina"
	"github.com/katalvlaran/regina/constraint"
	"github.com/katalvlaran/regina/surface"
	"github.com/katalvlaran/regina/treetraversal"
	"github.com/katalvlaran/regina/triangulation"
)

func euler(t *testing.T, s *surface.NormalSurface) int64 {
	t.Helper()
	chi, err := s.EulerChar()
	require.NoError(t, err)
	v, ok := chi.Int64()
	require.True(t, ok)

	return v
}

// hasZeroTriangle reports whether some triangle coordinate of s is zero.
func hasZeroTriangle(s *surface.NormalSurface) bool {
	for tet := 0; tet < s.Triangulation().Size(); tet++ {
		for v := 0; v < 4; v++ {
			tr := s.Triangles(tet, v)
			if tr.IsZero() {
				return true
			}
		}
	}

	return false
}

func TestSingleSoln_LayeredSolidTorusMeridian(t *testing.T) {
	s, err := treetraversal.NewSingleSoln[constraint.EulerPositive, constraint.BanNone](lst(t), surface.MustEncoding(surface.Standard))
	require.NoError(t, err)
	assert.Equal(t, treetraversal.Ready, s.State())

	ok, err := s.Find(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, treetraversal.FoundSolution, s.State())

	surf, err := s.BuildSurface()
	require.NoError(t, err)
	assert.Equal(t, "1 1 0 0 0 0 1", join(surf.Vector()))
	assert.Equal(t, int64(1), euler(t, surf))
	assert.True(t, surf.Verify())
	// A compressing disc: bounded, meets the torus boundary, not a vertex link.
	assert.True(t, surf.HasRealBoundary())
	assert.False(t, surf.IsVertexLinking())
	assert.True(t, hasZeroTriangle(surf))
}

func TestSingleSoln_ThreeSphereAlmostNormal(t *testing.T) {
	tri := triangulation.MustFromIsoSig("cPcbbbaaa")
	s, err := treetraversal.NewSingleSoln[constraint.EulerPositive, constraint.BanNone](tri, surface.MustEncoding(surface.AlmostNormal))
	require.NoError(t, err)

	ok, err := s.Find(context.Background())
	require.NoError(t, err)
	require.True(t, ok)

	surf, err := s.BuildSurface()
	require.NoError(t, err)
	assert.True(t, surf.Verify())
	assert.Positive(t, euler(t, surf))
	assert.True(t, hasZeroTriangle(surf))

	pieces := false
	for tet := 0; tet < tri.Size(); tet++ {
		for k := 0; k < 3; k++ {
			q, o := surf.Quads(tet, k), surf.Octs(tet, k)
			pieces = pieces || !q.IsZero() || !o.IsZero()
		}
	}
	assert.True(t, pieces, "the surface must not be vertex linking")

	types := s.TypeVector()
	assert.Len(t, types, tri.Size())
	assert.Len(t, s.TypeString(), tri.Size())
}

func TestSingleSoln_IdealTriangulationRejected(t *testing.T) {
	tri := triangulation.MustFromIsoSig("cPcbbbadu")
	_, err := treetraversal.NewSingleSoln[constraint.EulerPositive, constraint.BanNone](tri, surface.MustEncoding(surface.Standard))
	assert.ErrorIs(t, err, constraint.ErrIdealTriangulation)
	assert.ErrorIs(t, err, regina.ErrInvalidArgument)

	assert.True(t, tri.IsIdeal())
	_, err = treetraversal.NewSingleSoln[constraint.EulerPositive, constraint.BanBoundary](tri, surface.MustEncoding(surface.Standard))
	assert.ErrorIs(t, err, constraint.ErrIdealTriangulation)
}

func TestSingleSoln_EncodingErrors(t *testing.T) {
	tri := lst(t)
	_, err := treetraversal.NewSingleSoln[constraint.None, constraint.BanNone](tri, surface.MustEncoding(surface.Quad))
	assert.ErrorIs(t, err, treetraversal.ErrNeedsTriangles)
	_, err = treetraversal.NewSingleSoln[constraint.None, constraint.BanNone](tri, surface.MustEncoding(surface.Angle))
	assert.ErrorIs(t, err, treetraversal.ErrAngleEncoding)
}

func TestSingleSoln_LifeCycle(t *testing.T) {
	s, err := treetraversal.NewSingleSoln[constraint.EulerPositive, constraint.BanNone](lst(t), surface.MustEncoding(surface.Standard))
	require.NoError(t, err)

	_, err = s.BuildSurface()
	assert.ErrorIs(t, err, treetraversal.ErrNoSolution)

	_, err = s.Find(context.Background())
	require.NoError(t, err)
	_, err = s.Find(context.Background())
	assert.ErrorIs(t, err, treetraversal.ErrAlreadyRun)
	assert.ErrorIs(t, err, regina.ErrFailedPrecondition)

	_, err = s.BuildStructure()
	assert.ErrorIs(t, err, treetraversal.ErrWrongMode)
}

func TestSingleSoln_CancelBeforeFind(t *testing.T) {
	rec := &recorder{}
	s, err := treetraversal.NewSingleSoln[constraint.EulerPositive, constraint.BanNone](lst(t), surface.MustEncoding(surface.Standard),
		treetraversal.WithTracer(rec))
	require.NoError(t, err)

	s.Cancel()
	ok, err := s.Find(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, treetraversal.Cancelled, s.State())
	assert.Len(t, rec.cancelled, 1)
	assert.Empty(t, rec.done)
}

func TestSingleSoln_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s, err := treetraversal.NewSingleSoln[constraint.EulerPositive, constraint.BanNone](lst(t), surface.MustEncoding(surface.Standard))
	require.NoError(t, err)
	ok, err := s.Find(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, treetraversal.Cancelled, s.State())
}

func TestSingleSoln_ExhaustedWhenEverySurfaceIsBanned(t *testing.T) {
	// A lone tetrahedron with every boundary disc banned has nothing left.
	s, err := treetraversal.NewSingleSoln[constraint.None, constraint.BanBoundary](triangulation.New(1), surface.MustEncoding(surface.Standard))
	require.NoError(t, err)
	ok, err := s.Find(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, treetraversal.Exhausted, s.State())
	assert.Equal(t, 100.0, s.Percent())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "ready", treetraversal.Ready.String())
	assert.Equal(t, "found", treetraversal.FoundSolution.String())
	assert.Equal(t, "unknown", treetraversal.State(42).String())
}
