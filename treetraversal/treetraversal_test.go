package treetraversal_test

import (
	"context"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/regina"
	"github.com/katalvlaran/regina/bigint"
	"github.com/katalvlaran/regina/constraint"
	"github.com/katalvlaran/regina/surface"
	"github.com/katalvlaran/regina/treetraversal"
	"github.com/katalvlaran/regina/triangulation"
)

type plain = treetraversal.Enumeration[constraint.None, constraint.BanNone]

func lst(t *testing.T) *triangulation.Triangulation {
	t.Helper()
	tri := triangulation.New(1)
	require.NoError(t, tri.Join(0, 0, 0, triangulation.Perm4{1, 2, 3, 0}))

	return tri
}

func join(v []bigint.Int) string {
	parts := make([]string, len(v))
	for i := range v {
		parts[i] = v[i].String()
	}

	return strings.Join(parts, " ")
}

// surfaces runs e to the end and returns every solution vector.
func surfaces(t *testing.T, e *plain) []string {
	t.Helper()
	var out []string
	done := e.Run(context.Background(), func(e *plain) bool {
		s, err := e.BuildSurface()
		require.NoError(t, err)
		assert.True(t, s.Verify(), "solution %s must satisfy the matching equations", s)
		out = append(out, join(s.Vector()))

		return true
	})
	assert.True(t, done)
	assert.Equal(t, len(out), e.Solutions())

	return out
}

func TestEnumeration_FigureEightQuad(t *testing.T) {
	tri := triangulation.MustFromIsoSig("cPcbbbiht")
	e, err := treetraversal.NewEnumeration[constraint.None, constraint.BanNone](tri, surface.MustEncoding(surface.Quad))
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"2 0 0 0 0 1",
		"0 1 0 2 0 0",
		"0 1 0 0 2 0",
		"0 0 2 0 0 1",
	}, surfaces(t, e))
	assert.True(t, e.Done())
	assert.False(t, e.Next(context.Background()), "an exhausted search stays exhausted")
	assert.Equal(t, 100.0, e.Percent())
	assert.Positive(t, e.Nodes())
}

func TestEnumeration_LayeredSolidTorusStandard(t *testing.T) {
	e, err := treetraversal.NewEnumeration[constraint.None, constraint.BanNone](lst(t), surface.MustEncoding(surface.Standard))
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"0 0 0 0 0 1 0",
		"0 0 1 1 1 0 0",
		"1 1 0 0 0 0 1",
		"1 1 1 1 0 0 0",
	}, surfaces(t, e))
}

func TestEnumeration_SingleTetrahedron(t *testing.T) {
	tri := triangulation.New(1)
	cases := []struct {
		coords surface.Coords
		want   int
	}{
		{surface.Quad, 3},
		{surface.Standard, 7},
	}
	for _, tc := range cases {
		t.Run(tc.coords.String(), func(t *testing.T) {
			e, err := treetraversal.NewEnumeration[constraint.None, constraint.BanNone](tri, surface.MustEncoding(tc.coords))
			require.NoError(t, err)
			assert.Len(t, surfaces(t, e), tc.want)
		})
	}
}

func TestEnumeration_Empty(t *testing.T) {
	e, err := treetraversal.NewEnumeration[constraint.None, constraint.BanNone](triangulation.New(0), surface.MustEncoding(surface.Standard))
	require.NoError(t, err)
	assert.Empty(t, surfaces(t, e))
	assert.True(t, e.Done())
}

func TestEnumeration_TypeOrderDoesNotChangeTheSet(t *testing.T) {
	tri := triangulation.MustFromIsoSig("cPcbbbiht")
	quad := surface.MustEncoding(surface.Quad)

	base, err := treetraversal.NewEnumeration[constraint.None, constraint.BanNone](tri, quad)
	require.NoError(t, err)
	want := surfaces(t, base)

	for name, opts := range map[string][]treetraversal.Option{
		"reversed":      {treetraversal.WithTypeOrder([]int{1, 0})},
		"decomposition": {treetraversal.WithTreeDecompositionOrder()},
		"unoptimised":   {treetraversal.WithOptimise(false)},
	} {
		t.Run(name, func(t *testing.T) {
			e, err := treetraversal.NewEnumeration[constraint.None, constraint.BanNone](tri, quad, opts...)
			require.NoError(t, err)
			assert.ElementsMatch(t, want, surfaces(t, e))
		})
	}
}

func TestEnumeration_AlmostNormalHasAtMostOneOctagon(t *testing.T) {
	tri := triangulation.MustFromIsoSig("cPcbbbaaa")
	e, err := treetraversal.NewEnumeration[constraint.None, constraint.BanNone](tri, surface.MustEncoding(surface.AlmostNormal))
	require.NoError(t, err)

	e.Run(context.Background(), func(e *plain) bool {
		s, err := e.BuildSurface()
		require.NoError(t, err)
		require.True(t, s.Verify())
		pieces := 0
		for tet := 0; tet < tri.Size(); tet++ {
			for k := 0; k < 3; k++ {
				o := s.Octs(tet, k)
				if !o.IsZero() {
					pieces++
				}
			}
		}
		assert.LessOrEqual(t, pieces, 1, "surface %s", s)
		assert.Equal(t, pieces == 1, s.HasOctagon())

		return true
	})
	assert.Positive(t, e.Solutions())
	assert.True(t, e.Done())
}

func TestTautEnumeration_FigureEight(t *testing.T) {
	tri := triangulation.MustFromIsoSig("cPcbbbiht")
	e, err := treetraversal.NewTautEnumeration[constraint.None, constraint.BanNone](tri)
	require.NoError(t, err)

	var got []string
	e.Run(context.Background(), func(e *plain) bool {
		a, err := e.BuildStructure()
		require.NoError(t, err)
		assert.True(t, a.IsTaut())
		assert.True(t, a.Verify())
		got = append(got, join(a.Vector()))

		_, err = e.BuildSurface()
		assert.ErrorIs(t, err, treetraversal.ErrWrongMode)

		return true
	})
	assert.ElementsMatch(t, []string{
		"1 0 0 0 1 0 1",
		"0 1 0 0 0 1 1",
		"0 0 1 1 0 0 1",
	}, got)
}

func TestEnumeration_Errors(t *testing.T) {
	tri := triangulation.MustFromIsoSig("cPcbbbiht")

	_, err := treetraversal.NewEnumeration[constraint.None, constraint.BanNone](tri, surface.MustEncoding(surface.Angle))
	assert.ErrorIs(t, err, treetraversal.ErrAngleEncoding)

	_, err = treetraversal.NewEnumeration[constraint.EulerPositive, constraint.BanNone](tri, surface.MustEncoding(surface.Quad))
	assert.ErrorIs(t, err, treetraversal.ErrUnsupported)
	assert.ErrorIs(t, err, regina.ErrInvalidArgument)

	_, err = treetraversal.NewTautEnumeration[constraint.None, constraint.BanBoundary](tri)
	assert.ErrorIs(t, err, treetraversal.ErrUnsupported)

	for _, order := range [][]int{{0}, {0, 0}, {0, 2}} {
		_, err = treetraversal.NewEnumeration[constraint.None, constraint.BanNone](tri, surface.MustEncoding(surface.Quad),
			treetraversal.WithTypeOrder(order))
		assert.ErrorIs(t, err, treetraversal.ErrBadTypeOrder, "order %v", order)
	}

	e, err := treetraversal.NewEnumeration[constraint.None, constraint.BanNone](tri, surface.MustEncoding(surface.Quad))
	require.NoError(t, err)
	_, err = e.BuildSurface()
	assert.ErrorIs(t, err, treetraversal.ErrNoSolution)
	assert.ErrorIs(t, err, regina.ErrFailedPrecondition)
	_, err = e.BuildStructure()
	assert.ErrorIs(t, err, treetraversal.ErrWrongMode)
}

func TestEnumeration_TypeVector(t *testing.T) {
	e, err := treetraversal.NewEnumeration[constraint.None, constraint.BanNone](lst(t), surface.MustEncoding(surface.Standard))
	require.NoError(t, err)
	require.True(t, e.Next(context.Background()))

	types := e.TypeVector()
	require.Len(t, types, 5)
	s, err := e.BuildSurface()
	require.NoError(t, err)
	for k := 0; k < 3; k++ {
		q := s.Quads(0, k)
		assert.Equal(t, !q.IsZero(), types[0] == k+1)
	}
	for v := 0; v < 4; v++ {
		tr := s.Triangles(0, v)
		assert.Equal(t, !tr.IsZero(), types[1+v] == 1)
	}
	assert.Len(t, e.TypeString(), 5)
}

func TestEnumeration_Cancel(t *testing.T) {
	tri := triangulation.MustFromIsoSig("cPcbbbiht")
	e, err := treetraversal.NewEnumeration[constraint.None, constraint.BanNone](tri, surface.MustEncoding(surface.Quad))
	require.NoError(t, err)

	require.True(t, e.Next(context.Background()))
	e.Cancel()
	assert.False(t, e.Next(context.Background()))
	assert.True(t, e.IsCancelled())
	assert.True(t, e.Done())
	assert.Equal(t, 1, e.Solutions())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e, err = treetraversal.NewEnumeration[constraint.None, constraint.BanNone](tri, surface.MustEncoding(surface.Quad))
	require.NoError(t, err)
	assert.False(t, e.Run(ctx, func(*plain) bool { return true }))
	assert.True(t, e.IsCancelled())
	assert.Zero(t, e.Solutions())
}

func TestEnumeration_PercentPartway(t *testing.T) {
	tri := triangulation.MustFromIsoSig("cPcbbbiht")
	e, err := treetraversal.NewEnumeration[constraint.None, constraint.BanNone](tri, surface.MustEncoding(surface.Quad))
	require.NoError(t, err)
	assert.Zero(t, e.Percent())

	var atFirst float64
	done := e.Run(context.Background(), func(e *plain) bool {
		atFirst = e.Percent()
		e.Cancel()

		return true
	})
	assert.False(t, done)
	assert.True(t, e.IsCancelled())
	assert.Equal(t, 1, e.Solutions())

	assert.Greater(t, atFirst, 0.0)
	assert.Less(t, atFirst, 100.0)
	assert.GreaterOrEqual(t, e.Percent(), atFirst, "progress never moves backwards")
	assert.Less(t, e.Percent(), 100.0, "a cancelled search is not complete")
}

func TestEnumeration_RunStopsWhenVisitorDeclines(t *testing.T) {
	tri := triangulation.MustFromIsoSig("cPcbbbiht")
	e, err := treetraversal.NewEnumeration[constraint.None, constraint.BanNone](tri, surface.MustEncoding(surface.Quad))
	require.NoError(t, err)
	assert.False(t, e.Run(context.Background(), func(*plain) bool { return false }))
	assert.Equal(t, 1, e.Solutions())
	assert.False(t, e.Done())
}

type recorder struct {
	solutions, cancelled, done []treetraversal.Event
}

func (r *recorder) Solution(ev treetraversal.Event)  { r.solutions = append(r.solutions, ev) }
func (r *recorder) Cancelled(ev treetraversal.Event) { r.cancelled = append(r.cancelled, ev) }
func (r *recorder) Done(ev treetraversal.Event)      { r.done = append(r.done, ev) }

func TestTracer_Events(t *testing.T) {
	tri := triangulation.MustFromIsoSig("cPcbbbiht")
	rec := &recorder{}
	e, err := treetraversal.NewEnumeration[constraint.None, constraint.BanNone](tri, surface.MustEncoding(surface.Quad),
		treetraversal.WithTracer(rec))
	require.NoError(t, err)
	surfaces(t, e)

	require.Len(t, rec.solutions, 4)
	for i, ev := range rec.solutions {
		assert.Equal(t, "enumerate", ev.Mode)
		assert.Equal(t, i+1, ev.Solutions)
		assert.Len(t, ev.Types, 2)
	}
	require.Len(t, rec.done, 1)
	assert.Equal(t, 4, rec.done[0].Solutions)
	assert.Equal(t, e.Nodes(), rec.done[0].Nodes)
	assert.Empty(t, rec.cancelled)
}

func TestLogTracer(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	tri := triangulation.MustFromIsoSig("cPcbbbiht")
	e, err := treetraversal.NewTautEnumeration[constraint.None, constraint.BanNone](tri,
		treetraversal.WithTracer(treetraversal.LogTracer{Logger: logger}))
	require.NoError(t, err)
	e.Run(context.Background(), func(*plain) bool { return true })

	entries := hook.AllEntries()
	require.Len(t, entries, 4)
	assert.Equal(t, "solution", entries[0].Message)
	assert.Equal(t, logrus.DebugLevel, entries[0].Level)
	assert.Equal(t, "taut", entries[0].Data["mode"])
	last := hook.LastEntry()
	assert.Equal(t, "search finished", last.Message)
	assert.Equal(t, 3, last.Data["solutions"])
}
