package triangulation_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/regina"
	"github.com/katalvlaran/regina/triangulation"
)

// layeredSolidTorus returns the one-tetrahedron layered solid torus
// LST(1,2,3): facet 0 is folded onto facet 1.
func layeredSolidTorus(t *testing.T) *triangulation.Triangulation {
	t.Helper()
	tri := triangulation.New(1)
	require.NoError(t, tri.Join(0, 0, 0, triangulation.Perm4{1, 2, 3, 0}))

	return tri
}

func edgeDegrees(tri *triangulation.Triangulation) []int {
	var d []int
	for _, e := range tri.Edges() {
		d = append(d, e.Degree())
	}
	sort.Ints(d)

	return d
}

func TestFromIsoSig_FigureEight(t *testing.T) {
	tri, err := triangulation.FromIsoSig("cPcbbbiht")
	require.NoError(t, err)
	require.Equal(t, 2, tri.Size())

	assert.Equal(t, 1, tri.Adjacent(0, 0))
	assert.Equal(t, triangulation.Identity, tri.Gluing(0, 0))
	assert.Equal(t, "1203", tri.Gluing(0, 1).String())
	assert.Equal(t, "1032", tri.Gluing(0, 2).String())
	assert.Equal(t, "3021", tri.Gluing(0, 3).String())
	assert.Equal(t, tri.Gluing(0, 1).Inverse(), tri.Gluing(1, 2))

	assert.Equal(t, 1, tri.CountVertices())
	assert.Equal(t, []int{6, 6}, edgeDegrees(tri))
	assert.False(t, tri.HasBoundaryFacets())
	assert.True(t, tri.IsOrientable())
	assert.True(t, tri.IsIdeal())
	assert.True(t, tri.IsValid())
	assert.False(t, tri.IsClosed())
	assert.Equal(t, 0, tri.Vertex(0).LinkEulerChar, "cusp link is a torus")
	assert.True(t, tri.Vertex(0).LinkOrientable)
	assert.Equal(t, 1, tri.EulerCharTri())
	assert.Equal(t, 0, tri.EulerCharManifold())

	h := tri.HomologyH1()
	assert.Equal(t, 1, h.Rank)
	assert.Empty(t, h.Torsion)
	assert.Equal(t, "Z", h.String())

	bc := tri.BoundaryComponents()
	require.Len(t, bc, 1)
	assert.True(t, bc[0].Ideal)
	assert.True(t, bc[0].IsTorus(tri.IsOrientable()))
}

func TestFromIsoSig_ThreeSphere(t *testing.T) {
	tri := triangulation.MustFromIsoSig("cPcbbbaaa")
	for f := 0; f < 4; f++ {
		assert.Equal(t, 1, tri.Adjacent(0, f))
		assert.Equal(t, triangulation.Identity, tri.Gluing(0, f))
	}
	assert.Equal(t, 4, tri.CountVertices())
	assert.Equal(t, []int{2, 2, 2, 2, 2, 2}, edgeDegrees(tri))
	assert.True(t, tri.IsClosed())
	assert.True(t, tri.IsOrientable())
	assert.Equal(t, 0, tri.EulerCharTri())
	assert.Equal(t, "0", tri.HomologyH1().String())
	for _, v := range tri.Vertices() {
		assert.Equal(t, 2, v.LinkEulerChar)
		assert.False(t, v.IsIdeal())
	}
	assert.Equal(t, -tri.Orientation(0), tri.Orientation(1), "even gluings flip orientation")
}

func TestFromIsoSig_IdealSolidTorus(t *testing.T) {
	tri := triangulation.MustFromIsoSig("cPcbbbadu")
	assert.Equal(t, "0231", tri.Gluing(0, 2).String())
	assert.Equal(t, "3102", tri.Gluing(0, 3).String())
	assert.Equal(t, 1, tri.CountVertices())
	assert.True(t, tri.IsIdeal())
	assert.False(t, tri.HasBoundaryFacets())
	assert.Equal(t, 1, tri.HomologyH1().Rank)
}

func TestLayeredSolidTorus(t *testing.T) {
	tri := layeredSolidTorus(t)
	assert.Equal(t, 1, tri.CountVertices())
	assert.Equal(t, []int{1, 2, 3}, edgeDegrees(tri))
	assert.Equal(t, 2, tri.CountBoundaryFacets())
	assert.False(t, tri.IsIdeal())
	assert.True(t, tri.Vertex(0).IsBoundary())
	assert.Equal(t, 1, tri.Vertex(0).LinkEulerChar, "link is a disc")
	assert.Equal(t, 0, tri.EulerCharTri())

	bc := tri.BoundaryComponents()
	require.Len(t, bc, 1)
	assert.False(t, bc[0].Ideal)
	assert.Len(t, bc[0].Facets, 2)
	assert.Equal(t, 0, bc[0].EulerChar)

	for _, e := range tri.Edges() {
		assert.True(t, e.Boundary)
		first, last := e.Embeddings[0], e.Embeddings[len(e.Embeddings)-1]
		assert.Equal(t, -1, tri.Adjacent(first.Tet, int(first.Vertices[2])), "walk starts on a boundary facet")
		assert.Equal(t, -1, tri.Adjacent(last.Tet, int(last.Vertices[3])), "walk ends on a boundary facet")
	}
	assert.Equal(t, "Z", tri.HomologyH1().String())
}

func TestEdgeWalkIsConsistent(t *testing.T) {
	tri := triangulation.MustFromIsoSig("cPcbbbiht")
	for _, e := range tri.Edges() {
		for i, emb := range e.Embeddings {
			next := e.Embeddings[(i+1)%len(e.Embeddings)]
			f := int(emb.Vertices[3])
			g := tri.Gluing(emb.Tet, f)
			assert.Equal(t, next.Tet, tri.Adjacent(emb.Tet, f))
			assert.Equal(t, g.At(int(emb.Vertices[0])), int(next.Vertices[0]))
			assert.Equal(t, g.At(int(emb.Vertices[1])), int(next.Vertices[1]))
			assert.Equal(t, g.At(f), int(next.Vertices[2]))
			assert.Equal(t, e.Index, tri.EdgeIndex(emb.Tet, emb.Edge()))
		}
	}
}

func TestFromIsoSig_Errors(t *testing.T) {
	for _, sig := range []string{"", "c!cbbbiht", "cPcbbbih", "cPcbbbiz", "cPcbbbihtt"} {
		_, err := triangulation.FromIsoSig(sig)
		assert.ErrorIs(t, err, triangulation.ErrBadSignature, "signature %q", sig)
		assert.ErrorIs(t, err, regina.ErrInvalidArgument, "signature %q", sig)
	}
}

func TestFromIsoSig_TwoComponents(t *testing.T) {
	tri := triangulation.MustFromIsoSig("cPcbbbiht" + "cPcbbbaaa")
	assert.Equal(t, 4, tri.Size())
	assert.Len(t, tri.Components(), 2)
	assert.Equal(t, 3, tri.Adjacent(2, 0))
}

func TestJoinErrors(t *testing.T) {
	tri := triangulation.New(2)
	require.NoError(t, tri.Join(0, 0, 1, triangulation.Identity))
	assert.ErrorIs(t, tri.Join(0, 0, 1, triangulation.Transposition(0, 1)), triangulation.ErrAlreadyGlued)
	assert.ErrorIs(t, tri.Join(1, 1, 1, triangulation.Identity), triangulation.ErrSelfGluing)
	assert.ErrorIs(t, tri.Join(2, 1, 1, triangulation.Identity), triangulation.ErrTetOutOfRange)
	assert.ErrorIs(t, tri.Join(0, 4, 1, triangulation.Identity), triangulation.ErrFacetOutOfRange)

	require.NoError(t, tri.Unjoin(1, 0))
	assert.Equal(t, -1, tri.Adjacent(0, 0))
	assert.Equal(t, 8, tri.CountBoundaryFacets())
}

func TestFacetPairingGraph(t *testing.T) {
	tri := triangulation.MustFromIsoSig("cPcbbbiht")
	fp := tri.FacetPairing()
	d, ok := fp.Dest(0, 1)
	require.True(t, ok)
	assert.Equal(t, triangulation.FacetSpec{Simp: 1, Facet: 2}, d)
	g := fp.Graph()
	assert.Equal(t, 2, g.Order())
	assert.Equal(t, 4, g.Size())

	lst := layeredSolidTorus(t).FacetPairing()
	_, ok = lst.Dest(0, 2)
	assert.False(t, ok)
	assert.Equal(t, "0:1 0:0 bdry bdry", lst.String())
	assert.Equal(t, 1, lst.Graph().Size(), "a self-gluing is a loop")
}
