package treedecomp_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/regina"
	"github.com/katalvlaran/regina/graph"
	"github.com/katalvlaran/regina/treedecomp"
	"github.com/katalvlaran/regina/triangulation"
)

func cycle(t *testing.T, n int) *graph.Multigraph {
	t.Helper()
	g, err := graph.Cycle(n)
	require.NoError(t, err)

	return g
}

func contents(td *treedecomp.TreeDecomposition) []string {
	var out []string
	for _, b := range td.Postfix() {
		out = append(out, b.String())
	}

	return out
}

// treeEdges returns the unrooted tree as sorted "{a b}-{c d}" pairs.
func treeEdges(td *treedecomp.TreeDecomposition) []string {
	var out []string
	for _, b := range td.Postfix() {
		if p := b.Parent(); p != nil {
			x, y := b.String(), p.String()
			if x > y {
				x, y = y, x
			}
			out = append(out, x+"-"+y)
		}
	}
	sort.Strings(out)

	return out
}

func TestGreedy_FiveCycle(t *testing.T) {
	g := cycle(t, 5)
	td := treedecomp.FromGraph(g)
	require.NoError(t, td.Validate(g))
	assert.Equal(t, 2, td.Width())
	assert.Equal(t, []string{"{0 1 4}", "{1 2 4}", "{2 3 4}", "{3 4}", "{4}"}, contents(td))

	td.Compress()
	require.NoError(t, td.Validate(g))
	assert.Equal(t, 2, td.Width())
	require.Equal(t, 3, td.Size())
	for _, b := range td.Postfix() {
		assert.Equal(t, 3, b.Size(), "bag %d", b.Index())
	}
}

func TestGreedy_Edgeless(t *testing.T) {
	g := graph.New(3)
	td := treedecomp.FromGraph(g)
	require.NoError(t, td.Validate(g))
	assert.Equal(t, 0, td.Width())
	require.Equal(t, 4, td.Size())

	root := td.Root()
	assert.Equal(t, 0, root.Size(), "singletons hang below an empty root")
	assert.Equal(t, 3, root.Index())
	n := 0
	for c := root.Children(); c != nil; c = c.Sibling() {
		assert.Equal(t, 1, c.Size())
		assert.True(t, c.IsLeaf())
		n++
	}
	assert.Equal(t, 3, n)
}

func TestGreedy_Empty(t *testing.T) {
	td := treedecomp.FromGraph(graph.New(0))
	assert.Equal(t, 0, td.Size())
	assert.Equal(t, -1, td.Width())
	assert.Nil(t, td.Root())
	assert.Nil(t, td.First())
	assert.Equal(t, "s td 0 0 0\n", td.PACE())
	td.MakeNice()
	assert.Equal(t, 0, td.Size())
}

func TestFromFacetPairing(t *testing.T) {
	tri := triangulation.MustFromIsoSig("cPcbbbiht")
	td := treedecomp.FromFacetPairing(tri.FacetPairing(), treedecomp.WithCompress(true))
	assert.Equal(t, 1, td.Width())
	assert.Equal(t, []string{"{0 1}"}, contents(td))
}

func TestFromAdjacency(t *testing.T) {
	adj := [][]bool{
		{false, true, true},
		{true, false, true},
		{true, true, false},
	}
	td, err := treedecomp.FromAdjacency(adj, treedecomp.WithCompress(true))
	require.NoError(t, err)
	assert.Equal(t, []string{"{0 1 2}"}, contents(td))

	adj[0][1] = false
	_, err = treedecomp.FromAdjacency(adj)
	assert.ErrorIs(t, err, graph.ErrAsymmetric)
	assert.ErrorIs(t, err, regina.ErrInvalidArgument)
}

func TestIteration(t *testing.T) {
	td := treedecomp.FromGraph(cycle(t, 6))

	var post []*treedecomp.Bag
	for b := td.First(); b != nil; b = b.Next() {
		post = append(post, b)
	}
	assert.Equal(t, td.Postfix(), post)
	for i, b := range post {
		assert.Equal(t, i, b.Index())
		if p := b.Parent(); p != nil {
			assert.Less(t, b.Index(), p.Index())
		}
	}

	var pre []*treedecomp.Bag
	for b := td.FirstPrefix(); b != nil; b = b.NextPrefix() {
		pre = append(pre, b)
	}
	assert.Equal(t, td.Prefix(), pre)
	require.NotEmpty(t, pre)
	assert.Same(t, td.Root(), pre[0])

	b, err := td.Bag(td.Size())
	assert.Nil(t, b)
	assert.ErrorIs(t, err, treedecomp.ErrBagOutOfRange)
}

func TestMakeNice(t *testing.T) {
	g := cycle(t, 5)
	require.NoError(t, g.AddEdge(0, 2))
	td := treedecomp.FromGraph(g, treedecomp.WithNice(true))
	require.NoError(t, td.Validate(g))
	require.True(t, td.IsNice())
	assert.Equal(t, 0, td.Root().Size())

	for _, b := range td.Postfix() {
		switch b.Type() {
		case treedecomp.Join:
			l, r := b.Children(), b.Children().Sibling()
			require.NotNil(t, r)
			assert.Nil(t, r.Sibling())
			assert.Equal(t, b.Elements(), l.Elements())
			assert.Equal(t, b.Elements(), r.Elements())
		case treedecomp.Introduce:
			if b.IsLeaf() {
				assert.Equal(t, []int{b.Subtype()}, b.Elements())
				continue
			}
			assert.True(t, b.Contains(b.Subtype()))
			assert.False(t, b.Children().Contains(b.Subtype()))
			assert.Equal(t, b.Size()-1, b.Children().Size())
		case treedecomp.Forget:
			assert.False(t, b.Contains(b.Subtype()))
			assert.True(t, b.Children().Contains(b.Subtype()))
			assert.Equal(t, b.Size()+1, b.Children().Size())
		default:
			t.Fatalf("bag %d is unclassified", b.Index())
		}
	}

	before := td.PACE()
	td.MakeNice()
	assert.Equal(t, before, td.PACE(), "a nice decomposition is left alone")
}

func TestMakeNice_JoinFromForest(t *testing.T) {
	g := graph.New(3)
	td := treedecomp.FromGraph(g)
	td.MakeNice()
	require.NoError(t, td.Validate(g))
	require.True(t, td.IsNice())

	joins := 0
	for _, b := range td.Postfix() {
		if b.Type() == treedecomp.Join {
			joins++
		}
	}
	assert.Equal(t, 1, joins, "three branches need two joins, one is absorbed by compression")
}

func TestReroot(t *testing.T) {
	g := cycle(t, 5)
	td := treedecomp.FromGraph(g, treedecomp.WithCompress(true))
	edges := treeEdges(td)

	require.NoError(t, td.Reroot(0))
	require.NoError(t, td.Validate(g))
	assert.Equal(t, "{0 1 4}", td.Root().String())
	assert.Equal(t, edges, treeEdges(td), "rerooting keeps the unrooted tree")

	assert.ErrorIs(t, td.Reroot(-1), treedecomp.ErrBagOutOfRange)
}

func TestRerootCost(t *testing.T) {
	g := cycle(t, 5)
	td := treedecomp.FromGraph(g, treedecomp.WithCompress(true))
	require.Equal(t, []string{"{0 1 4}", "{1 2 4}", "{2 3 4}"}, contents(td))

	same := []float64{1, 1, 1}
	reverse := []float64{5, 5, 5}

	r, err := td.RerootCost(same, reverse, []float64{0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 2, r, "keeping the root reverses nothing")
	assert.Equal(t, "{2 3 4}", td.Root().String())

	r, err = td.RerootCost(same, reverse, []float64{0, 0, 9})
	require.NoError(t, err)
	assert.Equal(t, 1, r, "cost 5 reached by one bag beats cost 5 reached by two")
	assert.Equal(t, "{1 2 4}", td.Root().String())
	require.NoError(t, td.Validate(g))

	_, err = td.RerootCost(same, reverse, nil)
	assert.ErrorIs(t, err, treedecomp.ErrCostLength)
}

const paceExample = `c This file describes a tree decomposition with 4 bags, width 2, for a graph with 5 vertices
s td 4 3 5
b 1 1 2 3
b 2 2 3 4
b 3 3 4 5
b 4
1 2
2 3
2 4
`

func TestPACE_RoundTrip(t *testing.T) {
	td, err := treedecomp.ReadPACE(strings.NewReader(paceExample))
	require.NoError(t, err)
	assert.Equal(t, 4, td.Size())
	assert.Equal(t, 2, td.Width())
	assert.Equal(t, 5, td.Order())
	assert.Equal(t, "{0 1 2}", td.Root().String())

	wantBags := []string{"{0 1 2}", "{1 2 3}", "{2 3 4}", "{}"}
	got := contents(td)
	sort.Strings(got)
	if diff := cmp.Diff(wantBags, got); diff != "" {
		t.Errorf("bags (-want +got):\n%s", diff)
	}

	again, err := treedecomp.ReadPACE(strings.NewReader(td.PACE()))
	require.NoError(t, err)
	if diff := cmp.Diff(treeEdges(td), treeEdges(again)); diff != "" {
		t.Errorf("tree edges (-first +second):\n%s", diff)
	}
}

func TestPACE_Errors(t *testing.T) {
	cases := map[string]string{
		"empty":         "",
		"bad header":    "s tw 1 1 1\n",
		"missing bag":   "s td 2 1 2\nb 1 1\n",
		"node range":    "s td 1 1 1\nb 1 2\n",
		"size mismatch": "s td 1 2 1\nb 1 1\n",
		"missing edge":  "s td 2 1 2\nb 1 1\nb 2 2\n",
		"self edge":     "s td 2 1 2\nb 1 1\nb 2 2\n1 1\n",
		"edge order":    "s td 2 1 2\nb 1 1\nb 2 2\n2 1\n",
		"trailing":      "s td 1 1 1\nb 1 1\n1 2\n",
		"duplicate bag": "s td 2 1 2\nb 1 1\nb 1 2\n1 2\n",
		"disconnected":  "s td 3 1 3\nb 1 1\nb 2 2\nb 3 3\n1 2\n1 2\n",
	}
	for name, in := range cases {
		_, err := treedecomp.ReadPACE(strings.NewReader(in))
		assert.ErrorIs(t, err, treedecomp.ErrPACE, name)
		assert.ErrorIs(t, err, regina.ErrInvalidArgument, name)
	}

	_, err := treedecomp.ReadPACE(strings.NewReader("c comment\n\ns td 1 1 1\nb 1 7\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 4")
}

func TestValidate_Rejects(t *testing.T) {
	g := cycle(t, 4)
	td, err := treedecomp.ReadPACE(strings.NewReader("s td 2 2 4\nb 1 1 2\nb 2 3 4\n1 2\n"))
	require.NoError(t, err)
	err = td.Validate(g)
	assert.ErrorIs(t, err, treedecomp.ErrNotDecomposition)
	assert.ErrorIs(t, err, regina.ErrFailedPrecondition)
}

func TestFromGraph_CompleteAndGridWidths(t *testing.T) {
	k5, err := graph.Complete(5)
	require.NoError(t, err)
	td := treedecomp.FromGraph(k5)
	assert.Equal(t, 4, td.Width())
	require.NoError(t, td.Validate(k5))

	grid, err := graph.Grid(3, 4)
	require.NoError(t, err)
	td = treedecomp.FromGraph(grid, treedecomp.WithNice(true))
	require.NoError(t, td.Validate(grid))
	assert.True(t, td.IsNice())
	assert.GreaterOrEqual(t, td.Width(), 3)
}
