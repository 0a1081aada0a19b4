// SPDX-License-Identifier: MIT

package treetraversal

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/katalvlaran/regina/bigint"
	"github.com/katalvlaran/regina/constraint"
	"github.com/katalvlaran/regina/surface"
	"github.com/katalvlaran/regina/tableau"
	"github.com/katalvlaran/regina/treedecomp"
	"github.com/katalvlaran/regina/triangulation"
)

// typeValues is the number of distinct type values: 0, quads 1..3 and
// octagons 4..6.
const typeValues = 7

// progressLevels bounds the levels that contribute to Percent.
const progressLevels = 6

type mode int

const (
	modeEnumerate mode = iota
	modeTaut
	modeSingle
)

func (m mode) String() string {
	switch m {
	case modeTaut:
		return "taut"
	case modeSingle:
		return "single"
	}

	return "enumerate"
}

// core holds what every search shares: the starting system, the tableau
// pool and the current type vector.
//
// Type positions 0..n-1 are the quadrilateral types of blocks 0..n-1;
// positions n+4b+v, when present, are the triangle types of block b.
type core[C constraint.LP, B constraint.Ban] struct {
	lp   C
	ban  B
	mode mode
	opts Options

	tri  *triangulation.Triangulation
	enc  surface.Encoding
	init *tableau.Initial
	pool *tableau.Pool

	n      int
	order  []int // order[level] = position
	types  []int // types[position] = value
	idx    []int // idx[level] = index of the current candidate
	fan    []int // fan[level] = number of candidates at the level
	banned []bool
	marked []bool

	nodes  int64
	pivots int64

	soln []bigint.Int // permuted solution at the last leaf
	octA int
	octB int

	mu        sync.Mutex
	cancelled bool
	percent   float64

	// Percent reports progBase + progSpan * (share of the current subtree).
	progBase float64
	progSpan float64
}

// setup validates the policies and builds the starting system. positions
// is the number of type positions; extra pool slots are added on top of
// one slot per level plus the root.
func (c *core[C, B]) setup(tri *triangulation.Triangulation, enc surface.Encoding, m mode, positions func(n int) int, scratch int, opts []Option) error {
	c.mode, c.tri, c.enc = m, tri, enc
	c.opts = DefaultOptions()
	for _, opt := range opts {
		opt(&c.opts)
	}
	if !c.lp.Supported(enc) || !c.ban.Supported(enc) {
		return ErrUnsupported
	}
	init, err := tableau.NewInitial(tri, enc, c.lp, tableau.WithOptimise(c.opts.Optimise))
	if err != nil {
		return err
	}
	banned, marked, err := c.ban.Columns(tri, enc)
	if err != nil {
		return err
	}
	c.init = init
	c.n = tri.Size()

	c.banned = make([]bool, init.Columns())
	c.marked = make([]bool, init.Columns())
	for o := range banned {
		p := init.Permuted(o)
		c.banned[p], c.marked[p] = banned[o], marked[o]
	}

	if err := c.buildOrder(positions(c.n)); err != nil {
		return err
	}
	c.types = make([]int, positions(c.n))
	c.idx = make([]int, len(c.order))
	c.fan = make([]int, len(c.order))
	c.pool = tableau.NewPool(init, len(c.order)+1+scratch)
	c.octA, c.octB = -1, -1
	c.progSpan = 100

	return nil
}

// buildOrder fills c.order: quadrilateral positions in type order, then
// any triangle positions in block order.
func (c *core[C, B]) buildOrder(positions int) error {
	tets := c.opts.TypeOrder
	if tets == nil && c.opts.TreeDecompositionOrder {
		tets = decompositionOrder(c.tri)
	}
	c.order = make([]int, 0, positions)
	if tets == nil {
		for b := 0; b < c.n; b++ {
			c.order = append(c.order, b)
		}
	} else {
		if len(tets) != c.n {
			return ErrBadTypeOrder
		}
		seen := make([]bool, c.n)
		for _, t := range tets {
			if t < 0 || t >= c.n || seen[t] {
				return ErrBadTypeOrder
			}
			seen[t] = true
			c.order = append(c.order, c.init.Block(t))
		}
	}
	for p := c.n; p < positions; p++ {
		c.order = append(c.order, p)
	}

	return nil
}

// decompositionOrder lists tetrahedra by first appearance in the postfix
// bag order of a greedy decomposition of the facet-pairing graph.
func decompositionOrder(tri *triangulation.Triangulation) []int {
	td := treedecomp.FromFacetPairing(tri.FacetPairing(), treedecomp.WithCompress(true))
	seen := make([]bool, tri.Size())
	order := make([]int, 0, tri.Size())
	for _, b := range td.Postfix() {
		for _, t := range b.Elements() {
			if !seen[t] {
				seen[t] = true
				order = append(order, t)
			}
		}
	}
	for t := range seen {
		if !seen[t] {
			order = append(order, t)
		}
	}

	return order
}

// startRoot loads slot 0 with the starting system and the bans, and for
// taut searches forces the scale column positive. It reports feasibility.
func (c *core[C, B]) startRoot() bool {
	root := c.pool.Slot(0)
	root.InitStart()
	for col, b := range c.banned {
		if b {
			root.ConstrainZero(col)
		}
	}
	if c.mode == modeTaut {
		root.ConstrainPositive(c.init.ScaleColumn())
	}
	c.pivots += int64(root.Pivots())

	return root.Feasible()
}

// candidates returns the values tried at position pos, in order.
func (c *core[C, B]) candidates(pos int) []int {
	switch {
	case pos >= c.n:
		return triangleValues
	case c.mode == modeTaut:
		return tautValues
	case c.enc.StoresOctagons():
		return octValues
	}

	return quadValues
}

var (
	quadValues     = []int{0, 1, 2, 3}
	octValues      = []int{0, 1, 2, 3, 4, 5, 6}
	tautValues     = []int{1, 2, 3}
	triangleValues = []int{0, 1}
)

// octagonAbove reports whether a level before level chose an octagon.
func (c *core[C, B]) octagonAbove(level int) bool {
	for l := 0; l < level; l++ {
		if c.types[c.order[l]] >= 4 {
			return true
		}
	}

	return false
}

// apply constrains d so that position pos has type v.
func (c *core[C, B]) apply(d *tableau.Data, pos, v int) {
	if pos >= c.n {
		b, vert := (pos-c.n)/4, (pos-c.n)%4
		col := c.init.TriangleColumn(b, vert)
		if v == 0 {
			d.ConstrainZero(col)
		} else {
			d.ConstrainPositive(col)
		}

		return
	}
	q := func(k int) int { return c.init.QuadColumn(pos, k) }
	switch {
	case v == 0:
		d.ConstrainZero(q(0))
		d.ConstrainZero(q(1))
		d.ConstrainZero(q(2))
	case v <= 3:
		k := v - 1
		d.ConstrainZero(q((k + 1) % 3))
		d.ConstrainZero(q((k + 2) % 3))
		d.ConstrainPositive(q(k))
	default:
		// Octagon k uses the two quadrilateral kinds other than k.
		k := v - 4
		d.ConstrainZero(q(k))
		a, b := (k+1)%3, (k+2)%3
		if a > b {
			a, b = b, a
		}
		d.ConstrainOct(q(a), q(b))
	}
}

// visit clones parent into child and applies type v at pos, counting the
// node and its pivots. It reports feasibility.
func (c *core[C, B]) visit(child, parent *tableau.Data, pos, v int) bool {
	c.nodes++
	child.InitClone(parent)
	before := child.Pivots()
	c.apply(child, pos, v)
	c.pivots += int64(child.Pivots() - before)

	return child.Feasible()
}

// record stores the solution at leaf d.
func (c *core[C, B]) record(d *tableau.Data) {
	c.soln = d.ExtractSolution()
	c.octA, c.octB, _ = d.Octagon()
}

// poll reports whether the search must stop, and refreshes Percent.
func (c *core[C, B]) poll(ctx context.Context, depth int) bool {
	select {
	case <-ctx.Done():
		c.mu.Lock()
		c.cancelled = true
		c.mu.Unlock()

		return true
	default:
	}
	p := c.progress(depth)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.percent = p

	return c.cancelled
}

// progress estimates the explored share of the tree from the candidate
// indices of the first few levels.
func (c *core[C, B]) progress(depth int) float64 {
	if depth > progressLevels {
		depth = progressLevels
	}
	var (
		pct   = c.progBase
		scale = c.progSpan
	)
	for l := 0; l < depth && c.fan[l] > 0; l++ {
		n := float64(c.fan[l])
		pct += scale * float64(c.idx[l]) / n
		scale /= n
	}

	return pct
}

// Cancel asks the search to stop at the next level boundary.
func (c *core[C, B]) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelled = true
}

// IsCancelled reports whether Cancel was called or the context ended.
func (c *core[C, B]) IsCancelled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cancelled
}

// Percent returns a rough estimate of the share of the tree explored.
func (c *core[C, B]) Percent() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.percent
}

// Nodes returns the number of tree nodes visited.
func (c *core[C, B]) Nodes() int64 { return c.nodes }

// Pivots returns the number of tableau pivots performed.
func (c *core[C, B]) Pivots() int64 { return c.pivots }

// Initial returns the starting system.
func (c *core[C, B]) Initial() *tableau.Initial { return c.init }

// TypeVector returns the current type vector indexed by tetrahedron:
// quadrilateral types first, then 4 triangle types per tetrahedron when
// the search decides triangles.
func (c *core[C, B]) TypeVector() []int {
	out := make([]int, len(c.types))
	for t := 0; t < c.n; t++ {
		b := c.init.Block(t)
		out[t] = c.types[b]
		if len(c.types) > c.n {
			for v := 0; v < 4; v++ {
				out[c.n+4*t+v] = c.types[c.n+4*b+v]
			}
		}
	}

	return out
}

// TypeString returns TypeVector as a digit string.
func (c *core[C, B]) TypeString() string {
	var sb strings.Builder
	for _, v := range c.TypeVector() {
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}

func (c *core[C, B]) event(level, solutions int) Event {
	ev := Event{Mode: c.mode.String(), Level: level, Nodes: c.nodes, Solutions: solutions}
	if level >= 0 {
		ev.Types = c.TypeString()
	}

	return ev
}
