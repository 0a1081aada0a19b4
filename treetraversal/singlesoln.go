// SPDX-License-Identifier: MIT

package treetraversal

import (
	"context"

	"github.com/katalvlaran/regina/constraint"
	"github.com/katalvlaran/regina/surface"
	"github.com/katalvlaran/regina/tableau"
	"github.com/katalvlaran/regina/triangulation"
)

// State is the life cycle of a SingleSoln.
type State int

const (
	Ready State = iota
	Searching
	FoundSolution
	Exhausted
	Cancelled
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Searching:
		return "searching"
	case FoundSolution:
		return "found"
	case Exhausted:
		return "exhausted"
	case Cancelled:
		return "cancelled"
	}

	return "unknown"
}

// SingleSoln looks for one surface that satisfies the constraint policy,
// has at least one quadrilateral or octagon, and has some triangle
// coordinate equal to zero.
//
// The triangle forced to zero runs through the unmarked triangles in
// order; while handling triangle z, every earlier unmarked triangle is
// forced positive, so each surface is looked for exactly once. Inside one
// case the quadrilateral types are decided in a dynamic order: at each
// node the undecided tetrahedron with the fewest feasible types goes
// next.
type SingleSoln[C constraint.LP, B constraint.Ban] struct {
	core[C, B]

	state    State
	chosen   []int   // chosen[depth] = position decided at that depth
	branches [][]int // branches[depth] = feasible values, in order
	set      []bool  // set[position]
	found    *surface.NormalSurface
}

// NewSingleSoln prepares a search of tri in enc, which must store
// triangles.
func NewSingleSoln[C constraint.LP, B constraint.Ban](tri *triangulation.Triangulation, enc surface.Encoding, opts ...Option) (*SingleSoln[C, B], error) {
	if enc.StoresAngles() {
		return nil, ErrAngleEncoding
	}
	if !enc.StoresTriangles() {
		return nil, ErrNeedsTriangles
	}
	s := &SingleSoln[C, B]{}
	positions := func(n int) int { return n }
	if err := s.setup(tri, enc, modeSingle, positions, 2, opts); err != nil {
		return nil, err
	}
	s.chosen = make([]int, s.n)
	s.branches = make([][]int, s.n)
	s.set = make([]bool, s.n)

	return s, nil
}

// State returns the current state. It may be called from any goroutine.
func (s *SingleSoln[C, B]) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Find runs the search and reports whether a surface was found. It may be
// called once; a cancelled search returns false with a nil error.
func (s *SingleSoln[C, B]) Find(ctx context.Context) (bool, error) {
	s.mu.Lock()
	if s.state != Ready {
		s.mu.Unlock()

		return false, ErrAlreadyRun
	}
	s.state = Searching
	s.mu.Unlock()

	ok := s.search(ctx)

	s.mu.Lock()
	switch {
	case ok:
		s.state = FoundSolution
	case s.cancelled:
		s.state = Cancelled
	default:
		s.state = Exhausted
		s.percent = 100
	}
	st := s.state
	s.mu.Unlock()

	solutions := 0
	if ok {
		solutions = 1
		s.opts.Tracer.Solution(s.event(s.n-1, solutions))
	}
	if st == Cancelled {
		s.opts.Tracer.Cancelled(s.event(-1, solutions))
	} else {
		s.opts.Tracer.Done(s.event(-1, solutions))
	}

	return ok, nil
}

// BuildSurface returns the surface found, scaled to coprime coordinates.
func (s *SingleSoln[C, B]) BuildSurface() (*surface.NormalSurface, error) {
	if s.found == nil {
		return nil, ErrNoSolution
	}

	return s.found, nil
}

// BuildStructure always fails: a single-solution search finds surfaces.
func (s *SingleSoln[C, B]) BuildStructure() (*surface.AngleStructure, error) { return s.structureAt() }

func (s *SingleSoln[C, B]) search(ctx context.Context) bool {
	if s.n == 0 || !s.startRoot() {
		return false
	}
	var tris []int
	for b := 0; b < s.n; b++ {
		for v := 0; v < 4; v++ {
			if col := s.init.TriangleColumn(b, v); !s.marked[col] {
				tris = append(tris, col)
			}
		}
	}

	prefix, zroot := s.pool.Slot(0), s.pool.Slot(1)
	for i, z := range tris {
		s.progBase = 100 * float64(i) / float64(len(tris))
		s.progSpan = 100 / float64(len(tris))
		if s.poll(ctx, 0) {
			return false
		}

		s.nodes++
		zroot.InitClone(prefix)
		before := zroot.Pivots()
		zroot.ConstrainZero(z)
		s.pivots += int64(zroot.Pivots() - before)
		if zroot.Feasible() {
			if s.descend(ctx) {
				return true
			}
			if s.IsCancelled() {
				return false
			}
		}

		before = prefix.Pivots()
		prefix.ConstrainPositive(z)
		s.pivots += int64(prefix.Pivots() - before)
		if !prefix.Feasible() {
			break
		}
	}

	return false
}

// descend searches below the tableau in slot 1. The tableau at depth d
// lives in slot 1+d.
func (s *SingleSoln[C, B]) descend(ctx context.Context) bool {
	for p := range s.set {
		s.set[p], s.types[p] = false, 0
	}
	d := 0
	if !s.branch(d) {
		return false
	}
	for {
		if s.poll(ctx, d+1) {
			return false
		}
		if s.idx[d] >= len(s.branches[d]) {
			pos := s.chosen[d]
			s.set[pos], s.types[pos] = false, 0
			d--
			if d < 0 {
				return false
			}
			s.idx[d]++

			continue
		}

		pos, v := s.chosen[d], s.branches[d][s.idx[d]]
		if v >= 4 && s.octagonElsewhere(pos) {
			s.idx[d]++

			continue
		}
		s.types[pos], s.set[pos] = v, true
		child := s.pool.Slot(2 + d)
		if !s.visit(child, s.pool.Slot(1+d), pos, v) {
			s.idx[d]++

			continue
		}

		if d+1 == s.n {
			if s.accept(child) {
				return true
			}
			s.idx[d]++

			continue
		}
		d++
		if !s.branch(d) {
			d--
			s.idx[d]++
		}
	}
}

// branch picks the undecided position with the fewest feasible values
// below the tableau at depth d. It returns false when some undecided
// position has none, which kills the node.
func (s *SingleSoln[C, B]) branch(d int) bool {
	parent, scratch := s.pool.Slot(1+d), s.pool.Slot(s.n+2)
	best := -1
	var bestVals []int
	for p := 0; p < s.n; p++ {
		if s.set[p] {
			continue
		}
		var vals []int
		for _, v := range s.candidates(p) {
			if v >= 4 && s.octagonElsewhere(p) {
				continue
			}
			if s.visit(scratch, parent, p, v) {
				vals = append(vals, v)
			}
		}
		if len(vals) == 0 {
			return false
		}
		if best < 0 || len(vals) < len(bestVals) {
			best, bestVals = p, vals
		}
	}
	s.chosen[d], s.branches[d] = best, bestVals
	s.idx[d], s.fan[d] = 0, len(bestVals)

	return true
}

// octagonElsewhere reports whether a decided position other than pos
// holds an octagon.
func (s *SingleSoln[C, B]) octagonElsewhere(pos int) bool {
	for p, v := range s.types {
		if p != pos && s.set[p] && v >= 4 {
			return true
		}
	}

	return false
}

// accept checks a feasible leaf: some quadrilateral or octagon must be
// present and the reconstructed surface must pass the policy.
func (s *SingleSoln[C, B]) accept(leaf *tableau.Data) bool {
	nonzero := false
	for _, v := range s.types {
		if v != 0 {
			nonzero = true

			break
		}
	}
	if !nonzero {
		return false
	}
	s.record(leaf)
	surf, err := s.surfaceAt()
	if err != nil || !s.lp.Verify(surf) {
		s.soln = nil

		return false
	}
	s.found = surf

	return true
}
