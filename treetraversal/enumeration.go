// SPDX-License-Identifier: MIT

package treetraversal

import (
	"context"

	"github.com/katalvlaran/regina/constraint"
	"github.com/katalvlaran/regina/surface"
	"github.com/katalvlaran/regina/triangulation"
	"github.com/katalvlaran/regina/typetrie"
)

// Enumeration lists vertex normal surfaces, or taut angle structures, one
// feasible leaf at a time.
//
// A surface search fixes every type position. A leaf is reported when its
// tableau is feasible, its type vector is nonzero, and no earlier solution
// has a type vector that agrees with it wherever the earlier one is
// nonzero; the leaf is then added to the set of earlier solutions. Those
// leaves are exactly the vertex surfaces, up to scaling.
type Enumeration[C constraint.LP, B constraint.Ban] struct {
	core[C, B]

	trie      *typetrie.Trie // nil for taut searches
	level     int            // deepest fixed level, -1 at the root
	started   bool
	finished  bool
	solutions int
}

// NewEnumeration prepares a vertex surface enumeration of tri in enc.
// Angle encodings are rejected; use NewTautEnumeration.
func NewEnumeration[C constraint.LP, B constraint.Ban](tri *triangulation.Triangulation, enc surface.Encoding, opts ...Option) (*Enumeration[C, B], error) {
	if enc.StoresAngles() {
		return nil, ErrAngleEncoding
	}
	e := &Enumeration[C, B]{level: -1}
	positions := func(n int) int {
		if enc.StoresTriangles() {
			return 5 * n
		}

		return n
	}
	if err := e.setup(tri, enc, modeEnumerate, positions, 0, opts); err != nil {
		return nil, err
	}
	e.trie = typetrie.New(typeValues)

	return e, nil
}

// NewTautEnumeration prepares an enumeration of the taut angle structures
// of tri.
func NewTautEnumeration[C constraint.LP, B constraint.Ban](tri *triangulation.Triangulation, opts ...Option) (*Enumeration[C, B], error) {
	e := &Enumeration[C, B]{level: -1}
	positions := func(n int) int { return n }
	if err := e.setup(tri, surface.MustEncoding(surface.Angle), modeTaut, positions, 0, opts); err != nil {
		return nil, err
	}

	return e, nil
}

// Next advances to the next solution and reports whether one was found.
// It returns false once the tree is exhausted or the search is cancelled.
func (e *Enumeration[C, B]) Next(ctx context.Context) bool {
	if e.finished {
		return false
	}
	if !e.started {
		e.started = true
		if len(e.order) == 0 || !e.startRoot() {
			return e.finish()
		}
		e.level = 0
		e.idx[0] = 0
	} else {
		// Resume after the leaf that was last reported.
		e.idx[e.level]++
	}

	for {
		if e.level < 0 {
			return e.finish()
		}
		if e.poll(ctx, e.level+1) {
			e.finished = true
			e.opts.Tracer.Cancelled(e.event(e.level, e.solutions))

			return false
		}

		pos := e.order[e.level]
		cands := e.candidates(pos)
		e.fan[e.level] = len(cands)
		if e.idx[e.level] >= len(cands) {
			e.types[pos] = 0
			e.level--
			if e.level >= 0 {
				e.idx[e.level]++
			}

			continue
		}
		v := cands[e.idx[e.level]]
		if v >= 4 && e.octagonAbove(e.level) {
			e.idx[e.level]++

			continue
		}

		e.types[pos] = v
		child := e.pool.Slot(e.level + 1)
		if !e.visit(child, e.pool.Slot(e.level), pos, v) ||
			(v != 0 && e.trie != nil && e.trie.Dominates(e.types)) {
			e.idx[e.level]++

			continue
		}

		if e.level < len(e.order)-1 {
			e.level++
			e.idx[e.level] = 0

			continue
		}

		// Leaf.
		if e.trie != nil {
			if e.allZero() {
				e.idx[e.level]++

				continue
			}
			e.trie.Insert(e.types)
		}
		e.record(child)
		e.solutions++
		e.opts.Tracer.Solution(e.event(e.level, e.solutions))

		return true
	}
}

func (e *Enumeration[C, B]) finish() bool {
	e.finished = true
	e.level = -1
	e.mu.Lock()
	e.percent = 100
	e.mu.Unlock()
	e.opts.Tracer.Done(e.event(-1, e.solutions))

	return false
}

func (e *Enumeration[C, B]) allZero() bool {
	for _, v := range e.types {
		if v != 0 {
			return false
		}
	}

	return true
}

// Run calls visit for every solution until visit returns false. It
// reports whether the whole tree was explored.
func (e *Enumeration[C, B]) Run(ctx context.Context, visit func(*Enumeration[C, B]) bool) bool {
	for e.Next(ctx) {
		if !visit(e) {
			return false
		}
	}

	return !e.IsCancelled()
}

// Solutions returns the number of solutions found so far.
func (e *Enumeration[C, B]) Solutions() int { return e.solutions }

// Done reports whether the search has ended, exhausted or cancelled.
func (e *Enumeration[C, B]) Done() bool { return e.finished }

// BuildSurface returns the current solution of a surface search, scaled to
// coprime coordinates.
func (e *Enumeration[C, B]) BuildSurface() (*surface.NormalSurface, error) { return e.surfaceAt() }

// BuildStructure returns the current solution of a taut search, scaled to
// coprime coordinates.
func (e *Enumeration[C, B]) BuildStructure() (*surface.AngleStructure, error) { return e.structureAt() }
