// SPDX-License-Identifier: MIT

package triangulation

import "sync"

// tetrahedron stores the four facet gluings; adj[f] < 0 marks a boundary facet.
type tetrahedron struct {
	adj    [4]int
	gluing [4]Perm4
}

// Triangulation is a collection of tetrahedra with facet gluings.
// The zero value is an empty triangulation ready to use.
type Triangulation struct {
	tets []tetrahedron

	mu   sync.Mutex // guards skel
	skel *skeleton  // cached skeleton, nil when stale
}

// New returns a triangulation of n unglued tetrahedra.
func New(n int) *Triangulation {
	t := &Triangulation{}
	for i := 0; i < n; i++ {
		t.AddTetrahedron()
	}

	return t
}

// AddTetrahedron appends an unglued tetrahedron and returns its index.
func (t *Triangulation) AddTetrahedron() int {
	t.tets = append(t.tets, tetrahedron{adj: [4]int{-1, -1, -1, -1}, gluing: [4]Perm4{Identity, Identity, Identity, Identity}})
	t.invalidate()

	return len(t.tets) - 1
}

// Size returns the number of tetrahedra.
func (t *Triangulation) Size() int { return len(t.tets) }

// IsEmpty reports whether there are no tetrahedra.
func (t *Triangulation) IsEmpty() bool { return len(t.tets) == 0 }

// checkFacet validates a (tetrahedron, facet) pair.
func (t *Triangulation) checkFacet(tet, facet int) error {
	if tet < 0 || tet >= len(t.tets) {
		return ErrTetOutOfRange
	}
	if facet < 0 || facet > 3 {
		return ErrFacetOutOfRange
	}

	return nil
}

// Join glues facet of tet to facet gluing[facet] of adj, sending vertex i
// of tet to vertex gluing[i] of adj. Both facets must be unglued.
func (t *Triangulation) Join(tet, facet, adj int, gluing Perm4) error {
	if err := t.checkFacet(tet, facet); err != nil {
		return err
	}
	if !gluing.IsValid() {
		return ErrBadPermutation
	}
	target := gluing.At(facet)
	if err := t.checkFacet(adj, target); err != nil {
		return err
	}
	if tet == adj && target == facet {
		return ErrSelfGluing
	}
	if t.tets[tet].adj[facet] >= 0 || t.tets[adj].adj[target] >= 0 {
		return ErrAlreadyGlued
	}
	t.tets[tet].adj[facet] = adj
	t.tets[tet].gluing[facet] = gluing
	t.tets[adj].adj[target] = tet
	t.tets[adj].gluing[target] = gluing.Inverse()
	t.invalidate()

	return nil
}

// Unjoin removes the gluing on facet of tet, if any, from both sides.
func (t *Triangulation) Unjoin(tet, facet int) error {
	if err := t.checkFacet(tet, facet); err != nil {
		return err
	}
	adj := t.tets[tet].adj[facet]
	if adj < 0 {
		return nil
	}
	target := t.tets[tet].gluing[facet].At(facet)
	t.tets[adj].adj[target] = -1
	t.tets[adj].gluing[target] = Identity
	t.tets[tet].adj[facet] = -1
	t.tets[tet].gluing[facet] = Identity
	t.invalidate()

	return nil
}

// Adjacent returns the tetrahedron glued to facet of tet, or -1 for a
// boundary facet. Indices must be in range.
func (t *Triangulation) Adjacent(tet, facet int) int { return t.tets[tet].adj[facet] }

// Gluing returns the gluing permutation on facet of tet; it is the
// identity for a boundary facet. Indices must be in range.
func (t *Triangulation) Gluing(tet, facet int) Perm4 { return t.tets[tet].gluing[facet] }

// Clone returns an independent copy of t.
func (t *Triangulation) Clone() *Triangulation {
	c := &Triangulation{tets: make([]tetrahedron, len(t.tets))}
	copy(c.tets, t.tets)

	return c
}

// CountBoundaryFacets returns the number of unglued facets.
func (t *Triangulation) CountBoundaryFacets() int {
	n := 0
	for i := range t.tets {
		for f := 0; f < 4; f++ {
			if t.tets[i].adj[f] < 0 {
				n++
			}
		}
	}

	return n
}

// HasBoundaryFacets reports whether some facet is unglued.
func (t *Triangulation) HasBoundaryFacets() bool { return t.CountBoundaryFacets() > 0 }

// CountTriangles returns the number of triangle classes.
func (t *Triangulation) CountTriangles() int {
	return (4*len(t.tets) + t.CountBoundaryFacets()) / 2
}

func (t *Triangulation) invalidate() {
	t.mu.Lock()
	t.skel = nil
	t.mu.Unlock()
}

// skeleton returns the cached skeleton, computing it if needed.
func (t *Triangulation) skeleton() *skeleton {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.skel == nil {
		t.skel = computeSkeleton(t)
	}

	return t.skel
}
