// SPDX-License-Identifier: MIT

package triangulation

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/regina/graph"
)

// FacetSpec names facet Facet of tetrahedron Simp.
type FacetSpec struct {
	Simp  int
	Facet int
}

// FacetPairing is a read-only view of which facets are glued together,
// forgetting the permutations.
type FacetPairing struct {
	dest [][4]FacetSpec // Simp < 0 when unmatched
}

// FacetPairing returns the facet pairing of t.
func (t *Triangulation) FacetPairing() FacetPairing {
	p := FacetPairing{dest: make([][4]FacetSpec, len(t.tets))}
	for i := range t.tets {
		for f := 0; f < 4; f++ {
			w := t.tets[i].adj[f]
			if w < 0 {
				p.dest[i][f] = FacetSpec{Simp: -1, Facet: -1}
			} else {
				p.dest[i][f] = FacetSpec{Simp: w, Facet: t.tets[i].gluing[f].At(f)}
			}
		}
	}

	return p
}

// Size returns the number of simplices.
func (p FacetPairing) Size() int { return len(p.dest) }

// Dest returns the partner of facet f of simplex s, and false if unmatched.
func (p FacetPairing) Dest(s, f int) (FacetSpec, bool) {
	d := p.dest[s][f]

	return d, d.Simp >= 0
}

// Graph returns the facet-pairing multigraph: one node per simplex and one
// edge per glued pair of facets.
func (p FacetPairing) Graph() *graph.Multigraph {
	g := graph.New(len(p.dest), graph.WithLoops(), graph.WithMultiEdges())
	for s := range p.dest {
		for f := 0; f < 4; f++ {
			d := p.dest[s][f]
			if d.Simp < 0 || d.Simp < s || (d.Simp == s && d.Facet < f) {
				continue
			}
			_ = g.AddEdge(s, d.Simp) // in range, loops and multi-edges allowed
		}
	}

	return g
}

// String lists destinations as "s:f" per facet, "bdry" when unmatched.
func (p FacetPairing) String() string {
	var b strings.Builder
	for s := range p.dest {
		if s > 0 {
			b.WriteString(" | ")
		}
		for f := 0; f < 4; f++ {
			if f > 0 {
				b.WriteByte(' ')
			}
			if d := p.dest[s][f]; d.Simp < 0 {
				b.WriteString("bdry")
			} else {
				fmt.Fprintf(&b, "%d:%d", d.Simp, d.Facet)
			}
		}
	}

	return b.String()
}
