// SPDX-License-Identifier: MIT

package triangulation

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/regina/bigint"
	"github.com/katalvlaran/regina/matrix"
)

// H1 is a finitely generated abelian group Z^Rank + Z_t1 + ... + Z_tk with
// t1 | t2 | ... | tk.
type H1 struct {
	Rank    int
	Torsion []bigint.Int
}

// String renders the group as e.g. "2 Z + Z_2", or "0" for the trivial group.
func (h H1) String() string {
	var parts []string
	switch {
	case h.Rank == 1:
		parts = append(parts, "Z")
	case h.Rank > 1:
		parts = append(parts, strconv.Itoa(h.Rank)+" Z")
	}
	for i := range h.Torsion {
		parts = append(parts, "Z_"+h.Torsion[i].String())
	}
	if len(parts) == 0 {
		return "0"
	}

	return strings.Join(parts, " + ")
}

// HomologyH1 computes the first homology of the underlying manifold (ideal
// vertices truncated) from the dual 2-skeleton: generators are glued facet
// pairs outside a dual spanning forest, relations run around internal edges.
//
// Complexity: O(T) to build the presentation plus the Smith normal form of
// an E x F matrix.
func (t *Triangulation) HomologyH1() H1 {
	n := len(t.tets)

	// Dual spanning forest: facets used to first reach each tetrahedron.
	inTree := make([][4]bool, n)
	seen := make([]bool, n)
	for start := 0; start < n; start++ {
		if seen[start] {
			continue
		}
		seen[start] = true
		queue := []int{start}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for f := 0; f < 4; f++ {
				w := t.tets[u].adj[f]
				if w < 0 || seen[w] {
					continue
				}
				seen[w] = true
				inTree[u][f] = true
				inTree[w][t.tets[u].gluing[f].At(f)] = true
				queue = append(queue, w)
			}
		}
	}

	// Generators: canonical sides of glued, non-tree facet pairs.
	gen := make([][4]int, n)
	nGen := 0
	for i := 0; i < n; i++ {
		for f := 0; f < 4; f++ {
			gen[i][f] = -1
			w := t.tets[i].adj[f]
			if w < 0 || inTree[i][f] {
				continue
			}
			if g := t.tets[i].gluing[f].At(f); isCanonicalSide(i, f, w, g) {
				gen[i][f] = nGen
				nGen++
			}
		}
	}
	for i := 0; i < n; i++ {
		for f := 0; f < 4; f++ {
			w := t.tets[i].adj[f]
			if w >= 0 && gen[i][f] < 0 && !inTree[i][f] {
				gen[i][f] = gen[w][t.tets[i].gluing[f].At(f)]
			}
		}
	}
	if nGen == 0 {
		return H1{}
	}

	var rows [][]int64
	for _, e := range t.Edges() {
		if e.Boundary {
			continue
		}
		row := make([]int64, nGen)
		for _, emb := range e.Embeddings {
			f := int(emb.Vertices[3])
			k := gen[emb.Tet][f]
			if k < 0 {
				continue
			}
			w := t.tets[emb.Tet].adj[f]
			if isCanonicalSide(emb.Tet, f, w, t.tets[emb.Tet].gluing[f].At(f)) {
				row[k]++
			} else {
				row[k]--
			}
		}
		rows = append(rows, row)
	}

	m, _ := matrix.NewDense(len(rows), nGen) // dimensions are non-negative
	for i, row := range rows {
		for j, v := range row {
			if v != 0 {
				_ = m.SetInt64(i, j, v)
			}
		}
	}
	factors := m.SmithNormalForm()
	h := H1{Rank: nGen - len(factors)}
	for i := range factors {
		var a bigint.Int
		a.Abs(&factors[i])
		if !a.IsOne() {
			h.Torsion = append(h.Torsion, a)
		}
	}

	return h
}

// isCanonicalSide reports whether (t, f) is the lexicographically smaller
// side of its glued pair with (u, g).
func isCanonicalSide(t, f, u, g int) bool { return t < u || (t == u && f < g) }
