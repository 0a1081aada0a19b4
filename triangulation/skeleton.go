// SPDX-License-Identifier: MIT

package triangulation

// VertexEmbedding locates one corner of a vertex class.
type VertexEmbedding struct {
	Tet    int
	Vertex int
}

// EdgeEmbedding locates one appearance of an edge class. Vertices[0] and
// Vertices[1] are the edge ends in Tet; walking around the edge leaves Tet
// through facet Vertices[3] and enters the next tetrahedron through the
// facet that becomes its Vertices[2].
type EdgeEmbedding struct {
	Tet      int
	Vertices Perm4
}

// Edge returns the local edge number of the embedding.
func (e EdgeEmbedding) Edge() int { return EdgeNumber[e.Vertices[0]][e.Vertices[1]] }

// Vertex is a vertex class together with a summary of its link.
type Vertex struct {
	Index      int
	Embeddings []VertexEmbedding

	// Link statistics: the link is triangulated by one triangle per embedding.
	LinkEulerChar  int
	LinkClosed     bool
	LinkOrientable bool
}

// Degree returns the number of embeddings.
func (v *Vertex) Degree() int { return len(v.Embeddings) }

// IsIdeal reports whether the link is a closed surface other than a sphere.
func (v *Vertex) IsIdeal() bool { return v.LinkClosed && v.LinkEulerChar != 2 }

// IsBoundary reports whether the vertex lies on boundary facets.
func (v *Vertex) IsBoundary() bool { return !v.LinkClosed }

// IsValid reports whether the link is a sphere, a disc, or closed.
func (v *Vertex) IsValid() bool { return v.LinkClosed || v.LinkEulerChar == 1 }

// Edge is an edge class with its embeddings in walk order. For a boundary
// edge the walk starts and ends on boundary facets.
type Edge struct {
	Index      int
	Embeddings []EdgeEmbedding
	Boundary   bool
	Valid      bool // false when the edge is identified with itself in reverse
}

// Degree returns the number of embeddings.
func (e *Edge) Degree() int { return len(e.Embeddings) }

// BoundaryComponent is a connected union of boundary facets, or the link of
// an ideal vertex.
type BoundaryComponent struct {
	Facets    []VertexEmbedding // (tet, facet) pairs; empty for an ideal component
	Vertex    int               // ideal vertex index, or -1
	EulerChar int
	Ideal     bool
}

// IsTorus reports whether the component is an orientable surface of Euler
// characteristic zero.
func (b *BoundaryComponent) IsTorus(orientable bool) bool { return b.EulerChar == 0 && orientable }

// skeleton is the cached combinatorial data of a triangulation.
type skeleton struct {
	vertices    []Vertex
	edges       []Edge
	vertexOf    [][4]int
	edgeOf      [][6]int
	boundary    []BoundaryComponent
	components  [][]int
	orientation []int // +1/-1 per tetrahedron; consistent when orientable
	orientable  bool
	valid       bool
}

func computeSkeleton(t *Triangulation) *skeleton {
	s := &skeleton{
		vertexOf: make([][4]int, len(t.tets)),
		edgeOf:   make([][6]int, len(t.tets)),
	}
	s.computeComponents(t)
	s.computeVertices(t)
	s.computeEdges(t)
	s.computeLinks(t)
	s.computeBoundary(t)
	s.valid = true
	for i := range s.edges {
		s.valid = s.valid && s.edges[i].Valid
	}
	for i := range s.vertices {
		s.valid = s.valid && s.vertices[i].IsValid()
	}

	return s
}

// computeComponents runs a breadth-first search over gluings, assigning
// orientations as it goes. An odd gluing preserves the orientation sign.
func (s *skeleton) computeComponents(t *Triangulation) {
	n := len(t.tets)
	s.orientation = make([]int, n)
	s.orientable = true
	queue := make([]int, 0, n)
	for start := 0; start < n; start++ {
		if s.orientation[start] != 0 {
			continue
		}
		comp := []int{start}
		s.orientation[start] = 1
		queue = append(queue[:0], start)
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for f := 0; f < 4; f++ {
				w := t.tets[u].adj[f]
				if w < 0 {
					continue
				}
				want := -s.orientation[u]
				if t.tets[u].gluing[f].Sign() < 0 {
					want = s.orientation[u]
				}
				if s.orientation[w] == 0 {
					s.orientation[w] = want
					comp = append(comp, w)
					queue = append(queue, w)
				} else if s.orientation[w] != want {
					s.orientable = false
				}
			}
		}
		s.components = append(s.components, comp)
	}
}

func (s *skeleton) computeVertices(t *Triangulation) {
	n := len(t.tets)
	uf := newUnionFind(4 * n)
	for i := 0; i < n; i++ {
		for f := 0; f < 4; f++ {
			w := t.tets[i].adj[f]
			if w < 0 {
				continue
			}
			g := t.tets[i].gluing[f]
			for v := 0; v < 4; v++ {
				if v != f {
					uf.union(4*i+v, 4*w+g.At(v))
				}
			}
		}
	}
	id := make(map[int]int)
	for i := 0; i < n; i++ {
		for v := 0; v < 4; v++ {
			r := uf.find(4*i + v)
			k, ok := id[r]
			if !ok {
				k = len(s.vertices)
				id[r] = k
				s.vertices = append(s.vertices, Vertex{Index: k})
			}
			s.vertexOf[i][v] = k
			s.vertices[k].Embeddings = append(s.vertices[k].Embeddings, VertexEmbedding{Tet: i, Vertex: v})
		}
	}
}

// step crosses facet p[3] of tet. It returns the next embedding, or false
// if that facet is on the boundary.
func step(t *Triangulation, tet int, p Perm4) (int, Perm4, bool) {
	f := int(p[3])
	w := t.tets[tet].adj[f]
	if w < 0 {
		return 0, p, false
	}
	g := t.tets[tet].gluing[f]

	return w, Perm4{g[p[0]], g[p[1]], g[p[3]], g[p[2]]}, true
}

func (s *skeleton) computeEdges(t *Triangulation) {
	n := len(t.tets)
	for i := range s.edgeOf {
		s.edgeOf[i] = [6]int{-1, -1, -1, -1, -1, -1}
	}
	for i := 0; i < n; i++ {
		for e := 0; e < 6; e++ {
			if s.edgeOf[i][e] >= 0 {
				continue
			}
			s.walkEdge(t, i, edgeOrdering(e))
		}
	}
}

// walkEdge records the edge class through (tet, p). A boundary edge is first
// walked backwards to its initial boundary facet.
func (s *skeleton) walkEdge(t *Triangulation, tet int, p Perm4) {
	k := len(s.edges)
	startTet, startP := tet, p

	// Backwards: swapping the last two labels reverses the walk direction.
	seen := map[int]bool{tet*6 + EdgeNumber[p[0]][p[1]]: true}
	bt, bp := tet, p.Compose(Transposition(2, 3))
	for {
		nt, np, ok := step(t, bt, bp)
		if !ok {
			startTet, startP = bt, bp.Compose(Transposition(2, 3))
			break
		}
		key := nt*6 + EdgeNumber[np[0]][np[1]]
		if seen[key] {
			break
		}
		seen[key] = true
		bt, bp = nt, np
	}

	edge := Edge{Index: k, Valid: true}
	ct, cp := startTet, startP
	for {
		edge.Embeddings = append(edge.Embeddings, EdgeEmbedding{Tet: ct, Vertices: cp})
		s.edgeOf[ct][EdgeNumber[cp[0]][cp[1]]] = k
		nt, np, ok := step(t, ct, cp)
		if !ok {
			edge.Boundary = true
			break
		}
		if s.edgeOf[nt][EdgeNumber[np[0]][np[1]]] == k {
			if nt == startTet && np[0] != startP[0] {
				edge.Valid = false
			}
			break
		}
		ct, cp = nt, np
	}
	s.edges = append(s.edges, edge)
}

// computeLinks derives the Euler characteristic, closedness and
// orientability of every vertex link.
func (s *skeleton) computeLinks(t *Triangulation) {
	ends := make([]int, len(s.vertices))
	for i := range s.edges {
		emb := s.edges[i].Embeddings[0]
		ends[s.vertexOf[emb.Tet][emb.Vertices[0]]]++
		ends[s.vertexOf[emb.Tet][emb.Vertices[1]]]++
	}
	for k := range s.vertices {
		v := &s.vertices[k]
		faces, bnd := len(v.Embeddings), 0
		sign := make(map[int]int, faces)
		v.LinkOrientable = true
		for _, emb := range v.Embeddings {
			for f := 0; f < 4; f++ {
				if f != emb.Vertex && t.tets[emb.Tet].adj[f] < 0 {
					bnd++
				}
			}
		}
		// Orient link triangles with the same parity rule as tetrahedra.
		for _, root := range v.Embeddings {
			key := root.Tet*4 + root.Vertex
			if sign[key] != 0 {
				continue
			}
			sign[key] = 1
			queue := []VertexEmbedding{root}
			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]
				cs := sign[cur.Tet*4+cur.Vertex]
				for f := 0; f < 4; f++ {
					w := t.tets[cur.Tet].adj[f]
					if f == cur.Vertex || w < 0 {
						continue
					}
					g := t.tets[cur.Tet].gluing[f]
					next := VertexEmbedding{Tet: w, Vertex: g.At(cur.Vertex)}
					want := -cs
					if g.Sign() < 0 {
						want = cs
					}
					nk := next.Tet*4 + next.Vertex
					if sign[nk] == 0 {
						sign[nk] = want
						queue = append(queue, next)
					} else if sign[nk] != want {
						v.LinkOrientable = false
					}
				}
			}
		}
		edges := (3*faces + bnd) / 2
		v.LinkEulerChar = ends[k] - edges + faces
		v.LinkClosed = bnd == 0
	}
}

// computeBoundary groups boundary facets into components through shared
// edge classes, then appends one component per ideal vertex.
func (s *skeleton) computeBoundary(t *Triangulation) {
	var facets []VertexEmbedding
	for i := range t.tets {
		for f := 0; f < 4; f++ {
			if t.tets[i].adj[f] < 0 {
				facets = append(facets, VertexEmbedding{Tet: i, Vertex: f})
			}
		}
	}
	nf := len(facets)
	uf := newUnionFind(nf + len(s.edges))
	for k, fc := range facets {
		for a := 0; a < 4; a++ {
			for b := a + 1; b < 4; b++ {
				if a != fc.Vertex && b != fc.Vertex {
					uf.union(k, nf+s.edgeOf[fc.Tet][EdgeNumber[a][b]])
				}
			}
		}
	}
	index := make(map[int]int)
	type counts struct{ edges, verts map[int]bool }
	var cs []counts
	for k, fc := range facets {
		r := uf.find(k)
		c, ok := index[r]
		if !ok {
			c = len(s.boundary)
			index[r] = c
			s.boundary = append(s.boundary, BoundaryComponent{Vertex: -1})
			cs = append(cs, counts{edges: map[int]bool{}, verts: map[int]bool{}})
		}
		s.boundary[c].Facets = append(s.boundary[c].Facets, fc)
		for a := 0; a < 4; a++ {
			if a == fc.Vertex {
				continue
			}
			cs[c].verts[s.vertexOf[fc.Tet][a]] = true
			for b := a + 1; b < 4; b++ {
				if b != fc.Vertex {
					cs[c].edges[s.edgeOf[fc.Tet][EdgeNumber[a][b]]] = true
				}
			}
		}
	}
	for c := range s.boundary {
		s.boundary[c].EulerChar = len(cs[c].verts) - len(cs[c].edges) + len(s.boundary[c].Facets)
	}
	for k := range s.vertices {
		if s.vertices[k].IsIdeal() {
			s.boundary = append(s.boundary, BoundaryComponent{
				Vertex:    k,
				EulerChar: s.vertices[k].LinkEulerChar,
				Ideal:     true,
			})
		}
	}
}

// unionFind is a disjoint-set forest with path halving.
type unionFind struct{ parent []int }

func newUnionFind(n int) *unionFind {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return &unionFind{parent: p}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}

	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra < rb {
		u.parent[rb] = ra
	} else if rb < ra {
		u.parent[ra] = rb
	}
}
