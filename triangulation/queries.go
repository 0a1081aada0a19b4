// SPDX-License-Identifier: MIT

package triangulation

// CountVertices returns the number of vertex classes.
func (t *Triangulation) CountVertices() int { return len(t.skeleton().vertices) }

// CountEdges returns the number of edge classes.
func (t *Triangulation) CountEdges() int { return len(t.skeleton().edges) }

// Vertex returns vertex class i. The result is a view shared with the
// cache and must not be modified.
func (t *Triangulation) Vertex(i int) *Vertex { return &t.skeleton().vertices[i] }

// Edge returns edge class i. The result is a view shared with the cache and
// must not be modified.
func (t *Triangulation) Edge(i int) *Edge { return &t.skeleton().edges[i] }

// Vertices returns all vertex classes (read-only view).
func (t *Triangulation) Vertices() []Vertex { return t.skeleton().vertices }

// Edges returns all edge classes (read-only view).
func (t *Triangulation) Edges() []Edge { return t.skeleton().edges }

// VertexIndex returns the vertex class of vertex v of tet.
func (t *Triangulation) VertexIndex(tet, v int) int { return t.skeleton().vertexOf[tet][v] }

// EdgeIndex returns the edge class of local edge e of tet.
func (t *Triangulation) EdgeIndex(tet, e int) int { return t.skeleton().edgeOf[tet][e] }

// BoundaryComponents returns real boundary components followed by ideal
// ones (read-only view).
func (t *Triangulation) BoundaryComponents() []BoundaryComponent { return t.skeleton().boundary }

// Components returns the tetrahedra of each connected component in
// breadth-first order.
func (t *Triangulation) Components() [][]int { return t.skeleton().components }

// Orientation returns +1 or -1 for tet. When the triangulation is
// orientable the signs are consistent across every gluing.
func (t *Triangulation) Orientation(tet int) int { return t.skeleton().orientation[tet] }

// IsOrientable reports whether the tetrahedra can be oriented consistently.
func (t *Triangulation) IsOrientable() bool { return t.skeleton().orientable }

// IsValid reports whether no edge is reversed onto itself and every vertex
// link is a sphere, a disc or a closed surface.
func (t *Triangulation) IsValid() bool { return t.skeleton().valid }

// IsIdeal reports whether some vertex is ideal.
func (t *Triangulation) IsIdeal() bool {
	s := t.skeleton()
	for i := range s.vertices {
		if s.vertices[i].IsIdeal() {
			return true
		}
	}

	return false
}

// IsClosed reports whether there are no boundary facets and no ideal vertices.
func (t *Triangulation) IsClosed() bool { return !t.HasBoundaryFacets() && !t.IsIdeal() }

// IsConnected reports whether there is at most one component.
func (t *Triangulation) IsConnected() bool { return len(t.skeleton().components) <= 1 }

// EulerCharTri returns V - E + F - T computed on the triangulation itself.
func (t *Triangulation) EulerCharTri() int {
	return t.CountVertices() - t.CountEdges() + t.CountTriangles() - t.Size()
}

// EulerCharManifold returns the Euler characteristic of the compact
// manifold obtained by truncating every ideal vertex.
func (t *Triangulation) EulerCharManifold() int {
	chi := t.EulerCharTri()
	s := t.skeleton()
	for i := range s.vertices {
		v := &s.vertices[i]
		if v.IsIdeal() {
			chi += v.LinkEulerChar - 1
		}
	}

	return chi
}
