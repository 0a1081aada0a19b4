// Package triangulation models 3-manifold triangulations: tetrahedra whose
// facets are glued in pairs by permutations of the four vertex labels.
//
// It provides exactly what the normal surface machinery consumes:
//   - construction (New, Join, Unjoin) and isomorphism-signature decoding
//     (FromIsoSig), including multi-component signatures;
//   - the skeleton: vertex and edge classes with their embeddings, edge
//     degrees, boundary facets and boundary components;
//   - predicates (IsOrientable, IsIdeal, IsClosed, IsValid) and Euler
//     characteristics of the triangulation and of the underlying manifold;
//   - first homology through the dual presentation and Smith normal form;
//   - the facet-pairing view and its multigraph.
//
// Skeletal data is computed lazily and cached until the next gluing change.
// Reads are safe for concurrent use; mutation is not.
//
// Conventions:
//   - Facet f of a tetrahedron is the triangle opposite vertex f.
//   - Edge numbering: 0=01, 1=02, 2=03, 3=12, 4=13, 5=23.
//   - Join(t, f, u, p) maps vertex i of t to vertex p[i] of u, so facet f of
//     t meets facet p[f] of u.
package triangulation
