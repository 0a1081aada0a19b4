// Package surface holds the objects a tree traversal produces: normal
// surfaces and angle structures, the coordinate encodings they are written
// in, and the linear systems (matching equations, angle equations) that
// every admissible vector satisfies.
//
// Coordinate blocks, one per tetrahedron:
//
//	Standard      t0 t1 t2 t3 q0 q1 q2            (7)
//	AlmostNormal  t0 t1 t2 t3 q0 q1 q2 o0 o1 o2   (10)
//	Quad          q0 q1 q2                        (3)
//	QuadOct       q0 q1 q2 o0 o1 o2               (6)
//	Angle         a0 a1 a2, plus one trailing scale column
//
// Triangle ti is the disc cutting off vertex i; quadrilateral qk separates
// the vertex pairs of QuadDefn[k]; octagon ok meets the edges inside those
// pairs twice.
package surface
