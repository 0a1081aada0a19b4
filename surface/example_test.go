package surface_test

import (
	"fmt"

	"github.com/katalvlaran/regina/bigint"
	"github.com/katalvlaran/regina/surface"
	"github.com/katalvlaran/regina/triangulation"
)

// ExampleNormalSurface_EulerChar builds the meridian disc of a one-tetrahedron
// solid torus from its single quadrilateral.
func ExampleNormalSurface_EulerChar() {
	tri := triangulation.New(1)
	_ = tri.Join(0, 0, 0, triangulation.Perm4{1, 2, 3, 0})

	coords := make([]bigint.Int, 3)
	coords[2].SetInt64(1)
	s, _ := surface.NewNormalSurface(tri, surface.MustEncoding(surface.Quad), coords)
	std, _ := s.Standard()
	chi, _ := s.EulerChar()
	fmt.Println(std)
	fmt.Println(chi.String())
	// Output:
	// standard 1 1 0 0 0 0 1
	// 1
}
