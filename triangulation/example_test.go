package triangulation_test

import (
	"fmt"

	"github.com/katalvlaran/regina/triangulation"
)

// ExampleFromIsoSig decodes the figure-eight knot complement.
func ExampleFromIsoSig() {
	tri, err := triangulation.FromIsoSig("cPcbbbiht")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(tri.Size(), tri.CountVertices(), tri.CountEdges(), tri.IsIdeal(), tri.HomologyH1())
	// Output: 2 1 2 true Z
}
