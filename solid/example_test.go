// SPDX-License-Identifier: MIT
package solid_test

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/solid"
)

func ExampleNew() {
	for _, name := range solid.All {
		p, _ := solid.New(name)
		fmt.Println(name, len(p))
	}
	// Output:
	// Tetrahedron 4
	// Cube 12
	// Octahedron 8
	// Dodecahedron 36
	// Icosahedron 20
}
