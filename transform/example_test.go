// SPDX-License-Identifier: MIT
package transform_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvgeom/transform"
	"github.com/katalvlaran/lvgeom/vector"
)

// ExampleChain builds the load-time placement used for the teapot model:
// translate, then turn upright, then scale. Chain applies right to left.
func ExampleChain() {
	place := transform.Chain(
		transform.ScaleBy(2),
		transform.RotateXBy(-math.Pi/2),
		transform.TranslateBy(vector.Vec3{-0.5, 0, -0.6}),
	)
	v := place(vector.Vec3{0.5, 0, 1.6})
	fmt.Printf("%.3f %.3f %.3f\n", v[0], v[1], v[2])
	// Output: 0.000 2.000 0.000
}

// ExampleTriangulate fans a square into two triangles.
func ExampleTriangulate() {
	tris, _ := transform.Triangulate([]vector.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}})
	fmt.Println(len(tris))
	// Output: 2
}
