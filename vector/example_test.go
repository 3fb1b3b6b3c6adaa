// SPDX-License-Identifier: MIT
package vector_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvgeom/vector"
)

// ExampleAdd sums two vectors of equal arity.
func ExampleAdd() {
	v, err := vector.Add(vector.Vector{1, 2, 3}, vector.Vector{4, -5, 6})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(v)
	// Output: [5 -3 9]
}

// ExampleCross shows the cross product and the shape error for non-3-D input.
func ExampleCross() {
	c, _ := vector.Cross(vector.Vector{1, 2, 3}, vector.Vector{4, 5, 6})
	fmt.Println(c)

	_, err := vector.Cross(vector.Vector{1, 2}, vector.Vector{3, 4})
	fmt.Println(errors.Is(err, vector.ErrShape))
	// Output:
	// [-3 6 -3]
	// true
}

// ExampleMultiplyMatrixVector weights the rows of m by the components of v.
func ExampleMultiplyMatrixVector() {
	m := vector.Matrix{{1, 3, 5}, {10, 13, 15}, {29, 33, 13}}
	v, _ := vector.MultiplyMatrixVector(m, vector.Vector{1, 3, 5})
	fmt.Println(v)
	// Output: [176 207 115]
}

// ExampleNormal computes the unnormalized normal of a face.
func ExampleNormal() {
	face, _ := vector.AsTriangle([][]int{{1, 10, -22}, {11, 13, 16}, {21, 23, 26}})
	fmt.Println(vector.Normal(face))
	// Output: [-350 280 70]
}

// ExampleAsMatrix shows the arity check on ragged rows.
func ExampleAsMatrix() {
	_, err := vector.AsMatrix([][]float64{{1, 2}, {3}})
	fmt.Println(err)
	// Output: AsMatrix: Invalid vector length 1: vector: shape mismatch
}
