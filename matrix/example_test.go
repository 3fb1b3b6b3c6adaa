// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/matrix"
)

func ExampleInverse() {
	m, _ := matrix.FromRows([][]float64{{2, 0}, {0, 4}})
	inv, err := matrix.Inverse(m)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(inv)
	// Output:
	// [0.5, 0]
	// [0, 0.25]
}
