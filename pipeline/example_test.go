// SPDX-License-Identifier: MIT
package pipeline_test

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/pipeline"
	"github.com/katalvlaran/lvgeom/vector"
)

func ExampleSpec_Compile() {
	s, err := pipeline.Parse([]byte(`
steps:
  - op: scale
    factor: 2
  - op: translate
    by: [1, 0, 0]
`))
	if err != nil {
		fmt.Println(err)
		return
	}
	t, err := s.Compile()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(t(vector.Vec3{1, 1, 1}))
	// Output: [3 2 2]
}
