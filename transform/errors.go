// SPDX-License-Identifier: MIT
// Package transform: error wrapping.
//
// The package has no sentinels of its own. Shape and domain failures are the
// vector sentinels so that callers match one error set across layers.

package transform

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/vector"
)

const (
	methodTriangulate     = "Triangulate"
	methodMatrixTransform = "MatrixTransform"
	methodAfter           = "Linear.After"
	methodInverse         = "Linear.Inverse"
)

// minRing is the smallest vertex ring that bounds a face.
const minRing = 3

func transformErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}

// ringError reports a ring with fewer than minRing vertices.
func ringError(method string, n int) error {
	return fmt.Errorf("%s: ring of %d vertices, need %d: %w", method, n, minRing, vector.ErrShape)
}

// domainError reports a matrix kernel failure (a singular operator) as a
// domain error; the matrix sentinel stays matchable.
func domainError(method string, err error) error {
	return fmt.Errorf("%s: %w: %w", method, vector.ErrDomain, err)
}
