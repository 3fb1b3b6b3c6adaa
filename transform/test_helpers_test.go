// SPDX-License-Identifier: MIT
package transform_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvgeom/vector"
	"github.com/stretchr/testify/require"
)

const (
	tol      = vector.DefaultTolerance
	seed     = 42
	propRuns = 200
)

func randVec3(rng *rand.Rand) vector.Vec3 {
	return vector.Vec3{rng.Float64()*2 - 1, rng.Float64()*2 - 1, rng.Float64()*2 - 1}
}

func randPolygon(rng *rand.Rand, faces int) vector.Polygon {
	p := make(vector.Polygon, faces)
	for i := range p {
		p[i] = vector.Triangle{randVec3(rng), randVec3(rng), randVec3(rng)}
	}

	return p
}

func requireVec3(t *testing.T, want, got vector.Vec3) {
	t.Helper()
	require.Truef(t, want.ApproxEqual(got, tol), "want %v, got %v", want, got)
}

func requirePolygon(t *testing.T, want, got vector.Polygon) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		for j := range want[i] {
			requireVec3(t, want[i][j], got[i][j])
		}
	}
}
