// SPDX-License-Identifier: MIT
// Package vector_test contains test helpers.
//
// Purpose:
//   - Deterministic random fixtures for property tests (fixed seed).
//   - Tolerance assertions at the package's 1e-9 absolute policy.

package vector_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvgeom/vector"
	"github.com/stretchr/testify/require"
)

const (
	tol       = vector.DefaultTolerance
	seed      = 42
	propRuns  = 200
	unitRange = 1.0
)

// randVector returns an n-D vector with components in [-unitRange, unitRange).
func randVector(rng *rand.Rand, n int) vector.Vector {
	v := make(vector.Vector, n)
	for i := range v {
		v[i] = (rng.Float64()*2 - 1) * unitRange
	}

	return v
}

// randVec3 returns a Vec3 with components in [-unitRange, unitRange).
func randVec3(rng *rand.Rand) vector.Vec3 {
	v := randVector(rng, 3)

	return vector.Vec3{v[0], v[1], v[2]}
}

// requireClose fails the test unless got and want agree within tol.
func requireClose(t *testing.T, want, got vector.Vector, msgAndArgs ...any) {
	t.Helper()
	ok, err := vector.AllClose(got, want, 0, tol)
	require.NoError(t, err)
	require.Truef(t, ok, "want %v, got %v %v", want, got, msgAndArgs)
}

// vec unwraps a (Vector, error) pair: vec(t)(vector.Add(a, b)).
func vec(t *testing.T) func(vector.Vector, error) vector.Vector {
	return func(v vector.Vector, err error) vector.Vector {
		t.Helper()
		require.NoError(t, err)

		return v
	}
}

// num unwraps a (float64, error) pair: num(t)(vector.Dot(u, v)).
func num(t *testing.T) func(float64, error) float64 {
	return func(x float64, err error) float64 {
		t.Helper()
		require.NoError(t, err)

		return x
	}
}
