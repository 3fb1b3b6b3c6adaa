// SPDX-License-Identifier: MIT
package vector_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvgeom/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLength(t *testing.T) {
	t.Parallel()

	assert.Equal(t, math.Sqrt(5), vector.Length(vector.Vector{1, 2}))
	assert.Equal(t, math.Sqrt(14), vector.Length(vector.Vector{1, -2, 3}))
	assert.Equal(t, 0.0, vector.Length(vector.Vector{0, 0, 0}))
}

func TestAdd(t *testing.T) {
	t.Parallel()

	got, err := vector.Add(vector.Vector{1, 2}, vector.Vector{3, 4})
	require.NoError(t, err)
	assert.Equal(t, vector.Vector{4, 6}, got)

	got, err = vector.Add(vector.Vector{1, 2, 3}, vector.Vector{4, -5, 6})
	require.NoError(t, err)
	assert.Equal(t, vector.Vector{5, -3, 9}, got)
}

func TestAdd_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		vs   []vector.Vector
		want error
	}{
		{"no operands", nil, vector.ErrEmpty},
		{"arity mismatch", []vector.Vector{{1, 2}, {1, 2, 3}}, vector.ErrShape},
		{"empty operand", []vector.Vector{{}, {}}, vector.ErrShape},
		{"nan", []vector.Vector{{1, math.NaN()}, {1, 2}}, vector.ErrDomain},
		{"shape before domain", []vector.Vector{{math.NaN()}, {1, 2}}, vector.ErrShape},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := vector.Add(tc.vs...)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestAdd_CommutativeAssociative(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(seed))

	for i := 0; i < propRuns; i++ {
		n := 1 + rng.Intn(6)
		a, b, c := randVector(rng, n), randVector(rng, n), randVector(rng, n)

		requireClose(t, vec(t)(vector.Add(a, b)), vec(t)(vector.Add(b, a)))

		ab := vec(t)(vector.Add(a, b))
		bc := vec(t)(vector.Add(b, c))
		requireClose(t, vec(t)(vector.Add(ab, c)), vec(t)(vector.Add(a, bc)))
	}
}

func TestSubtract(t *testing.T) {
	t.Parallel()

	got, err := vector.Subtract(vector.Vector{1, 2}, vector.Vector{3, 4})
	require.NoError(t, err)
	assert.Equal(t, vector.Vector{-2, -2}, got)

	got, err = vector.Subtract(vector.Vector{1, 2, 3}, vector.Vector{4, -5, 6})
	require.NoError(t, err)
	assert.Equal(t, vector.Vector{-3, 7, -3}, got)

	got, err = vector.Subtract(vector.Vector{10, 10}, vector.Vector{1, 2}, vector.Vector{3, 4})
	require.NoError(t, err)
	assert.Equal(t, vector.Vector{6, 4}, got, "left fold")

	a := vector.Vector{1.5, -2, 7}
	got, err = vector.Subtract(a, a)
	require.NoError(t, err)
	assert.Equal(t, vector.Vector{0, 0, 0}, got)

	_, err = vector.Subtract(vector.Vector{1}, vector.Vector{1, 2})
	assert.ErrorIs(t, err, vector.ErrShape)
}

func TestSubtract_DoesNotMutate(t *testing.T) {
	t.Parallel()

	a, b := vector.Vector{5, 5}, vector.Vector{1, 2}
	_, err := vector.Subtract(a, b)
	require.NoError(t, err)
	assert.Equal(t, vector.Vector{5, 5}, a)
}

func TestTranslate(t *testing.T) {
	t.Parallel()

	off := vector.Vector{1, 1}
	got, err := vector.Translate(off, []vector.Vector{{1, 2}, {3, 4}, {0, 0}})
	require.NoError(t, err)
	assert.Equal(t, []vector.Vector{{2, 3}, {4, 5}, {1, 1}}, got)

	got, err = vector.Translate(off, nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = vector.Translate(off, []vector.Vector{{1, 2, 3}})
	assert.ErrorIs(t, err, vector.ErrShape)
}

func TestScale(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(seed))

	assert.Equal(t, vector.Vector{2, -4, 6}, vector.Scale(2, vector.Vector{1, -2, 3}))

	for i := 0; i < propRuns; i++ {
		n := 1 + rng.Intn(5)
		u, v := randVector(rng, n), randVector(rng, n)
		s := rng.Float64()*4 - 2

		assert.Equal(t, v, vector.Scale(1, v))
		requireClose(t, make(vector.Vector, n), vector.Scale(0, v))

		left := vector.Scale(s, vec(t)(vector.Add(u, v)))
		right := vec(t)(vector.Add(vector.Scale(s, u), vector.Scale(s, v)))
		requireClose(t, left, right)

		assert.InDelta(t, math.Abs(s)*vector.Length(v), vector.Length(vector.Scale(s, v)), tol)
	}
}

func TestDot(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(seed))

	d, err := vector.Dot(vector.Vector{1, 2, 3}, vector.Vector{4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, 32.0, d)

	_, err = vector.Dot(vector.Vector{1, 2}, vector.Vector{1, 2, 3})
	assert.ErrorIs(t, err, vector.ErrShape)

	for i := 0; i < propRuns; i++ {
		n := 1 + rng.Intn(5)
		u, v := randVector(rng, n), randVector(rng, n)
		assert.InDelta(t, num(t)(vector.Dot(u, v)), num(t)(vector.Dot(v, u)), tol)
		l := vector.Length(u)
		assert.InDelta(t, l*l, num(t)(vector.Dot(u, u)), tol)
	}
}

func TestDistance(t *testing.T) {
	t.Parallel()

	d, err := vector.Distance(vector.Vector{1, 1}, vector.Vector{4, 5})
	require.NoError(t, err)
	assert.Equal(t, 5.0, d)

	_, err = vector.Distance(vector.Vector{1}, vector.Vector{1, 2})
	assert.ErrorIs(t, err, vector.ErrShape)
}

func TestPerimeter(t *testing.T) {
	t.Parallel()

	square := []vector.Vector{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	p, err := vector.Perimeter(square)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, p, tol)

	triangle := []vector.Vector{{0, 0, 0}, {3, 0, 0}, {3, 4, 0}}
	p, err = vector.Perimeter(triangle)
	require.NoError(t, err)
	assert.InDelta(t, 12.0, p, tol)

	p, err = vector.Perimeter(nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p)

	_, err = vector.Perimeter([]vector.Vector{{0, 0}, {1, 1, 1}})
	assert.ErrorIs(t, err, vector.ErrShape)
}
