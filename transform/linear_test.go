// SPDX-License-Identifier: MIT
package transform_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvgeom/matrix"
	"github.com/katalvlaran/lvgeom/transform"
	"github.com/katalvlaran/lvgeom/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply_Example(t *testing.T) {
	t.Parallel()

	assert.Equal(t, vector.Vec3{1, 1, 1}, transform.Apply(vector.E1))
	assert.Equal(t, vector.Vec3{1, 0, -1}, transform.Apply(vector.E2))
	assert.Equal(t, vector.Vec3{0, 1, 1}, transform.Apply(vector.E3))
	// 1·(1,1,1) + 2·(1,0,−1) + 3·(0,1,1)
	assert.Equal(t, vector.Vec3{3, 4, 2}, transform.Apply(vector.Vec3{1, 2, 3}))
}

func TestLinear_MatchesMultiplyMatrixVector(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(seed))

	l := transform.FromBasis(randVec3(rng), randVec3(rng), randVec3(rng))
	for i := 0; i < propRuns; i++ {
		v := randVec3(rng)
		want, err := vector.MultiplyMatrixVector(l.Matrix().Rows(), v.Vector())
		require.NoError(t, err)
		got := l.Apply(v)
		requireVec3(t, vector.Vec3{want[0], want[1], want[2]}, got)
	}
}

func TestStandardBasisImages(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(seed))

	assert.Equal(t, transform.Example, transform.StandardBasisImages(transform.Apply))

	// Rotations are linear, so sampling them on the basis reproduces them.
	rot := transform.Chain(transform.RotateXBy(0.4), transform.RotateZBy(-1.1))
	l := transform.StandardBasisImages(rot)
	for i := 0; i < propRuns; i++ {
		v := randVec3(rng)
		requireVec3(t, rot(v), l.Transform()(v))
	}
}

func TestMatrixTransform(t *testing.T) {
	t.Parallel()

	m := vector.Matrix3D{{1, 3, 5}, {10, 13, 15}, {29, 33, 13}}
	tr, err := transform.MatrixTransform(m)
	require.NoError(t, err)
	assert.Equal(t, vector.Vec3{176, 207, 115}, tr(vector.Vec3{1, 3, 5}))

	_, err = transform.MatrixTransform(m[:2])
	assert.ErrorIs(t, err, vector.ErrShape)

	_, err = transform.MatrixTransform(vector.Matrix3D{{1, 0, 0}, {0, math.NaN(), 0}, {0, 0, 1}})
	assert.ErrorIs(t, err, vector.ErrDomain)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestLinear_After(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(seed))

	k := transform.StandardBasisImages(transform.RotateXBy(0.9))
	lk, err := transform.Example.After(k)
	require.NoError(t, err)
	for i := 0; i < propRuns; i++ {
		v := randVec3(rng)
		requireVec3(t, transform.Example.Apply(k.Apply(v)), lk.Apply(v))
	}

	_, err = transform.Example.After(transform.FromBasis(vector.Vec3{math.Inf(1), 0, 0}, vector.E2, vector.E3))
	assert.ErrorIs(t, err, vector.ErrDomain)
}

func TestLinear_Inverse(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(seed))

	inv, err := transform.Example.Inverse()
	require.NoError(t, err)
	for i := 0; i < propRuns; i++ {
		v := randVec3(rng)
		requireVec3(t, v, transform.Example.Apply(inv.Apply(v)))
		requireVec3(t, v, inv.Apply(transform.Example.Apply(v)))
	}

	rot, err := transform.StandardBasisImages(transform.RotateZBy(0.7)).Inverse()
	require.NoError(t, err)
	back := transform.StandardBasisImages(transform.RotateZBy(-0.7))
	for i := range back {
		requireVec3(t, back[i], rot[i])
	}

	_, err = transform.FromBasis(vector.E1, vector.E1, vector.E3).Inverse()
	assert.ErrorIs(t, err, vector.ErrDomain)
	assert.ErrorIs(t, err, matrix.ErrSingular)

	_, err = transform.FromBasis(vector.Vec3{math.NaN(), 0, 0}, vector.E2, vector.E3).Inverse()
	assert.ErrorIs(t, err, vector.ErrDomain)
}
