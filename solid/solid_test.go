// SPDX-License-Identifier: MIT
package solid_test

import (
	"testing"

	"github.com/katalvlaran/lvgeom/solid"
	"github.com/katalvlaran/lvgeom/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func TestNew_Counts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      solid.Name
		triangles int
		vertices  int
		faces     int
	}{
		{solid.Tetrahedron, 4, 4, 4},
		{solid.Cube, 12, 8, 6},
		{solid.Octahedron, 8, 6, 8},
		{solid.Dodecahedron, 36, 20, 12},
		{solid.Icosahedron, 20, 12, 20},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name.String(), func(t *testing.T) {
			t.Parallel()

			p, err := solid.New(tc.name)
			require.NoError(t, err)
			assert.Len(t, p, tc.triangles)
			assert.Len(t, vector.Vertices(p), tc.vertices)

			m, err := solid.MeshOf(tc.name)
			require.NoError(t, err)
			assert.Len(t, m.Vertices, tc.vertices)
			assert.Len(t, m.Faces, tc.faces)
		})
	}
}

func TestNew_OutwardAndClosed(t *testing.T) {
	t.Parallel()

	for _, name := range solid.All {
		name := name
		t.Run(name.String(), func(t *testing.T) {
			t.Parallel()

			p, err := solid.New(name)
			require.NoError(t, err)

			var area vector.Vec3
			for _, tri := range p {
				n := vector.Normal(tri)
				centroid := tri[0].Add(tri[1]).Add(tri[2])
				assert.Greater(t, n.Dot(centroid), 0.0, "face %v points inward", tri)
				area = area.Add(n)
			}
			// A closed, consistently oriented surface has zero vector area.
			assert.True(t, area.ApproxEqual(vector.Vec3{}, tol), "vector area %v", area)
		})
	}
}

func TestNew_VerticesOnSphere(t *testing.T) {
	t.Parallel()

	for _, name := range solid.All {
		p, err := solid.New(name)
		require.NoError(t, err)

		vs := vector.Vertices(p)
		r := vs[0].Length()
		for _, v := range vs {
			assert.InDelta(t, r, v.Length(), tol, "%s: %v", name, v)
		}
	}
}

func TestDodecahedron_RegularEdges(t *testing.T) {
	t.Parallel()

	m, err := solid.MeshOf(solid.Dodecahedron)
	require.NoError(t, err)

	edge := m.Vertices[m.Faces[0][0]].Sub(m.Vertices[m.Faces[0][1]]).Length()
	for _, ring := range m.Faces {
		require.Len(t, ring, 5)
		for i := range ring {
			a, b := m.Vertices[ring[i]], m.Vertices[ring[(i+1)%len(ring)]]
			assert.InDelta(t, edge, a.Sub(b).Length(), tol)
		}
	}
}

func TestMeshOf_ReturnsCopy(t *testing.T) {
	t.Parallel()

	m, err := solid.MeshOf(solid.Cube)
	require.NoError(t, err)
	m.Vertices[0] = vector.Vec3{99, 99, 99}
	m.Faces[0][0] = 7

	again, err := solid.MeshOf(solid.Cube)
	require.NoError(t, err)
	assert.Equal(t, vector.Vec3{-1, -1, -1}, again.Vertices[0])
	assert.NotEqual(t, m.Faces[0], again.Faces[0])
}

func TestUnknownSolid(t *testing.T) {
	t.Parallel()

	_, err := solid.New(solid.Name(42))
	assert.ErrorIs(t, err, solid.ErrUnknownSolid)
	_, err = solid.MeshOf(solid.Name(-1))
	assert.ErrorIs(t, err, solid.ErrUnknownSolid)
	assert.Equal(t, "Unknown", solid.Name(42).String())
}
