// SPDX-License-Identifier: MIT
// Package: solid
//
// Canonical vertex and face data for the Platonic solids.
//
// Determinism:
//   - Datasets are built once at package init and never mutated; Mesh and
//     New hand out copies.
//   - Derived face lists (icosahedron, dodecahedron) are produced in
//     lexicographic index order.

package solid

import (
	"math"

	"github.com/katalvlaran/lvgeom/vector"
)

// Name enumerates the five Platonic solids.
type Name int

// Enum values (stable ordering).
const (
	Tetrahedron  Name = iota // V=4,  F=4
	Cube                     // V=8,  F=6
	Octahedron               // V=6,  F=8
	Dodecahedron             // V=20, F=12
	Icosahedron              // V=12, F=20
)

// All lists every solid in enum order.
var All = []Name{Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron}

// String returns the solid's name, or "Unknown".
func (n Name) String() string {
	switch n {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// phi is the golden ratio.
var phi = (1 + math.Sqrt(5)) / 2

// Mesh is an indexed polyhedron: Faces hold vertex-index rings.
// Rings are ordered so that transform.Triangulate yields outward triangles.
type Mesh struct {
	Vertices []vector.Vec3
	Faces    [][]int
}

func tetrahedron() Mesh {
	return Mesh{
		Vertices: []vector.Vec3{{1, 1, 1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1}},
		Faces:    [][]int{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}},
	}
}

func cube() Mesh {
	return Mesh{
		Vertices: []vector.Vec3{
			{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
			{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
		},
		Faces: [][]int{
			{0, 1, 2, 3}, // z = −1
			{4, 5, 6, 7}, // z = +1
			{0, 1, 5, 4}, // y = −1
			{3, 2, 6, 7}, // y = +1
			{0, 3, 7, 4}, // x = −1
			{1, 2, 6, 5}, // x = +1
		},
	}
}

func octahedron() Mesh {
	m := Mesh{Vertices: []vector.Vec3{
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
	}}
	// one face per octant: pick the +/− vertex on each axis
	for x := 0; x < 2; x++ {
		for y := 2; y < 4; y++ {
			for z := 4; z < 6; z++ {
				m.Faces = append(m.Faces, []int{x, y, z})
			}
		}
	}

	return m
}

func icosahedron() Mesh {
	var m Mesh
	for _, a := range []float64{-1, 1} {
		for _, b := range []float64{-phi, phi} {
			m.Vertices = append(m.Vertices,
				vector.Vec3{0, a, b},
				vector.Vec3{a, b, 0},
				vector.Vec3{b, 0, a},
			)
		}
	}
	m.Faces = trianglesAtDistance(m.Vertices, 2)

	return m
}

// trianglesAtDistance returns every index triple i<j<k whose vertices are
// pairwise d apart.
func trianglesAtDistance(vs []vector.Vec3, d float64) [][]int {
	near := func(i, j int) bool {
		diff := vs[i].Sub(vs[j])
		return math.Abs(diff.Dot(diff)-d*d) <= vector.DefaultTolerance
	}
	var out [][]int
	for i := 0; i < len(vs); i++ {
		for j := i + 1; j < len(vs); j++ {
			if !near(i, j) {
				continue
			}
			for k := j + 1; k < len(vs); k++ {
				if near(i, k) && near(j, k) {
					out = append(out, []int{i, j, k})
				}
			}
		}
	}

	return out
}
