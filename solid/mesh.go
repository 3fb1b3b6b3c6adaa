// SPDX-License-Identifier: MIT
// Package: solid
//
// Mesh assembly: duals, ring orientation and triangulation.

package solid

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvgeom/transform"
	"github.com/katalvlaran/lvgeom/vector"
)

var meshes = buildMeshes()

func buildMeshes() map[Name]Mesh {
	ico := icosahedron()
	out := map[Name]Mesh{
		Tetrahedron:  tetrahedron(),
		Cube:         cube(),
		Octahedron:   octahedron(),
		Icosahedron:  ico,
		Dodecahedron: dual(ico),
	}
	for _, m := range out {
		for i, ring := range m.Faces {
			m.Faces[i] = orientRing(m.Vertices, ring)
		}
	}

	return out
}

// dual places one vertex at the centroid of every face of m and builds one
// ring per vertex of m from the faces around it, sorted by angle about the
// vertex direction.
func dual(m Mesh) Mesh {
	var d Mesh
	d.Vertices = make([]vector.Vec3, len(m.Faces))
	around := make([][]int, len(m.Vertices))
	for f, ring := range m.Faces {
		var c vector.Vec3
		for _, vi := range ring {
			c = c.Add(m.Vertices[vi])
			around[vi] = append(around[vi], f)
		}
		d.Vertices[f] = c.Scale(1 / float64(len(ring)))
	}

	for vi, faces := range around {
		axis := m.Vertices[vi]
		ref := d.Vertices[faces[0]]
		u := ref.Sub(axis.Scale(ref.Dot(axis) / axis.Dot(axis)))
		w := axis.Cross(u)
		angle := make(map[int]float64, len(faces))
		for _, f := range faces {
			c := d.Vertices[f]
			angle[f] = math.Atan2(c.Dot(w), c.Dot(u))
		}
		ring := append([]int(nil), faces...)
		sort.Slice(ring, func(i, j int) bool { return angle[ring[i]] < angle[ring[j]] })
		d.Faces = append(d.Faces, ring)
	}

	return d
}

// orientRing reverses ring when its fan would face the origin. Solids are
// convex and centred, so outward means a positive dot with the centroid.
func orientRing(vs []vector.Vec3, ring []int) []int {
	a, b, c := vs[ring[0]], vs[ring[2]], vs[ring[1]] // first fan triangle
	centroid := a.Add(b).Add(c)
	if vector.Normal(vector.Triangle{a, b, c}).Dot(centroid) >= 0 {
		return ring
	}
	rev := make([]int, len(ring))
	for i, vi := range ring {
		rev[len(ring)-1-i] = vi
	}

	return rev
}

// MeshOf returns a copy of the indexed mesh of the named solid.
//
// Errors: ErrUnknownSolid for a Name outside the enum.
func MeshOf(name Name) (Mesh, error) {
	m, ok := meshes[name]
	if !ok {
		return Mesh{}, solidErrorf(methodMesh, name, ErrUnknownSolid)
	}
	out := Mesh{
		Vertices: append([]vector.Vec3(nil), m.Vertices...),
		Faces:    make([][]int, len(m.Faces)),
	}
	for i, ring := range m.Faces {
		out.Faces[i] = append([]int(nil), ring...)
	}

	return out, nil
}

// Polygon triangulates every ring of m.
func (m Mesh) Polygon() (vector.Polygon, error) {
	var p vector.Polygon
	ring := make([]vector.Vec3, 0, 5)
	for _, face := range m.Faces {
		ring = ring[:0]
		for _, vi := range face {
			ring = append(ring, m.Vertices[vi])
		}
		tris, err := transform.Triangulate(ring)
		if err != nil {
			return nil, err
		}
		p = append(p, tris...)
	}

	return p, nil
}

// New returns the triangulated surface of the named solid.
//
// Errors: ErrUnknownSolid for a Name outside the enum.
func New(name Name) (vector.Polygon, error) {
	m, ok := meshes[name]
	if !ok {
		return nil, solidErrorf(methodNew, name, ErrUnknownSolid)
	}
	p, err := m.Polygon()
	if err != nil {
		return nil, solidErrorf(methodNew, name, err)
	}

	return p, nil
}
