// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/katalvlaran/lvgeom/transform"
	"github.com/katalvlaran/lvgeom/vector"
)

// DefaultLight is the light direction used by the shading helpers.
var DefaultLight = vector.Vec3{1, 2, 3}

// Model is an indexed mesh plus its triangulated surface.
type Model struct {
	ID        uuid.UUID
	Name      string
	Vertices  []vector.Vec3
	Faces     [][]int
	Triangles vector.Polygon
}

// New builds a Model from vertices and index rings. The configured
// transform is applied to a copy of vertices, then every ring is fan
// triangulated.
//
// Errors: ErrFaceIndex, vector.ErrShape (ring shorter than 3),
// vector.ErrDomain (non-finite vertex).
func New(vertices []vector.Vec3, faces [][]int, opts ...Option) (*Model, error) {
	o := resolve(opts)
	m, err := build(vertices, faces, o)
	if err != nil {
		return nil, modelErrorf(methodNew, err)
	}

	return m, nil
}

func build(vertices []vector.Vec3, faces [][]int, o Options) (*Model, error) {
	m := &Model{
		ID:       o.ID,
		Name:     o.Name,
		Vertices: make([]vector.Vec3, len(vertices)),
		Faces:    make([][]int, len(faces)),
	}
	for i, v := range vertices {
		if err := vector.ValidateFinite(v[:]); err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		m.Vertices[i] = o.Transform(v)
	}

	ring := make([]vector.Vec3, 0, 4)
	for fi, face := range faces {
		ring = ring[:0]
		for _, vi := range face {
			if vi < 0 || vi >= len(m.Vertices) {
				return nil, fmt.Errorf("face %d: index %d of %d vertices: %w", fi, vi, len(m.Vertices), ErrFaceIndex)
			}
			ring = append(ring, m.Vertices[vi])
		}
		tris, err := transform.Triangulate(ring)
		if err != nil {
			return nil, fmt.Errorf("face %d: %w", fi, err)
		}
		m.Faces[fi] = append([]int(nil), face...)
		m.Triangles = append(m.Triangles, tris...)
	}
	o.Logger.Debug("model built", "name", m.Name, "id", m.ID,
		"vertices", len(m.Vertices), "faces", len(m.Faces), "triangles", len(m.Triangles))

	return m, nil
}

// EdgeCount returns the number of distinct undirected edges over all rings.
func (m *Model) EdgeCount() int {
	type edge struct{ a, b int }
	seen := make(map[edge]struct{})
	for _, face := range m.Faces {
		for i, a := range face {
			b := face[(i+1)%len(face)]
			if a > b {
				a, b = b, a
			}
			seen[edge{a, b}] = struct{}{}
		}
	}

	return len(seen)
}

// Bounds returns the componentwise minimum and maximum vertex.
// An empty model yields two zero vectors.
func (m *Model) Bounds() (lo, hi vector.Vec3) {
	if len(m.Vertices) == 0 {
		return lo, hi
	}
	lo, hi = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		for i := range v {
			lo[i] = math.Min(lo[i], v[i])
			hi[i] = math.Max(hi[i], v[i])
		}
	}

	return lo, hi
}

// Map returns a copy of m with t applied to every vertex and triangle.
// ID, Name and Faces are kept.
func (m *Model) Map(t transform.Transform) *Model {
	out := &Model{
		ID:        m.ID,
		Name:      m.Name,
		Vertices:  make([]vector.Vec3, len(m.Vertices)),
		Faces:     make([][]int, len(m.Faces)),
		Triangles: transform.PolygonMap(t, m.Triangles),
	}
	for i, v := range m.Vertices {
		out.Vertices[i] = t(v)
	}
	for i, f := range m.Faces {
		out.Faces[i] = append([]int(nil), f...)
	}

	return out
}

// TeapotPlacement is the load-time placement of the Utah teapot OFF file:
// translate by (−0.5, 0, −0.6), turn upright about x by −π/2, scale by 2.
func TeapotPlacement() transform.Transform {
	return transform.Chain(
		transform.ScaleBy(2),
		transform.RotateXBy(-math.Pi/2),
		transform.TranslateBy(vector.Vec3{-0.5, 0, -0.6}),
	)
}
