// SPDX-License-Identifier: MIT

package transform

import "github.com/katalvlaran/lvgeom/vector"

// PolygonMap returns a new polyhedron with t applied to every vertex of
// every face. Face count and per-face vertex order are kept; p is not
// modified. t must not be nil.
//
// Complexity: O(F) calls of t, one allocation.
func PolygonMap(t Transform, p vector.Polygon) vector.Polygon {
	out := make(vector.Polygon, len(p))
	for i, face := range p {
		out[i] = vector.Triangle{t(face[0]), t(face[1]), t(face[2])}
	}

	return out
}

// Triangulate fans the ring vs from vs[0]: for i in 1..n−2 it yields
// (vs[0], vs[i+1], vs[i]). A ring of n vertices gives n−2 triangles.
//
// The result covers the polygon only for planar, convex rings; for
// non-convex rings the fan overlaps itself.
//
// Errors: ErrShape when len(vs) < 3.
func Triangulate(vs []vector.Vec3) (vector.Polygon, error) {
	if len(vs) < minRing {
		return nil, ringError(methodTriangulate, len(vs))
	}
	out := make(vector.Polygon, 0, len(vs)-2)
	for i := 1; i < len(vs)-1; i++ {
		out = append(out, vector.Triangle{vs[0], vs[i+1], vs[i]})
	}

	return out, nil
}
