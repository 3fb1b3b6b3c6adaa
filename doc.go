// SPDX-License-Identifier: MIT

// Package lvgeom is a small, dependency-light toolkit for vector algebra and
// 3-D geometric transforms.
//
// Packages:
//
//	vector/     : Vector, Vec2, Vec3, Triangle, Matrix, Polygon; constructors,
//	              algebra (add, dot, cross, unit, normal, …) and conversions
//	matrix/     : dense row-major matrices: Mul, Transpose, MatVec, Inverse
//	transform/  : rotations, stretches, Compose/Curry2, PolygonMap,
//	              Triangulate and linear operators from basis images
//	solid/      : the five Platonic solids as outward-oriented triangle meshes
//	model/      : OFF mesh reader/writer, load-time placement, face shading
//	pipeline/   : transform pipelines described in YAML
//	pointcloud/ : PCD import/export of vertex sets
//	lvlog/      : Logger seam with a log/slog adapter
//
// Numeric conventions:
//
//   - float64 everywhere; integer input is widened by the generic
//     constructors in package vector.
//   - Angles are radians, coordinates are right-handed.
//   - Errors are sentinels wrapped with a method tag; match with errors.Is.
//
// The core (vector, transform) never performs I/O and never panics on
// user input. See examples/ for runnable walkthroughs.
package lvgeom
