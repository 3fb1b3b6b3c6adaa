// SPDX-License-Identifier: MIT

// Package transform provides geometric transforms over vector.Vec3 and the
// combinators that build larger transforms from small ones.
//
// A Transform is a pure function Vec3 → Vec3. The package offers:
//
//	rotate.go      : Rotate2D, RotateX, RotateY, RotateZ
//	stretch.go     : Stretch, CubeStretch
//	combinators.go : Compose, Curry2 and the curried RotateXBy, ScaleBy, ...
//	polygon.go     : PolygonMap, Triangulate
//	linear.go      : Linear (an operator from the images of e₁, e₂, e₃),
//	                 StandardBasisImages, MatrixTransform, Apply
//
// Conventions:
//   - Angles are radians. Coordinates are right-handed and a positive
//     rotation is counter-clockwise when looking down the axis toward the
//     origin, so RotateY(π/2, (1, 0, 0)) = (0, 0, −1).
//   - Compose applies right to left, as in mathematics:
//     Compose(f, g)(x) = f(g(x)).
//   - Nothing here mutates its input; PolygonMap allocates a new polyhedron.
//
// Errors are the vector sentinels (ErrShape, ErrDomain) wrapped with a
// method tag; match them with errors.Is.
package transform
