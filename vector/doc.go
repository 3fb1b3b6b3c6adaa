// SPDX-License-Identifier: MIT

// Package vector is the numeric core of lvgeom: strongly shaped vector
// values, their constructors and the vector algebra built on top of them.
//
// Layers (leaves first):
//
//	types.go        : Number, Vector, Vec2, Vec3, Polar, Triangle, Matrix, Matrix3D, Polygon
//	constructors.go : AsVector2D/3D, AsVector, AsTriangle, AsMatrix(3D), AsPolygons, Vertices
//	algebra.go      : Length, Add, Subtract, Translate, Scale, Dot, Distance, Perimeter, ...
//	geometry.go     : Cross, AngleBetween, Component, To2DProjection, Unit, Normal
//	linear.go       : LinearCombination, MultiplyMatrixVector
//	convert.go      : ToRadian, ToDegree, ToCartesian, ToPolar
//	compare.go      : AllClose
//
// Numeric policy:
//   - A single scalar type (float64). Integer inputs are widened once by the
//     generic constructors; NaN and ±Inf are rejected there with ErrDomain.
//   - Functions taking Vector re-validate shape and finiteness, so values
//     built by hand (Vector{...}) are held to the same contract.
//   - Vec2/Vec3 methods are infallible and assume a constructed value.
//   - Angles are radians everywhere except ToRadian/ToDegree.
//
// Errors:
//
//	ErrShape  : arity mismatch, short input, unequal matrix rows
//	ErrDomain : zero-length vector where a direction is required, non-finite input
//	ErrEmpty  : fold over nothing (Add(), LinearCombination of empty slices)
//
// All results are freshly allocated; inputs are never mutated. Every
// function is safe for concurrent use on caller-owned inputs.
package vector
