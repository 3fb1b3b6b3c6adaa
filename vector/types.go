// SPDX-License-Identifier: MIT
// Package vector: value types.
//
// Design:
//   - One N-D type (Vector) carries arity at runtime; package functions check
//     it at their boundary and fail with ErrShape.
//   - Fixed-arity arrays (Vec2, Vec3) carry arity in the type system; their
//     methods are infallible and allocation-free.
//   - All types are plain values. Slices returned by this package are never
//     shared with inputs.

package vector

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any real scalar accepted by the constructors.
// Values are widened to float64 once, at construction.
type Number interface {
	constraints.Integer | constraints.Float
}

// Vector is an N-dimensional vector (N >= 1).
type Vector []float64

// Vec2 is a 2-D point or direction (x, y).
type Vec2 [2]float64

// Vec3 is a 3-D point or direction (x, y, z).
type Vec3 [3]float64

// Polar is a 2-D polar coordinate: R >= 0, Theta in radians (no canonical range).
type Polar struct {
	R     float64
	Theta float64
}

// Triangle is one face: three vertices in order. The order defines the
// outward normal through the right-hand rule (see Normal).
type Triangle [3]Vec3

// Matrix is a sequence of equal-arity row vectors.
type Matrix []Vector

// Matrix3D is a Matrix whose rows are all Vec3.
type Matrix3D []Vec3

// Polygon is a polyhedron surface: an ordered sequence of triangular faces.
type Polygon []Triangle

// Standard basis of R³.
var (
	E1 = Vec3{1, 0, 0}
	E2 = Vec3{0, 1, 0}
	E3 = Vec3{0, 0, 1}
)

// Vector returns v as a freshly allocated N-D Vector.
func (v Vec2) Vector() Vector { return Vector{v[0], v[1]} }

// X returns the first component.
func (v Vec2) X() float64 { return v[0] }

// Y returns the second component.
func (v Vec2) Y() float64 { return v[1] }

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v[0] + o[0], v[1] + o[1]} }

// Sub returns v − o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v[0] - o[0], v[1] - o[1]} }

// Scale returns s·v.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v[0] * s, v[1] * s} }

// Dot returns v·o.
func (v Vec2) Dot(o Vec2) float64 { return v[0]*o[0] + v[1]*o[1] }

// Length returns the Euclidean norm of v.
func (v Vec2) Length() float64 { return math.Hypot(v[0], v[1]) }

// Vector returns v as a freshly allocated N-D Vector.
func (v Vec3) Vector() Vector { return Vector{v[0], v[1], v[2]} }

// X returns the first component.
func (v Vec3) X() float64 { return v[0] }

// Y returns the second component.
func (v Vec3) Y() float64 { return v[1] }

// Z returns the third component.
func (v Vec3) Z() float64 { return v[2] }

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]} }

// Sub returns v − o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]} }

// Scale returns s·v.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v[0] * s, v[1] * s, v[2] * s} }

// Neg returns −v.
func (v Vec3) Neg() Vec3 { return Vec3{-v[0], -v[1], -v[2]} }

// Dot returns v·o.
func (v Vec3) Dot(o Vec3) float64 { return v[0]*o[0] + v[1]*o[1] + v[2]*o[2] }

// Cross returns v × o (right-handed).
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

// Length returns the Euclidean norm of v.
func (v Vec3) Length() float64 { return Length(v[:]) }

// Vertices returns the three vertices of t as a fresh slice.
func (t Triangle) Vertices() []Vec3 { return []Vec3{t[0], t[1], t[2]} }

// Rows returns m as a general Matrix.
func (m Matrix3D) Rows() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = row.Vector()
	}

	return out
}

// Clone returns a deep copy of v.
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	out := make(Vector, len(v))
	copy(out, v)

	return out
}

// Dim returns the arity of v.
func (v Vector) Dim() int { return len(v) }
