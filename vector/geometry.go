// SPDX-License-Identifier: MIT
// Package: vector
//
// Directional geometry: cross product, angles, projections, normalization
// and face normals.
//
// Numeric policy:
//   - AngleBetween clamps the cosine into [−1, 1] before acos. It is the only
//     silent correction in the package and exists to absorb rounding drift
//     on (near-)parallel vectors, which would otherwise leave acos's domain.
//   - Directions are normalized by max|vᵢ| before measuring, so every
//     nonzero finite vector has one, whatever its magnitude.
//   - A zero-length vector used as a direction fails with ErrDomain.

package vector

import "math"

const (
	methodCross        = "Cross"
	methodAngleBetween = "AngleBetween"
	methodComponent    = "Component"
	methodUnit         = "Unit"
)

// dim3 is the only arity the cross product is defined for.
const dim3 = 3

// Cross returns u × v = (uᵧv_z − u_zvᵧ, u_zv_x − u_xv_z, u_xvᵧ − uᵧv_x).
//
// Errors:
//   - ErrShape unless both operands are 3-D.
//   - ErrDomain on a non-finite component.
func Cross(u, v Vector) (Vector, error) {
	d, err := ValidateSameArity(u, v)
	if err != nil {
		return nil, vectorErrorf(methodCross, err)
	}
	if d != dim3 {
		return nil, lengthError(methodCross, d)
	}
	c := Vec3{u[0], u[1], u[2]}.Cross(Vec3{v[0], v[1], v[2]})

	return c.Vector(), nil
}

// AngleBetween returns the angle in [0, π] between u and v:
//
//	acos(clamp((u/|u|)·(v/|v|), −1, 1))
//
// Both operands are normalized before the dot product, so the result is
// defined for every nonzero finite pair regardless of magnitude.
//
// Errors: ErrShape (arity mismatch), ErrDomain (zero-length operand or
// non-finite component).
func AngleBetween(u, v Vector) (float64, error) {
	if _, err := ValidateSameArity(u, v); err != nil {
		return 0, vectorErrorf(methodAngleBetween, err)
	}
	nu, okU := normalize(u)
	nv, okV := normalize(v)
	if !okU || !okV {
		return 0, vectorErrorf(methodAngleBetween, ErrDomain)
	}

	return math.Acos(clamp(dot(nu, nv), -1, 1)), nil
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}

// Component returns the scalar projection of v onto direction d:
// v·(d/|d|).
//
// Errors: ErrShape (arity mismatch), ErrDomain (|d| = 0 or non-finite).
func Component(v, d Vector) (float64, error) {
	if _, err := ValidateSameArity(v, d); err != nil {
		return 0, vectorErrorf(methodComponent, err)
	}
	nd, ok := normalize(d)
	if !ok {
		return 0, vectorErrorf(methodComponent, ErrDomain)
	}

	return dot(v, nd), nil
}

// To2DProjection drops the z axis: (Component(v, e_x), Component(v, e_y)).
// v is assumed finite; use AsVector3D to validate untrusted input.
func To2DProjection(v Vec3) Vec2 {
	return Vec2{v.Dot(E1) / E1.Length(), v.Dot(E2) / E2.Length()}
}

// Unit returns v / |v|, the unit vector with the direction of v.
//
// Errors: ErrShape (empty v), ErrDomain (|v| = 0 or non-finite).
func Unit(v Vector) (Vector, error) {
	if err := ValidateVector(v); err != nil {
		return nil, vectorErrorf(methodUnit, err)
	}
	u, ok := normalize(v)
	if !ok {
		return nil, vectorErrorf(methodUnit, ErrDomain)
	}

	return u, nil
}

// Normal returns (b − a) × (c − a) for the face (a, b, c). The result is
// not normalized; its direction follows the right-hand rule for the given
// vertex order, and a degenerate face yields the zero vector.
// The face is assumed finite: non-finite vertices propagate NaN or ±Inf.
func Normal(face Triangle) Vec3 {
	a, b, c := face[0], face[1], face[2]

	return b.Sub(a).Cross(c.Sub(a))
}
