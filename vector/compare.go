// SPDX-License-Identifier: MIT
// Package: vector
//
// Tolerance comparison for vectors.

package vector

import "math"

const methodAllClose = "AllClose"

// DefaultTolerance is the absolute tolerance used for unit-scale inputs.
const DefaultTolerance = 1e-9

// AllClose reports whether |uᵢ − vᵢ| <= atol + rtol·|vᵢ| for every i.
//
// Policy:
//   - u and v must share arity (ErrShape otherwise).
//   - rtol and atol are used by absolute value; NaN/Inf tolerances fail with
//     ErrDomain.
//   - NaN never compares close; +Inf is close to +Inf only.
//
// Complexity: O(n), early exit on the first violation.
func AllClose(u, v Vector, rtol, atol float64) (bool, error) {
	if !isFinite(rtol) || !isFinite(atol) {
		return false, vectorErrorf(methodAllClose, ErrDomain)
	}
	if len(u) != len(v) {
		return false, lengthError(methodAllClose, len(v))
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	for i := range u {
		a, b := u[i], v[i]
		if a == b {
			continue
		}
		if math.Abs(a-b) > atol+rtol*math.Abs(b) || math.IsNaN(a-b) {
			return false, nil
		}
	}

	return true, nil
}

// ApproxEqual reports whether every component of v and o differs by at most tol.
func (v Vec3) ApproxEqual(o Vec3, tol float64) bool {
	for i := range v {
		if !(math.Abs(v[i]-o[i]) <= tol) {
			return false
		}
	}

	return true
}

// ApproxEqual reports whether every component of v and o differs by at most tol.
func (v Vec2) ApproxEqual(o Vec2, tol float64) bool {
	return math.Abs(v[0]-o[0]) <= tol && math.Abs(v[1]-o[1]) <= tol
}
