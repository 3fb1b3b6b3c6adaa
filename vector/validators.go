// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Single source of truth for shape and finiteness checks.
//   - Validators return the plain sentinel (no method tag) so call sites wrap
//     uniformly with their own tag.
//
// Determinism & Performance:
//   - Pure, allocation-free, O(n) in the number of components inspected.

package vector

import "math"

// ValidateFinite ensures every component of v is finite.
// Returns ErrDomain on the first NaN or ±Inf.
func ValidateFinite(v Vector) error {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return ErrDomain
		}
	}

	return nil
}

// ValidateVector ensures v has arity >= 1 and only finite components.
func ValidateVector(v Vector) error {
	if len(v) == 0 {
		return ErrShape
	}

	return ValidateFinite(v)
}

// ValidateSameArity ensures every operand is a valid vector of the same
// arity as the first one. Returns the common arity.
//
// Errors: ErrEmpty (no operands), ErrShape, ErrDomain.
func ValidateSameArity(vs ...Vector) (int, error) {
	if len(vs) == 0 {
		return 0, ErrEmpty
	}
	d := len(vs[0])
	for _, v := range vs {
		if len(v) != d {
			return 0, ErrShape
		}
	}
	for _, v := range vs {
		if err := ValidateVector(v); err != nil {
			return 0, err
		}
	}

	return d, nil
}

// ValidateNonZero ensures v has a strictly positive length.
// Assumes v has already passed ValidateVector.
func ValidateNonZero(v Vector) error {
	if Length(v) == 0 {
		return ErrDomain
	}

	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
