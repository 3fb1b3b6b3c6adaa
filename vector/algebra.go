// SPDX-License-Identifier: MIT
// Package: vector
//
// Componentwise algebra over N-D vectors.
//
// Contract:
//   - Every result is a fresh Vector; operands are never mutated.
//   - Result arity equals operand arity; mixed arities fail with ErrShape.
//   - Length and Scale are total: they propagate NaN/Inf instead of failing,
//     the other operations reject non-finite operands with ErrDomain.
//
// Determinism:
//   - Fixed component order i = 0..n-1 and operand order left to right, so
//     floating-point results are reproducible bit for bit.

package vector

import "math"

const (
	methodAdd       = "Add"
	methodSubtract  = "Subtract"
	methodTranslate = "Translate"
	methodDot       = "Dot"
	methodDistance  = "Distance"
	methodPerimeter = "Perimeter"
)

// Squares of components inside [normLo, normHi] neither overflow nor
// underflow, so Length sums them directly there and rescales otherwise.
const (
	normLo = 1e-150
	normHi = 1e150
)

// Length returns √(Σ vᵢ²).
// Finite inputs never overflow or underflow: when the largest component
// leaves [normLo, normHi] the sum is taken over vᵢ/max|vᵢ| as math.Hypot does.
// NaN propagates; an infinite component yields +Inf.
// Complexity: O(n).
func Length(v Vector) float64 {
	var m float64
	for _, x := range v {
		a := math.Abs(x)
		if math.IsNaN(a) {
			return math.NaN()
		}
		if a > m {
			m = a
		}
	}
	if m == 0 || math.IsInf(m, 1) {
		return m
	}

	var sum float64
	if m >= normLo && m <= normHi {
		for _, x := range v {
			sum += x * x
		}

		return math.Sqrt(sum)
	}
	for _, x := range v {
		r := x / m
		sum += r * r
	}

	return m * math.Sqrt(sum)
}

// normalize returns v/|v|. It divides by max|vᵢ| before measuring, so the
// result is exact in direction even when |v| itself would overflow.
// ok is false for the zero vector. v must be finite.
func normalize(v Vector) (u Vector, ok bool) {
	var m float64
	for _, x := range v {
		if a := math.Abs(x); a > m {
			m = a
		}
	}
	if m == 0 {
		return nil, false
	}
	u = make(Vector, len(v))
	for i, x := range v {
		u[i] = x / m
	}
	l := Length(u)
	for i := range u {
		u[i] /= l
	}

	return u, true
}

// Add returns the componentwise sum v₁ + … + vₖ.
//
// Errors:
//   - ErrEmpty when called with no operands.
//   - ErrShape when operand arities differ.
//   - ErrDomain on a non-finite component.
//
// Complexity: O(k·n).
func Add(vs ...Vector) (Vector, error) {
	d, err := ValidateSameArity(vs...)
	if err != nil {
		return nil, vectorErrorf(methodAdd, err)
	}

	return sum(d, vs), nil
}

// sum assumes vs has been validated to share arity d.
func sum(d int, vs []Vector) Vector {
	out := make(Vector, d)
	for _, v := range vs {
		for i := 0; i < d; i++ {
			out[i] += v[i]
		}
	}

	return out
}

// Subtract folds left with subtraction: ((v₁ − v₂) − v₃) − …
// A single operand is returned as a copy.
//
// Errors: same as Add.
func Subtract(vs ...Vector) (Vector, error) {
	d, err := ValidateSameArity(vs...)
	if err != nil {
		return nil, vectorErrorf(methodSubtract, err)
	}
	out := vs[0].Clone()
	for _, v := range vs[1:] {
		for i := 0; i < d; i++ {
			out[i] -= v[i]
		}
	}

	return out, nil
}

// Translate returns [v + off for v in vs], preserving order and arity.
// An empty vs yields an empty (non-nil) slice.
func Translate(off Vector, vs []Vector) ([]Vector, error) {
	if err := ValidateVector(off); err != nil {
		return nil, vectorErrorf(methodTranslate, err)
	}
	out := make([]Vector, 0, len(vs))
	for _, v := range vs {
		moved, err := Add(v, off)
		if err != nil {
			return nil, vectorErrorf(methodTranslate, err)
		}
		out = append(out, moved)
	}

	return out, nil
}

// Scale returns s·v.
func Scale(s float64, v Vector) Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = x * s
	}

	return out
}

// Dot returns Σ uᵢvᵢ.
//
// Errors: ErrShape (arity mismatch), ErrDomain (non-finite component).
func Dot(u, v Vector) (float64, error) {
	if _, err := ValidateSameArity(u, v); err != nil {
		return 0, vectorErrorf(methodDot, err)
	}

	return dot(u, v), nil
}

func dot(u, v Vector) float64 {
	var acc float64
	for i := range u {
		acc += u[i] * v[i]
	}

	return acc
}

// Distance returns Length(u − v).
func Distance(u, v Vector) (float64, error) {
	diff, err := Subtract(u, v)
	if err != nil {
		return 0, vectorErrorf(methodDistance, err)
	}

	return Length(diff), nil
}

// Perimeter interprets vs as a closed polyline and returns
// Σ Distance(vs[i], vs[(i+1) mod n]).
// Zero or one vertex yields 0.
func Perimeter(vs []Vector) (float64, error) {
	n := len(vs)
	var total float64
	for i := 0; i < n; i++ {
		d, err := Distance(vs[i], vs[(i+1)%n])
		if err != nil {
			return 0, vectorErrorf(methodPerimeter, err)
		}
		total += d
	}

	return total, nil
}
