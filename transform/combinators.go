// SPDX-License-Identifier: MIT
// Package: transform
//
// Generic combinators and the curried forms of the primitive transforms.

package transform

import "github.com/katalvlaran/lvgeom/vector"

// Transform is a pure map of 3-D points.
type Transform func(vector.Vec3) vector.Vec3

// Identity returns v unchanged.
func Identity(v vector.Vec3) vector.Vec3 { return v }

// Compose returns g with g(x) = fs[0](fs[1](…fs[n−1](x)…)): the rightmost
// function is applied first. Compose() is the identity.
// Composition is associative.
func Compose[T any](fs ...func(T) T) func(T) T {
	chain := append([]func(T) T(nil), fs...)

	return func(x T) T {
		for i := len(chain) - 1; i >= 0; i-- {
			x = chain[i](x)
		}

		return x
	}
}

// Chain composes transforms. Same order as Compose: Chain(f, g)(v) = f(g(v)).
func Chain(ts ...Transform) Transform {
	fs := make([]func(vector.Vec3) vector.Vec3, len(ts))
	for i, t := range ts {
		fs[i] = t
	}

	return Compose(fs...)
}

// Curry2 turns a two-argument function into a chain of one-argument ones:
// Curry2(f)(a)(b) == f(a, b).
func Curry2[A, B, R any](f func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R { return f(a, b) }
	}
}

// RotateXBy returns the rotation about x by angle radians.
func RotateXBy(angle float64) Transform { return Curry2(RotateX)(angle) }

// RotateYBy returns the rotation about y by angle radians.
func RotateYBy(angle float64) Transform { return Curry2(RotateY)(angle) }

// RotateZBy returns the rotation about z by angle radians.
func RotateZBy(angle float64) Transform { return Curry2(RotateZ)(angle) }

// ScaleBy returns the uniform scaling v ↦ s·v.
func ScaleBy(s float64) Transform {
	return Curry2(func(s float64, v vector.Vec3) vector.Vec3 { return v.Scale(s) })(s)
}

// TranslateBy returns v ↦ v + off.
func TranslateBy(off vector.Vec3) Transform {
	return Curry2(func(off, v vector.Vec3) vector.Vec3 { return v.Add(off) })(off)
}

// StretchBy returns v ↦ Stretch(v, s[0], s[1], s[2]).
func StretchBy(s vector.Vec3) Transform {
	return func(v vector.Vec3) vector.Vec3 { return Stretch(v, s[0], s[1], s[2]) }
}

// CubeStretchOn returns v ↦ CubeStretch(v, on).
func CubeStretchOn(on Axes) Transform {
	return func(v vector.Vec3) vector.Vec3 { return CubeStretch(v, on) }
}
