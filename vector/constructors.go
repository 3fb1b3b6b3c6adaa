// SPDX-License-Identifier: MIT
// Package: vector
//
// Constructors are the single gatekeeper for shape invariants: every value
// produced here has the advertised arity and only finite components, so the
// algebra downstream can rely on it.
//
// Determinism:
//   - Inputs are read in order; extra trailing components are ignored by the
//     fixed-arity constructors (AsVector2D reads the first two numbers).
//   - Rows and faces keep their input order.

package vector

// method tags (no magic strings at call sites)
const (
	methodAsVector2D = "AsVector2D"
	methodAsVector3D = "AsVector3D"
	methodAsVector   = "AsVector"
	methodAsTriangle = "AsTriangle"
	methodAsMatrix3D = "AsMatrix3D"
	methodAsMatrix   = "AsMatrix"
	methodAsPolygons = "AsPolygons"
)

// widen converts the first n numbers of s to float64 and checks finiteness.
func widen[T Number](method string, s []T, n int) ([]float64, error) {
	if len(s) < n {
		return nil, lengthError(method, len(s))
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		x := float64(s[i])
		if !isFinite(x) {
			return nil, vectorErrorf(method, ErrDomain)
		}
		out[i] = x
	}

	return out, nil
}

// AsVector2D reads the first two numbers of s as (s₀, s₁).
//
// Errors:
//   - ErrShape when len(s) < 2.
//   - ErrDomain when one of the two numbers is NaN or ±Inf.
func AsVector2D[T Number](s []T) (Vec2, error) {
	xs, err := widen(methodAsVector2D, s, 2)
	if err != nil {
		return Vec2{}, err
	}

	return Vec2{xs[0], xs[1]}, nil
}

// AsVector3D reads the first three numbers of s as (s₀, s₁, s₂).
// Errors mirror AsVector2D.
func AsVector3D[T Number](s []T) (Vec3, error) {
	xs, err := widen(methodAsVector3D, s, 3)
	if err != nil {
		return Vec3{}, err
	}

	return Vec3{xs[0], xs[1], xs[2]}, nil
}

// AsVector materializes every number of s into an N-D Vector (N = len(s) >= 1).
func AsVector[T Number](s []T) (Vector, error) {
	if len(s) == 0 {
		return nil, lengthError(methodAsVector, 0)
	}
	xs, err := widen(methodAsVector, s, len(s))
	if err != nil {
		return nil, err
	}

	return Vector(xs), nil
}

// AsTriangle builds a Triangle from the first three items of seq, each
// converted with AsVector3D.
func AsTriangle[T Number](seq [][]T) (Triangle, error) {
	if len(seq) < 3 {
		return Triangle{}, lengthError(methodAsTriangle, len(seq))
	}
	var t Triangle
	for i := 0; i < 3; i++ {
		v, err := AsVector3D(seq[i])
		if err != nil {
			return Triangle{}, vectorErrorf(methodAsTriangle, err)
		}
		t[i] = v
	}

	return t, nil
}

// AsMatrix3D converts every row of seq with AsVector3D, preserving order.
// An empty seq yields an empty (non-nil) Matrix3D.
func AsMatrix3D[T Number](seq [][]T) (Matrix3D, error) {
	out := make(Matrix3D, 0, len(seq))
	for _, row := range seq {
		v, err := AsVector3D(row)
		if err != nil {
			return nil, vectorErrorf(methodAsMatrix3D, err)
		}
		out = append(out, v)
	}

	return out, nil
}

// AsMatrix converts seq into a Matrix whose rows all share the arity d of
// the first row.
//
// Errors:
//   - ErrEmpty when seq has no rows.
//   - ErrShape ("Invalid vector length k") when row k's arity differs from d,
//     or when the first row is empty.
//   - ErrDomain on a non-finite entry.
func AsMatrix[T Number](seq [][]T) (Matrix, error) {
	if len(seq) == 0 {
		return nil, vectorErrorf(methodAsMatrix, ErrEmpty)
	}
	d := len(seq[0])
	out := make(Matrix, 0, len(seq))
	for _, row := range seq {
		if len(row) != d {
			return nil, lengthError(methodAsMatrix, len(row))
		}
		v, err := AsVector(row)
		if err != nil {
			return nil, vectorErrorf(methodAsMatrix, err)
		}
		out = append(out, v)
	}

	return out, nil
}

// AsPolygons applies AsTriangle to each element of seq.
// An empty seq is rejected with ErrEmpty: a polyhedron has at least one face.
func AsPolygons[T Number](seq [][][]T) (Polygon, error) {
	if len(seq) == 0 {
		return nil, vectorErrorf(methodAsPolygons, ErrEmpty)
	}
	out := make(Polygon, 0, len(seq))
	for _, face := range seq {
		t, err := AsTriangle(face)
		if err != nil {
			return nil, vectorErrorf(methodAsPolygons, err)
		}
		out = append(out, t)
	}

	return out, nil
}

// Vertices returns the distinct vertices of every face of p.
// Equality is exact component equality (no tolerance). Vertices are listed
// in order of first appearance.
func Vertices(p Polygon) []Vec3 {
	seen := make(map[Vec3]struct{}, len(p)*3)
	out := make([]Vec3, 0, len(p)*3)
	for _, face := range p {
		for _, v := range face {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}

	return out
}
