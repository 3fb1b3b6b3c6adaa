// SPDX-License-Identifier: MIT
// Package: transform
//
// Linear operators on R³, described by where they send the standard basis.
//
// Convention:
//   - Linear{te1, te2, te3} maps v to v₀·te1 + v₁·te2 + v₂·te3.
//   - Matrix() returns the images as ROWS, matching the row-weighted
//     vector.MultiplyMatrixVector, so
//     MultiplyMatrixVector(l.Matrix().Rows(), v) == l.Apply(v).
//   - With that layout Apply(v) is the row vector vᵀ·L, so l.After(k) is
//     the product K·L and Inverse is the matrix inverse.

package transform

import (
	"github.com/katalvlaran/lvgeom/matrix"
	"github.com/katalvlaran/lvgeom/vector"
)

// Linear is the operator whose images of e₁, e₂, e₃ are its three entries.
type Linear [3]vector.Vec3

// FromBasis builds the operator with T(e₁)=te1, T(e₂)=te2, T(e₃)=te3.
func FromBasis(te1, te2, te3 vector.Vec3) Linear {
	return Linear{te1, te2, te3}
}

// StandardBasisImages samples t on the standard basis. For a linear t,
// StandardBasisImages(t).Apply equals t.
func StandardBasisImages(t Transform) Linear {
	return Linear{t(vector.E1), t(vector.E2), t(vector.E3)}
}

// Apply returns v₀·T(e₁) + v₁·T(e₂) + v₂·T(e₃).
func (l Linear) Apply(v vector.Vec3) vector.Vec3 {
	return l[0].Scale(v[0]).Add(l[1].Scale(v[1])).Add(l[2].Scale(v[2]))
}

// Transform returns l.Apply as a Transform.
func (l Linear) Transform() Transform { return l.Apply }

// Matrix returns the basis images as rows.
func (l Linear) Matrix() vector.Matrix3D {
	return vector.Matrix3D{l[0], l[1], l[2]}
}

// Example is the sample operator with Te₁=(1,1,1), Te₂=(1,0,−1), Te₃=(0,1,1).
var Example = FromBasis(
	vector.Vec3{1, 1, 1},
	vector.Vec3{1, 0, -1},
	vector.Vec3{0, 1, 1},
)

// Apply is Example.Apply.
func Apply(v vector.Vec3) vector.Vec3 { return Example.Apply(v) }

// After returns l∘k, the operator that applies k first and then l.
//
// Errors: ErrDomain when an image of l or k is non-finite.
func (l Linear) After(k Linear) (Linear, error) {
	ld, err := l.Matrix().Dense()
	if err != nil {
		return Linear{}, transformErrorf(methodAfter, err)
	}
	kd, err := k.Matrix().Dense()
	if err != nil {
		return Linear{}, transformErrorf(methodAfter, err)
	}
	p, err := matrix.Mul(kd, ld)
	if err != nil {
		return Linear{}, domainError(methodAfter, err)
	}

	return fromDense(p), nil
}

// Inverse returns the operator undoing l.
//
// Errors: ErrDomain when l is singular or has a non-finite image.
func (l Linear) Inverse() (Linear, error) {
	d, err := l.Matrix().Dense()
	if err != nil {
		return Linear{}, transformErrorf(methodInverse, err)
	}
	inv, err := matrix.Inverse(d)
	if err != nil {
		return Linear{}, domainError(methodInverse, err)
	}

	return fromDense(inv), nil
}

// fromDense reads a 3×3 Dense back as basis images, one per row.
func fromDense(d *matrix.Dense) Linear {
	var l Linear
	for i, row := range d.ToRows() {
		l[i] = vector.Vec3{row[0], row[1], row[2]}
	}

	return l
}

// MatrixTransform lifts the row-weighted product v ↦ MultiplyMatrixVector(m, v)
// into a Transform. m is checked once here so the returned Transform cannot fail.
//
// Errors: ErrShape unless m has exactly 3 rows, ErrDomain on a non-finite entry.
func MatrixTransform(m vector.Matrix3D) (Transform, error) {
	if len(m) != 3 {
		return nil, transformErrorf(methodMatrixTransform, vector.ErrShape)
	}
	d, err := m.Dense()
	if err != nil {
		return nil, transformErrorf(methodMatrixTransform, err)
	}

	return fromDense(d).Transform(), nil
}
