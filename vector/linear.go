// SPDX-License-Identifier: MIT
// Package: vector
//
// Linear combinations and the matrix×vector product.
//
// Convention (kept on purpose, do not "fix"):
//   - MultiplyMatrixVector weights the ROWS of M by the components of v:
//     M·v = Σ vᵢ·rowᵢ(M). This is the transpose of the textbook
//     column-weighted product. len(v) must equal the number of rows and the
//     result has the arity of a row.

package vector

import "github.com/katalvlaran/lvgeom/matrix"

const (
	methodLinearCombination    = "LinearCombination"
	methodMultiplyMatrixVector = "MultiplyMatrixVector"
	methodDense                = "Dense"
)

// LinearCombination returns Σ scalars[i]·vectors[i].
//
// Errors:
//   - ErrEmpty when both slices are empty.
//   - ErrShape when the slices differ in length or the vectors differ in arity.
//   - ErrDomain on a non-finite scalar or component.
//
// Complexity: O(k·n).
func LinearCombination(scalars []float64, vectors []Vector) (Vector, error) {
	if len(scalars) == 0 && len(vectors) == 0 {
		return nil, vectorErrorf(methodLinearCombination, ErrEmpty)
	}
	if len(scalars) != len(vectors) {
		return nil, lengthError(methodLinearCombination, len(scalars))
	}
	d, err := ValidateSameArity(vectors...)
	if err != nil {
		return nil, vectorErrorf(methodLinearCombination, err)
	}
	if err = ValidateFinite(scalars); err != nil {
		return nil, vectorErrorf(methodLinearCombination, err)
	}
	scaled := make([]Vector, len(vectors))
	for i, v := range vectors {
		scaled[i] = Scale(scalars[i], v)
	}

	return sum(d, scaled), nil
}

// MultiplyMatrixVector returns the v-weighted sum of the rows of m, which
// is mᵀ·v. The product runs on the dense kernel in package matrix.
//
// Errors:
//   - ErrEmpty when m has no rows.
//   - ErrShape when len(v) != len(m) or rows differ in arity.
//   - ErrDomain on a non-finite entry.
func MultiplyMatrixVector(m Matrix, v Vector) (Vector, error) {
	if len(m) == 0 {
		return nil, vectorErrorf(methodMultiplyMatrixVector, ErrEmpty)
	}
	if len(v) != len(m) {
		return nil, lengthError(methodMultiplyMatrixVector, len(v))
	}
	if _, err := ValidateSameArity(m...); err != nil {
		return nil, vectorErrorf(methodMultiplyMatrixVector, err)
	}
	if err := ValidateFinite(v); err != nil {
		return nil, vectorErrorf(methodMultiplyMatrixVector, err)
	}
	d, err := m.Dense()
	if err != nil {
		return nil, vectorErrorf(methodMultiplyMatrixVector, err)
	}
	dt, err := matrix.Transpose(d)
	if err != nil {
		return nil, vectorErrorf(methodMultiplyMatrixVector, matrixError(err))
	}
	out, err := matrix.MatVec(dt, v)
	if err != nil {
		return nil, vectorErrorf(methodMultiplyMatrixVector, matrixError(err))
	}

	return out, nil
}

// Dense copies m into a matrix.Dense.
//
// Errors: ErrShape (no rows, an empty row, or ragged rows), ErrDomain
// (non-finite entry). The matrix sentinel is wrapped as well.
func (m Matrix) Dense() (*matrix.Dense, error) {
	rows := make([][]float64, len(m))
	for i, r := range m {
		rows[i] = r
	}
	d, err := matrix.FromRows(rows)
	if err != nil {
		return nil, vectorErrorf(methodDense, matrixError(err))
	}

	return d, nil
}

// Dense copies m into a 3-column matrix.Dense.
func (m Matrix3D) Dense() (*matrix.Dense, error) { return m.Rows().Dense() }

// FromDense copies d into a Matrix.
func FromDense(d *matrix.Dense) Matrix {
	rows := d.ToRows()
	out := make(Matrix, len(rows))
	for i, r := range rows {
		out[i] = r
	}

	return out
}
