// SPDX-License-Identifier: MIT
// Package matrix: linear-algebra kernels over Dense.
//
// Determinism:
//   - Fixed loop orders (i→k→j for Mul, i→j for MatVec and Transpose).
//   - Inverse picks the first row holding the largest |pivot|, so ties
//     resolve the same way on every run.

package matrix

import "math"

// zeroSum is the initial value of every accumulator.
const zeroSum = 0.0

// Mul returns a·b.
//
// Errors: ErrDimensionMismatch when a.Cols != b.Rows.
// Complexity: O(r*n*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	for i := 0; i < a.r; i++ {
		rowA, rowR := i*a.c, i*b.c
		for k := 0; k < a.c; k++ {
			av := a.data[rowA+k]
			if av == 0 {
				continue
			}
			rowB := k * b.c
			for j := 0; j < b.c; j++ {
				res.data[rowR+j] += av * b.data[rowB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns mᵀ.
// Complexity: O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	res, err := NewDense(m.c, m.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[base+j]
		}
	}

	return res, nil
}

// MatVec returns y = m·x for a column vector x.
//
// Errors: ErrDimensionMismatch when len(x) != m.Cols().
// Complexity: O(r*c).
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		acc := zeroSum
		base := i * m.c
		for j, xv := range x {
			if xv != 0 {
				acc += m.data[base+j] * xv
			}
		}
		y[i] = acc
	}

	return y, nil
}

// Inverse returns m⁻¹ by Gauss-Jordan elimination with partial pivoting.
//
// Errors:
//   - ErrDimensionMismatch when m is not square.
//   - ErrSingular on a zero pivot, or when the inverse overflows.
//
// Complexity: O(n³) time, O(n²) space.
func Inverse(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := m.r
	a := m.Clone()
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	for i := 0; i < n; i++ {
		inv.data[i*n+i] = 1
	}

	for col := 0; col < n; col++ {
		p := col
		for row := col + 1; row < n; row++ {
			if math.Abs(a.data[row*n+col]) > math.Abs(a.data[p*n+col]) {
				p = row
			}
		}
		pivot := a.data[p*n+col]
		if pivot == 0 {
			return nil, matrixErrorf(opInverse, ErrSingular)
		}
		if p != col {
			a.swapRows(p, col)
			inv.swapRows(p, col)
		}

		base := col * n
		for j := 0; j < n; j++ {
			a.data[base+j] /= pivot
			inv.data[base+j] /= pivot
		}
		for row := 0; row < n; row++ {
			f := a.data[row*n+col]
			if row == col || f == 0 {
				continue
			}
			rb := row * n
			for j := 0; j < n; j++ {
				a.data[rb+j] -= f * a.data[base+j]
				inv.data[rb+j] -= f * inv.data[base+j]
			}
		}
	}

	for _, v := range inv.data {
		if validateFinite(v) != nil {
			return nil, matrixErrorf(opInverse, ErrSingular)
		}
	}

	return inv, nil
}

func (m *Dense) swapRows(i, k int) {
	ri, rk := m.data[i*m.c:(i+1)*m.c], m.data[k*m.c:(k+1)*m.c]
	for j := range ri {
		ri[j], rk[j] = rk[j], ri[j]
	}
}
