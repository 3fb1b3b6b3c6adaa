// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
//
// ERROR PRIORITY (enforced in tests):
// shape -> dimension mismatch -> NaN/Inf -> singular.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned for a non-positive dimension or an empty row set.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operands: ragged rows,
	// Mul with a.Cols != b.Rows, or a vector of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf entry where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular is returned when inversion meets a zero pivot.
	ErrSingular = errors.New("matrix: singular matrix")
)

// Operation tags for error wrapping.
const (
	opFromRows  = "FromRows"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opInverse   = "Inverse"
)

// matrixErrorf wraps err with an operation tag. err must be non-nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf attaches a Dense method and coordinates to err.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
