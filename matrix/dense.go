// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) and safe accessors.
//
// Purpose:
//   - Flat row-major buffer with the index formula i*cols + j.
//   - At/Set return errors instead of panicking on bad indices.
//   - Set and FromRows reject NaN/±Inf.
//
// Complexity quicksheet:
//   - NewDense, FromRows, Clone, ToRows: O(r*c); At/Set/Shape: O(1).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

const (
	ctxAt  = "At"
	ctxSet = "Set"
	ctxRow = "Row"
)

const (
	fmtRowOpen  = "["
	fmtRowClose = "]\n"
	fmtSep      = ", "
)

// Dense is a row-major r×c matrix of float64.
type Dense struct {
	r, c int
	data []float64 // len == r*c, offset = i*c + j
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense returns an r×c zero matrix.
//
// Errors: ErrBadShape unless rows > 0 and cols > 0.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// FromRows copies rows into a new Dense.
//
// Errors:
//   - ErrBadShape when rows is empty or the first row is empty.
//   - ErrDimensionMismatch when a row's length differs from the first.
//   - ErrNaNInf on a non-finite entry.
//
// Complexity: O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrBadShape)
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	for i, row := range rows {
		if err = ValidateVecLen(row, m.c); err != nil {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d: %w", i, err))
		}
		for j, v := range row {
			if err = validateFinite(v); err != nil {
				return nil, matrixErrorf(opFromRows, denseErrorf(ctxSet, i, j, err))
			}
		}
		copy(m.data[i*m.c:(i+1)*m.c], row)
	}

	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape returns (Rows(), Cols()).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns the entry at (row, col).
//
// Errors: ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
//
// Errors: ErrOutOfRange, ErrNaNInf.
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if err = validateFinite(v); err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i.
//
// Errors: ErrOutOfRange.
func (m *Dense) Row(i int) ([]float64, error) {
	if _, err := m.indexOf(ctxRow, i, 0); err != nil {
		return nil, err
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// ToRows returns the entries as freshly allocated row slices.
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := range out {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Clone returns a deep copy of m.
func (m *Dense) Clone() *Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &Dense{r: m.r, c: m.c, data: data}
}

// String renders one bracketed row per line.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString(fmtRowClose)
	}

	return sb.String()
}

// validateFinite returns ErrNaNInf for NaN or ±Inf.
func validateFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNaNInf
	}

	return nil
}
