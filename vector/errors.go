// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
//
// Every function returns one of these sentinels, wrapped with the method
// tag of the detection site ("Add: ...: vector: shape mismatch").
// Callers and tests MUST branch with errors.Is, never on message text.
//
// ERROR PRIORITY (enforced in tests):
// empty -> shape -> domain.

package vector

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvgeom/matrix"
)

var (
	// ErrShape is returned on arity mismatch between operands, a sequence
	// shorter than the requested fixed arity, or unequal matrix rows.
	ErrShape = errors.New("vector: shape mismatch")

	// ErrDomain signals a math-domain violation: a zero-length vector used as
	// a direction, or a NaN/±Inf component.
	ErrDomain = errors.New("vector: math domain error")

	// ErrEmpty signals a fold over an empty sequence of operands.
	ErrEmpty = errors.New("vector: empty input")
)

// vectorErrorf wraps err with the public method tag.
func vectorErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}

// lengthError reports an arity k that does not match the expected shape.
// The message keeps the "Invalid vector length k" wording callers grep for.
func lengthError(method string, k int) error {
	return fmt.Errorf("%s: Invalid vector length %d: %w", method, k, ErrShape)
}

// matrixError maps a matrix sentinel onto the vector error set; the
// matrix sentinel stays matchable with errors.Is.
func matrixError(err error) error {
	switch {
	case errors.Is(err, matrix.ErrNaNInf), errors.Is(err, matrix.ErrSingular):
		return fmt.Errorf("%w: %w", ErrDomain, err)
	default:
		return fmt.Errorf("%w: %w", ErrShape, err)
	}
}
