// SPDX-License-Identifier: MIT

package model

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax marks malformed OFF input.
	ErrSyntax = errors.New("model: syntax error")

	// ErrCount marks invalid or unsatisfied element counts.
	ErrCount = errors.New("model: count mismatch")

	// ErrFaceIndex marks a face referencing a vertex that does not exist.
	ErrFaceIndex = errors.New("model: face index out of range")
)

const (
	methodDecode = "Decode"
	methodEncode = "Encode"
	methodLoad   = "Load"
	methodNew    = "New"
	methodShade  = "Shade"
)

func modelErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}

// lineError tags err with the 1-based input line it was detected on.
func lineError(line int, format string, args ...any) error {
	return fmt.Errorf("line %d: "+format, append([]any{line}, args...)...)
}
