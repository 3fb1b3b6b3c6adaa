// SPDX-License-Identifier: MIT

package solid

import (
	"errors"
	"fmt"
)

// ErrUnknownSolid is returned for a Name outside the five enum values.
var ErrUnknownSolid = errors.New("solid: unknown solid")

const (
	methodNew  = "New"
	methodMesh = "MeshOf"
)

func solidErrorf(method string, name Name, err error) error {
	return fmt.Errorf("%s(%s): %w", method, name, err)
}
