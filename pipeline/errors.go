// SPDX-License-Identifier: MIT

package pipeline

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax marks a document that is not valid pipeline YAML.
	ErrSyntax = errors.New("pipeline: syntax error")

	// ErrInvalidStep marks a step with an unknown op or bad arguments.
	ErrInvalidStep = errors.New("pipeline: invalid step")
)

const (
	methodParse    = "Parse"
	methodLoadFile = "LoadFile"
	methodCompile  = "Compile"
	methodMarshal  = "Marshal"
)

func pipelineErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}

// stepError reports a bad step by position and op.
func stepError(i int, op, format string, args ...any) error {
	return fmt.Errorf("step %d (%s): "+format+": %w", append(append([]any{i, op}, args...), ErrInvalidStep)...)
}
