// SPDX-License-Identifier: MIT

package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvgeom/lvlog"
	"gopkg.in/yaml.v3"
)

// Supported step ops.
const (
	OpTranslate   = "translate"
	OpRotateX     = "rotate_x"
	OpRotateY     = "rotate_y"
	OpRotateZ     = "rotate_z"
	OpScale       = "scale"
	OpStretch     = "stretch"
	OpCubeStretch = "cube_stretch"
	OpLinear      = "linear"
	OpMatrix      = "matrix"
)

// Angle units.
const (
	UnitRadian = "radian"
	UnitDegree = "degree"
)

// Spec is a parsed pipeline document.
type Spec struct {
	Name  string `yaml:"name,omitempty"`
	Steps []Step `yaml:"steps"`

	logger lvlog.Logger
}

// Step is one transform. Which fields apply depends on Op.
type Step struct {
	Op     string      `yaml:"op"`
	By     []float64   `yaml:"by,omitempty"`
	Angle  float64     `yaml:"angle,omitempty"`
	Unit   string      `yaml:"unit,omitempty"`
	Factor *float64    `yaml:"factor,omitempty"`
	Axes   []bool      `yaml:"axes,omitempty"`
	Basis  [][]float64 `yaml:"basis,omitempty"`
	Rows   [][]float64 `yaml:"rows,omitempty"`
}

// Option configures Parse and LoadFile.
type Option func(*Spec)

// WithLogger routes compile diagnostics to l. Panics on nil.
func WithLogger(l lvlog.Logger) Option {
	if l == nil {
		panic("pipeline: WithLogger(nil)")
	}
	return func(s *Spec) { s.logger = l }
}

// Parse decodes a pipeline document. Unknown keys are rejected. An empty
// document is the empty pipeline.
func Parse(data []byte, opts ...Option) (*Spec, error) {
	s := &Spec{logger: lvlog.Nop()}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return nil, pipelineErrorf(methodParse, fmt.Errorf("%w: %v", ErrSyntax, err))
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// LoadFile reads and parses the pipeline at path.
func LoadFile(path string, opts ...Option) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pipelineErrorf(methodLoadFile, err)
	}
	s, err := Parse(data, opts...)
	if err != nil {
		return nil, pipelineErrorf(methodLoadFile, err)
	}
	s.logger.Debug("pipeline loaded", "path", path, "name", s.Name, "steps", len(s.Steps))

	return s, nil
}

// Marshal encodes s back to YAML.
func Marshal(s *Spec) ([]byte, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return nil, pipelineErrorf(methodMarshal, err)
	}

	return out, nil
}
