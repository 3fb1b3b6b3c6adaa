// SPDX-License-Identifier: MIT
// Package: pipeline
//
// Step compilation. Every step is validated up front so that the compiled
// Transform itself cannot fail.

package pipeline

import (
	"math"

	"github.com/katalvlaran/lvgeom/lvlog"
	"github.com/katalvlaran/lvgeom/transform"
	"github.com/katalvlaran/lvgeom/vector"
)

// Compile turns the steps into one Transform, applying them top to bottom.
// The empty pipeline compiles to the identity.
func (s *Spec) Compile() (transform.Transform, error) {
	log := s.logger
	if log == nil {
		log = lvlog.Nop()
	}
	ts := make([]transform.Transform, len(s.Steps))
	for i, st := range s.Steps {
		t, err := st.compile(i)
		if err != nil {
			log.Error("pipeline step rejected", "name", s.Name, "step", i, "op", st.Op, "err", err)
			return nil, pipelineErrorf(methodCompile, err)
		}
		// Chain applies right to left; store in reverse.
		ts[len(ts)-1-i] = t
		log.Debug("pipeline step compiled", "name", s.Name, "step", i, "op", st.Op)
	}

	return transform.Chain(ts...), nil
}

func (st Step) compile(i int) (transform.Transform, error) {
	switch st.Op {
	case OpTranslate:
		off, err := st.vec3(i, st.By, "by")
		if err != nil {
			return nil, err
		}
		return transform.TranslateBy(off), nil

	case OpRotateX, OpRotateY, OpRotateZ:
		a, err := st.radians(i)
		if err != nil {
			return nil, err
		}
		switch st.Op {
		case OpRotateX:
			return transform.RotateXBy(a), nil
		case OpRotateY:
			return transform.RotateYBy(a), nil
		default:
			return transform.RotateZBy(a), nil
		}

	case OpScale:
		if st.Factor == nil || math.IsNaN(*st.Factor) || math.IsInf(*st.Factor, 0) {
			return nil, stepError(i, st.Op, "factor must be a finite number")
		}
		return transform.ScaleBy(*st.Factor), nil

	case OpStretch:
		s, err := st.vec3(i, st.By, "by")
		if err != nil {
			return nil, err
		}
		return transform.StretchBy(s), nil

	case OpCubeStretch:
		switch len(st.Axes) {
		case 0:
			return transform.CubeStretchOn(transform.AllAxes), nil
		case 3:
			return transform.CubeStretchOn(transform.Axes{st.Axes[0], st.Axes[1], st.Axes[2]}), nil
		default:
			return nil, stepError(i, st.Op, "axes needs 3 flags, got %d", len(st.Axes))
		}

	case OpLinear:
		m, err := st.matrix3(i, st.Basis, "basis")
		if err != nil {
			return nil, err
		}
		return transform.FromBasis(m[0], m[1], m[2]).Transform(), nil

	case OpMatrix:
		m, err := st.matrix3(i, st.Rows, "rows")
		if err != nil {
			return nil, err
		}
		t, err := transform.MatrixTransform(m)
		if err != nil {
			return nil, stepError(i, st.Op, "%v", err)
		}
		return t, nil

	case "":
		return nil, stepError(i, st.Op, "missing op")

	default:
		return nil, stepError(i, st.Op, "unknown op")
	}
}

func (st Step) radians(i int) (float64, error) {
	if math.IsNaN(st.Angle) || math.IsInf(st.Angle, 0) {
		return 0, stepError(i, st.Op, "angle must be finite")
	}
	switch st.Unit {
	case "", UnitRadian:
		return st.Angle, nil
	case UnitDegree:
		return vector.ToRadian(st.Angle), nil
	default:
		return 0, stepError(i, st.Op, "unit %q", st.Unit)
	}
}

func (st Step) vec3(i int, xs []float64, field string) (vector.Vec3, error) {
	if len(xs) != 3 {
		return vector.Vec3{}, stepError(i, st.Op, "%s needs 3 numbers, got %d", field, len(xs))
	}
	v, err := vector.AsVector3D(xs)
	if err != nil {
		return vector.Vec3{}, stepError(i, st.Op, "%s: %v", field, err)
	}

	return v, nil
}

func (st Step) matrix3(i int, rows [][]float64, field string) (vector.Matrix3D, error) {
	if len(rows) != 3 {
		return nil, stepError(i, st.Op, "%s needs 3 rows, got %d", field, len(rows))
	}
	m := make(vector.Matrix3D, 3)
	for r, row := range rows {
		v, err := st.vec3(i, row, field)
		if err != nil {
			return nil, err
		}
		m[r] = v
	}

	return m, nil
}
