// SPDX-License-Identifier: MIT

// Package pipeline reads transform pipelines from YAML and compiles them
// into a single transform.Transform.
//
// Document shape:
//
//	name: teapot
//	steps:
//	  - op: translate        # by: [x, y, z]
//	    by: [-0.5, 0, -0.6]
//	  - op: rotate_x         # also rotate_y, rotate_z
//	    angle: -90
//	    unit: degree         # radian (default) or degree
//	  - op: scale
//	    factor: 2
//	  - op: stretch          # by: [sx, sy, sz]
//	  - op: cube_stretch     # axes: [bool, bool, bool], default all
//	  - op: linear           # basis: images of e₁, e₂, e₃
//	  - op: matrix           # rows: 3×3, row-weighted product
//
// Steps run top to bottom: the first step is applied to the input first.
// Unknown keys, unknown ops and malformed arguments fail with
// ErrInvalidStep; YAML that does not parse fails with ErrSyntax.
package pipeline
