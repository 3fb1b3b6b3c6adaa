// SPDX-License-Identifier: MIT

package transform

import "github.com/katalvlaran/lvgeom/vector"

// Axes selects which coordinates CubeStretch deforms.
type Axes [3]bool

// AllAxes deforms every coordinate.
var AllAxes = Axes{true, true, true}

// Stretch multiplies v componentwise by (sx, sy, sz).
// Factors and components are assumed finite; nothing is validated here.
func Stretch(v vector.Vec3, sx, sy, sz float64) vector.Vec3 {
	return vector.Vec3{v[0] * sx, v[1] * sy, v[2] * sz}
}

// CubeStretch stretches each selected coordinate by its own square, so a
// selected vᵢ becomes vᵢ³. Unselected coordinates are kept.
// The deformation is not linear. v is assumed finite.
func CubeStretch(v vector.Vec3, on Axes) vector.Vec3 {
	s := [3]float64{1, 1, 1}
	for i, sel := range on {
		if sel {
			s[i] = v[i] * v[i]
		}
	}

	return Stretch(v, s[0], s[1], s[2])
}
