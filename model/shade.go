// SPDX-License-Identifier: MIT

package model

import "github.com/katalvlaran/lvgeom/vector"

// Shade returns 1 − unit(normal(face))·unit(light), in [0, 2]. A face
// turned toward the light is 0 (brightest), one turned away is 2.
//
// Errors: vector.ErrDomain for a degenerate face or a zero light.
func Shade(face vector.Triangle, light vector.Vec3) (float64, error) {
	n, err := vector.Unit(vector.Normal(face).Vector())
	if err != nil {
		return 0, modelErrorf(methodShade, err)
	}
	l, err := vector.Unit(light.Vector())
	if err != nil {
		return 0, modelErrorf(methodShade, err)
	}
	d, err := vector.Dot(n, l)
	if err != nil {
		return 0, modelErrorf(methodShade, err)
	}

	return 1 - d, nil
}

// Shades returns Shade for every triangle of m, in order.
func (m *Model) Shades(light vector.Vec3) ([]float64, error) {
	out := make([]float64, len(m.Triangles))
	for i, tri := range m.Triangles {
		s, err := Shade(tri, light)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}

	return out, nil
}
