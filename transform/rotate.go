// SPDX-License-Identifier: MIT

package transform

import "github.com/katalvlaran/lvgeom/vector"

// Rotate2D rotates v counter-clockwise by angle radians about the origin.
// It goes through polar form: θ is advanced by angle and r is kept.
// angle and v are assumed finite; NaN or ±Inf propagate unchecked.
func Rotate2D(angle float64, v vector.Vec2) vector.Vec2 {
	p := vector.ToPolar(v)
	p.Theta += angle

	return vector.ToCartesian(p)
}

// RotateX rotates v about the x axis; x is left unchanged and (y, z) is
// rotated in the plane. Finite input is assumed, as for Rotate2D.
func RotateX(angle float64, v vector.Vec3) vector.Vec3 {
	yz := Rotate2D(angle, vector.Vec2{v[1], v[2]})

	return vector.Vec3{v[0], yz[0], yz[1]}
}

// RotateY rotates v about the y axis. The plane is taken as (z, x) so that
// the rotation stays right-handed: RotateY(π/2, e₁) = −e₃.
// Finite input is assumed.
func RotateY(angle float64, v vector.Vec3) vector.Vec3 {
	zx := Rotate2D(angle, vector.Vec2{v[2], v[0]})

	return vector.Vec3{zx[1], v[1], zx[0]}
}

// RotateZ rotates v about the z axis; z is left unchanged.
// Finite input is assumed.
func RotateZ(angle float64, v vector.Vec3) vector.Vec3 {
	xy := Rotate2D(angle, vector.Vec2{v[0], v[1]})

	return vector.Vec3{xy[0], xy[1], v[2]}
}
