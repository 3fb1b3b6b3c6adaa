// SPDX-License-Identifier: MIT
// Package: vector
//
// Angle and coordinate conversions.

package vector

import "math"

// One degree in radians, and one radian in degrees.
const (
	OneDegree = math.Pi / 180
	OneRadian = 180 / math.Pi
)

// ToRadian converts degrees to radians.
func ToRadian(degrees float64) float64 { return degrees * OneDegree }

// ToDegree converts radians to degrees.
func ToDegree(radians float64) float64 { return radians * OneRadian }

// ToCartesian converts (r, θ) to (r·cos θ, r·sin θ).
func ToCartesian(p Polar) Vec2 {
	return Vec2{p.R * math.Cos(p.Theta), p.R * math.Sin(p.Theta)}
}

// ToPolar converts (x, y) to (|v|, atan2(y, x)); θ lies in (−π, π].
// The origin, signed zeros included, maps to (0, 0). A negative-zero y on
// the negative x axis would give −π from atan2 and is folded to π.
func ToPolar(v Vec2) Polar {
	if v[0] == 0 && v[1] == 0 {
		return Polar{}
	}
	theta := math.Atan2(v[1], v[0])
	if theta == -math.Pi {
		theta = math.Pi
	}

	return Polar{R: v.Length(), Theta: theta}
}
