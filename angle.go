package gutil

import "math"

const twoPi = 2.0 * math.Pi

// NormalizeAnglePositive maps angle (radians) into [0, 2π).
func NormalizeAnglePositive(angle float64) float64 {
	return math.Mod(math.Mod(angle, twoPi)+twoPi, twoPi)
}

// NormalizeAngle maps angle (radians) into (-π, π].
func NormalizeAngle(angle float64) float64 {
	a := NormalizeAnglePositive(angle)
	if a > math.Pi {
		a -= twoPi
	}

	return a
}

// ShortestAngularDistance returns the signed rotation, in (-π, π], that
// takes from onto to by the short way round. Positive is counter-clockwise
// (increasing angle).
//
//	ShortestAngularDistance(3, -3) // 2π-6 ≈ 0.2832: up through π
func ShortestAngularDistance(from, to float64) float64 {
	d := NormalizeAnglePositive(NormalizeAnglePositive(to) - NormalizeAnglePositive(from))
	if d > math.Pi {
		d = -(twoPi - d)
	}

	return NormalizeAngle(d)
}
