package internal

import "math"

// Default tolerance for degeneracy, parallelism and containment checks. Callers
// working at very large or very small coordinate scales should pass their own
// through Config.
const Epsilon = 1e-5

// A line whose cosine is smaller than this is treated as vertical when
// intersecting.
const nearVertical = 1e-5

// Wrap an angle into [0, π). Lines have no direction, so angles that differ by
// π describe the same line.
func normalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, math.Pi)
	if angle < 0 {
		angle += math.Pi
	}
	// Adding π to a tiny negative angle can round up to exactly π
	if angle >= math.Pi {
		angle = 0
	}
	return angle
}
