package internal

import "math"

// Minimum enclosing circle by Welzl's randomized incremental algorithm.
//
// Points are added one at a time in random order. While the new point is inside
// the current circle nothing changes. Otherwise the new point must be on the
// boundary of the enclosing circle of everything seen so far, so we rebuild the
// circle over the prefix with that point fixed on the boundary. The same
// argument applies once more inside that pass, so at most three points are ever
// fixed, and the third level is just the circumcircle. Shuffling makes a rebuild
// at step i happen with probability at most 3/i, which gives expected linear
// time.

func MinContainingCircle(points []Point, cfg *Config) Circle {
	if len(points) == 0 {
		fatalf(ErrEmptyInput, "cannot enclose an empty set of points")
	}
	if len(points) == 1 {
		return Circle{points[0], 0}
	}

	// Shuffle a copy; the caller's order is theirs.
	shuffled := make([]Point, len(points))
	copy(shuffled, points)
	rng := cfg.random()
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	eps := cfg.Tolerance()
	circle := CircleByDiameter(Segment{shuffled[0], shuffled[1]})
	cfg.trace(circle, shuffled[0], shuffled[1])
	for i := 2; i < len(shuffled); i++ {
		if encloses(circle, shuffled[i], eps) {
			continue
		}
		circle = circleWithBoundaryPoint(shuffled[:i], shuffled[i], cfg)
	}
	return circle
}

// Smallest circle enclosing points with q on its boundary.
func circleWithBoundaryPoint(points []Point, q Point, cfg *Config) Circle {
	eps := cfg.Tolerance()
	circle := CircleByDiameter(Segment{points[0], q})
	cfg.trace(circle, points[0], q)
	for j := 1; j < len(points); j++ {
		if encloses(circle, points[j], eps) {
			continue
		}
		circle = circleWithBoundaryPoints(points[:j], points[j], q, cfg)
	}
	return circle
}

// Smallest circle enclosing points with both q1 and q2 on its boundary.
func circleWithBoundaryPoints(points []Point, q1, q2 Point, cfg *Config) Circle {
	eps := cfg.Tolerance()
	circle := CircleByDiameter(Segment{q1, q2})
	cfg.trace(circle, q1, q2)
	for k := 0; k < len(points); k++ {
		if encloses(circle, points[k], eps) {
			continue
		}
		circle = circleThrough(q1, q2, points[k], eps)
		cfg.trace(circle, q1, q2, points[k])
	}
	return circle
}

// The circumcircle, except when the points are collinear. Then the farthest pair
// is the diameter of the smallest circle holding all three. Nearly collinear
// points can sit a hair outside that circle, so it grows to reach them.
func circleThrough(a, b, c Point, eps float64) Circle {
	if circle, ok := circumcircle(a, b, c, eps); ok {
		return circle
	}
	circle := CircleByDiameter(Diameter([]Point{a, b, c}))
	for _, p := range []Point{a, b, c} {
		circle.Radius = math.Max(circle.Radius, circle.Center.Distance(p))
	}
	return circle
}

// Containment during the search. The slack is eps for circles of radius one and
// up, and shrinks with the circle below that so tiny inputs keep their shape.
func encloses(c Circle, p Point, eps float64) bool {
	return c.ContainsWithin(p, eps*math.Min(1, c.Radius))
}
