package internal

import (
	"fmt"
	"math"
)

// An infinite line, stored as y·cos(angle) = x·sin(angle) + b with the angle in
// [0, π). Every line has exactly one such representation, so lines can be
// compared with == and used as map keys.
type Line struct {
	b     float64
	angle float64
}

// The line through p at the given angle to the X axis. The angle must be in
// [0, π).
func NewLine(p Point, angle float64) Line {
	if !(angle >= 0 && angle < math.Pi) {
		fatalf(ErrInvalidAngle, "line angle %v is outside [0, π)", angle)
	}
	return Line{p.Y*math.Cos(angle) - p.X*math.Sin(angle), angle}
}

func (l Line) B() float64 { return l.b }

func (l Line) Angle() float64 { return l.angle }

// Find the point where two lines meet. Lines closer to parallel than eps (by the
// sine of the angle between them) have no intersection.
func CrossPoint(l, other Line, eps float64) Point {
	sin1, cos1 := math.Sincos(l.angle)
	sin2, cos2 := math.Sincos(other.angle)

	// Each line is sin·x - cos·y = -b, so the determinant of the system is the
	// sine of the angle between them.
	det := cos1*sin2 - sin1*cos2
	if math.Abs(det) < eps {
		fatalf(ErrNoIntersection, "lines %v and %v are parallel", l, other)
	}

	// A vertical line pins x to its x-intercept, and the other line gives y.
	// Solving through the tiny cosine would blow up instead.
	if math.Abs(cos1) < nearVertical && math.Abs(cos2) >= nearVertical {
		x := -l.b / sin1
		return Point{x, (x*sin2 + other.b) / cos2}
	}
	if math.Abs(cos2) < nearVertical && math.Abs(cos1) >= nearVertical {
		x := -other.b / sin2
		return Point{x, (x*sin1 + l.b) / cos1}
	}

	// Cramer's rule. When both lines are nearly vertical this is poorly
	// conditioned, but they are far enough from parallel to have passed the check
	// above.
	x := (l.b*cos2 - cos1*other.b) / det
	y := (sin2*l.b - sin1*other.b) / det
	return Point{x, y}
}

// The line through two points. The points are ordered by Y first so that the
// same pair always yields the same angle.
func LineByPoints(a, b Point) Line {
	lower, upper := a, b
	if b.Y < a.Y {
		lower, upper = b, a
	}

	if lower.X == upper.X {
		return NewLine(a, math.Pi/2)
	}
	if lower.Y == upper.Y {
		return NewLine(a, 0)
	}

	angle := math.Atan((upper.Y - lower.Y) / (upper.X - lower.X))
	return NewLine(a, normalizeAngle(angle))
}

func LineBySegment(s Segment) Line {
	return LineByPoints(s.Begin, s.End)
}

// The perpendicular bisector of the segment between a and b.
func BisectorByPoints(a, b Point) Line {
	angle := LineByPoints(a, b).angle
	if angle >= math.Pi/2 {
		angle -= math.Pi / 2
	} else {
		angle += math.Pi / 2
	}
	return NewLine(a.Midpoint(b), normalizeAngle(angle))
}

func (l Line) String() string {
	return fmt.Sprintf("Line(%g * y = %g * x + %g)", math.Cos(l.angle), math.Sin(l.angle), l.b)
}
