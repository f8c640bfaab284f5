// A small planar geometry package for Go.
//
// It covers points, segments, lines, triangles and circles, plus the classic
// constructions on top of them: line intersection, perpendicular bisectors,
// circumcircles, the farthest pair of a point set, the nearest pair of circles,
// and the minimum enclosing circle.
//
// Everything is a value type and every function is pure. Operations that can
// fail return an error whose kind can be tested with errors.Is against the Err
// variables below. All tolerances default to 1e-5; use the advanced package to
// change them or to seed the enclosing circle search.
package planar

import "github.com/osuushi/planar/advanced"

type Point = advanced.Point
type Segment = advanced.Segment
type Line = advanced.Line
type Triangle = advanced.Triangle
type Circle = advanced.Circle

var (
	ErrInsufficientInput = advanced.ErrInsufficientInput
	ErrEmptyInput        = advanced.ErrEmptyInput
	ErrDegenerateInput   = advanced.ErrDegenerateInput
	ErrInvalidAngle      = advanced.ErrInvalidAngle
	ErrNoIntersection    = advanced.ErrNoIntersection
)

func Distance(p, q Point) float64 {
	return p.Distance(q)
}

// The line through p at angle radians from the X axis. The angle must be in
// [0, π).
func NewLine(p Point, angle float64) (Line, error) {
	return advanced.NewLine(p, angle)
}

func LineByPoints(a, b Point) Line {
	return advanced.LineByPoints(a, b)
}

func LineBySegment(s Segment) Line {
	return advanced.LineBySegment(s)
}

// The perpendicular bisector of the segment from a to b.
func BisectorByPoints(a, b Point) Line {
	return advanced.BisectorByPoints(a, b)
}

// Where two lines meet. Parallel lines give ErrNoIntersection.
func CrossPoint(l1, l2 Line) (Point, error) {
	return advanced.CrossPoint(l1, l2, nil)
}

// Three distinct points, in any order.
func NewTriangle(a, b, c Point) (Triangle, error) {
	return advanced.NewTriangle(a, b, c)
}

func CircleByDiameter(s Segment) Circle {
	return advanced.CircleByDiameter(s)
}

// The circle through all three points. Collinear points give
// ErrDegenerateInput.
func CircleByThreePoints(p1, p2, p3 Point) (Circle, error) {
	return advanced.CircleByThreePoints(p1, p2, p3, nil)
}

// The two points farthest apart. Needs at least two points.
func Diameter(points ...Point) (Segment, error) {
	return advanced.Diameter(points)
}

// The two circles with the smallest gap between their edges. Needs at least two
// circles.
func FindNearestCirclePair(circles ...Circle) (Circle, Circle, error) {
	return advanced.FindNearestCirclePair(circles)
}

// The smallest circle containing every point. Each call shuffles with its own
// random source, so this is safe to call concurrently.
func MinContainingCircle(points ...Point) (Circle, error) {
	return advanced.MinContainingCircle(points, nil)
}
