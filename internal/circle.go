package internal

import (
	"fmt"
	"math"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/planar/dbg"
)

type Circle struct {
	Center Point   `yaml:"center"`
	Radius float64 `yaml:"radius"`
}

// Gap between the circles' edges. Overlapping or nested circles are zero apart.
func (c Circle) Distance(other Circle) float64 {
	return math.Max(c.Center.Distance(other.Center)-(c.Radius+other.Radius), 0)
}

// Whether p lies on or inside the circle.
func (c Circle) Contains(p Point) bool {
	return c.Center.Distance(p) <= c.Radius
}

// Like Contains, but points up to eps outside the boundary count as inside.
func (c Circle) ContainsWithin(p Point, eps float64) bool {
	return c.Center.Distance(p) <= c.Radius+eps
}

func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

func (c Circle) String() string {
	return fmt.Sprintf("Circle(center = %v, radius = %g)", c.Center, c.Radius)
}

// Readable, colored name for debug output. Zero radius circles are cyan.
func (c Circle) DbgName() string {
	name := dbg.Name(c)
	if c.Radius == 0 {
		return aurora.Cyan(name).String()
	}
	return aurora.Green(name).String()
}

// The circle having s as its diameter.
func CircleByDiameter(s Segment) Circle {
	return Circle{s.Midpoint(), s.Length() / 2}
}

// The circumcircle of three points. When the points are collinear there is no
// such circle, and that is an error.
func CircleByThreePoints(p1, p2, p3 Point, eps float64) Circle {
	circle, ok := circumcircle(p1, p2, p3, eps)
	if !ok {
		fatalf(ErrDegenerateInput, "points %v, %v, %v are collinear", p1, p2, p3)
	}
	return circle
}

// Both perpendicular bisector equations are solved at once in determinant form.
// The determinant is twice the triangle's area, so it is compared against the
// squared longest side: the points are collinear when the third one sits within
// eps of the longest side, measured in units of that side's length.
func circumcircle(p1, p2, p3 Point, eps float64) (Circle, bool) {
	offset := p2.X*p2.X + p2.Y*p2.Y
	bc := (p1.X*p1.X + p1.Y*p1.Y - offset) / 2
	cd := (offset - p3.X*p3.X - p3.Y*p3.Y) / 2
	det := (p1.X-p2.X)*(p2.Y-p3.Y) - (p2.X-p3.X)*(p1.Y-p2.Y)

	longest := math.Max(p1.Distance(p2), math.Max(p2.Distance(p3), p1.Distance(p3)))
	if !(math.Abs(det) > eps*longest*longest) {
		return Circle{}, false
	}

	center := Point{
		X: (bc*(p2.Y-p3.Y) - cd*(p1.Y-p2.Y)) / det,
		Y: (cd*(p1.X-p2.X) - bc*(p2.X-p3.X)) / det,
	}
	return Circle{center, center.Distance(p2)}, true
}

// Find the two circles with the smallest gap between them. This is a plain scan
// over every pair (circles[j], circles[i]) with j < i; on ties the first pair in
// that order wins.
func FindNearestCirclePair(circles []Circle) (Circle, Circle) {
	if len(circles) < 2 {
		fatalf(ErrInsufficientInput, "need at least two circles, got %d", len(circles))
	}

	minDistance := math.Inf(1)
	var first, second Circle
	for i := 1; i < len(circles); i++ {
		for j := 0; j < i; j++ {
			distance := circles[j].Distance(circles[i])
			if distance < minDistance {
				minDistance = distance
				first, second = circles[j], circles[i]
			}
		}
	}
	return first, second
}
