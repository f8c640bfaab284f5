package internal

import (
	"fmt"
	"math"
	"sort"
)

// A triangle is an unordered set of three distinct points. The points are kept
// sorted, so two triangles built from the same points in any order compare
// equal with ==.
type Triangle struct {
	points [3]Point
}

func NewTriangle(a, b, c Point) Triangle {
	if a == b || b == c || c == a {
		fatalf(ErrDegenerateInput, "triangle needs three distinct points, got %v, %v, %v", a, b, c)
	}
	t := Triangle{[3]Point{a, b, c}}
	sort.Slice(t.points[:], func(i, j int) bool {
		return t.points[i].Less(t.points[j])
	})
	return t
}

// The vertex accessors follow the canonical order, not construction order.
func (t Triangle) A() Point { return t.points[0] }
func (t Triangle) B() Point { return t.points[1] }
func (t Triangle) C() Point { return t.points[2] }

func (t Triangle) HalfPerimeter() float64 {
	return halfPerimeter(t.points[0], t.points[1], t.points[2])
}

// Area by Heron's formula.
func (t Triangle) Area() float64 {
	return heronArea(t.points[0], t.points[1], t.points[2])
}

// Whether p is inside or on the triangle, using the default tolerance.
func (t Triangle) Contains(p Point) bool {
	return t.ContainsWithin(p, Epsilon)
}

// The three triangles formed by p and each edge cover the triangle exactly when
// p is inside it, and overshoot when p is outside. The comparison is relative to
// the area, so eps is scale free for large triangles.
func (t Triangle) ContainsWithin(p Point, eps float64) bool {
	a, b, c := t.points[0], t.points[1], t.points[2]
	area := t.Area()
	sum := heronArea(a, b, p) + heronArea(b, c, p) + heronArea(c, a, p)
	return sum-area <= eps*math.Max(1, area)
}

func (t Triangle) String() string {
	return fmt.Sprintf("Triangle(a = %v, b = %v, c = %v)", t.A(), t.B(), t.C())
}

func halfPerimeter(a, b, c Point) float64 {
	return (a.Distance(b) + b.Distance(c) + c.Distance(a)) / 2
}

// Heron's formula on raw points. Sub-triangles in Contains may be degenerate, and
// rounding can push the product slightly negative for those, so it's clamped.
func heronArea(a, b, c Point) float64 {
	p := halfPerimeter(a, b, c)
	product := p * (p - a.Distance(b)) * (p - b.Distance(c)) * (p - c.Distance(a))
	if product <= 0 {
		return 0
	}
	return math.Sqrt(product)
}
