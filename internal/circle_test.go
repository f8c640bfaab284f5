package internal

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircleDistance(t *testing.T) {
	a := Circle{Point{0, 0}, 1}
	b := Circle{Point{5, 0}, 1}
	assert.InDelta(t, 3, a.Distance(b), 1e-12)
	assert.Equal(t, a.Distance(b), b.Distance(a))

	overlapping := Circle{Point{1, 0}, 1}
	assert.Zero(t, a.Distance(overlapping))

	nested := Circle{Point{0, 0}, 10}
	assert.Zero(t, a.Distance(nested))
}

func TestCircleContains(t *testing.T) {
	c := Circle{Point{0, 0}, 1}
	assert.True(t, c.Contains(Point{0, 0}))
	assert.True(t, c.Contains(Point{1, 0}), "boundary")
	assert.True(t, c.Contains(Point{0, -1}), "boundary")
	assert.False(t, c.Contains(Point{1, 1}))
	assert.False(t, c.Contains(Point{1.0001, 0}))
	assert.True(t, c.ContainsWithin(Point{1.0001, 0}, 1e-3))

	assert.InDelta(t, math.Pi, c.Area(), 1e-12)
}

func TestCircleByDiameter(t *testing.T) {
	p, q := Point{-1, 2}, Point{5, 10}
	c := CircleByDiameter(Segment{p, q})
	assert.Equal(t, Point{2, 6}, c.Center)
	assert.InDelta(t, p.Distance(q)/2, c.Radius, 1e-12)
	assert.True(t, c.Contains(p))
	assert.True(t, c.Contains(q))

	// Degenerate diameter is a point circle
	assert.Equal(t, Circle{p, 0}, CircleByDiameter(Segment{p, p}))
}

func TestCircleByThreePoints(t *testing.T) {
	t.Run("right triangle", func(t *testing.T) {
		c := CircleByThreePoints(Point{0, 0}, Point{4, 0}, Point{0, 3}, Epsilon)
		assert.InDelta(t, 2, c.Center.X, 1e-12)
		assert.InDelta(t, 1.5, c.Center.Y, 1e-12)
		assert.InDelta(t, 2.5, c.Radius, 1e-12)
	})

	t.Run("equidistant", func(t *testing.T) {
		triples := [][3]Point{
			{{1, 1}, {-3, 2}, {0.5, -4}},
			{{100, 100}, {101, 103}, {98, 104}},
			{{-1e3, 0}, {0, 1e3}, {1e3, 0}},
		}
		for _, triple := range triples {
			c := CircleByThreePoints(triple[0], triple[1], triple[2], Epsilon)
			for _, p := range triple {
				assert.InDelta(t, c.Radius, c.Center.Distance(p), 1e-6*math.Max(1, c.Radius))
			}
		}
	})

	t.Run("scale does not matter", func(t *testing.T) {
		for _, scale := range []float64{1e-4, 1e-3, 1, 1e6} {
			p1, p2, p3 := Point{0, 0}, Point{scale, 0}, Point{scale / 2, scale * 0.866}
			c := CircleByThreePoints(p1, p2, p3, Epsilon)
			for _, p := range []Point{p1, p2, p3} {
				assert.InEpsilon(t, c.Radius, c.Center.Distance(p), 1e-9, "scale %g", scale)
			}
		}

		err := catch(func() {
			CircleByThreePoints(Point{0, 0}, Point{1e-3, 1e-3}, Point{2e-3, 2e-3}, Epsilon)
		})
		assert.True(t, errors.Is(err, ErrDegenerateInput))
	})

	t.Run("collinear", func(t *testing.T) {
		err := catch(func() {
			CircleByThreePoints(Point{0, 0}, Point{1, 1}, Point{2, 2}, Epsilon)
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDegenerateInput))

		err = catch(func() {
			CircleByThreePoints(Point{0, 0}, Point{0, 0}, Point{2, 2}, Epsilon)
		})
		assert.True(t, errors.Is(err, ErrDegenerateInput))
	})
}

func TestFindNearestCirclePair(t *testing.T) {
	t.Run("disjoint", func(t *testing.T) {
		a := Circle{Point{0, 0}, 1}
		b := Circle{Point{10, 0}, 1}
		c := Circle{Point{0, 5}, 1}
		first, second := FindNearestCirclePair([]Circle{a, b, c})
		assert.Equal(t, a, first)
		assert.Equal(t, c, second)
	})

	t.Run("ties go to the first pair scanned", func(t *testing.T) {
		a := Circle{Point{0, 0}, 1}
		b := Circle{Point{4, 0}, 1}
		c := Circle{Point{8, 0}, 1}
		first, second := FindNearestCirclePair([]Circle{a, b, c})
		assert.Equal(t, a, first)
		assert.Equal(t, b, second)
	})

	t.Run("fixture", func(t *testing.T) {
		scene := LoadFixture("scatter")
		first, second := FindNearestCirclePair(scene.Circles)
		assert.Equal(t, Circle{Point{50, 50}, 5}, first)
		assert.Equal(t, Circle{Point{60, 52}, 4}, second)
	})

	t.Run("too few", func(t *testing.T) {
		err := catch(func() { FindNearestCirclePair([]Circle{{Point{0, 0}, 1}}) })
		assert.True(t, errors.Is(err, ErrInsufficientInput))
		err = catch(func() { FindNearestCirclePair(nil) })
		assert.True(t, errors.Is(err, ErrInsufficientInput))
	})
}

func TestDiameter(t *testing.T) {
	t.Run("collinear", func(t *testing.T) {
		s := Diameter([]Point{{0, 0}, {1, 0}, {5, 0}})
		assert.Equal(t, Segment{Point{0, 0}, Point{5, 0}}, s)
	})

	t.Run("fixture", func(t *testing.T) {
		scene := LoadFixture("scatter")
		s := Diameter(scene.Points)
		assert.Equal(t, Segment{Point{10, 10}, Point{60, 52}}, s)
	})

	t.Run("no pair is farther", func(t *testing.T) {
		points := []Point{{3, 1}, {-4, 2}, {0, 0}, {7, -6}, {2, 9}, {-5, -5}}
		s := Diameter(points)
		for _, p := range points {
			for _, q := range points {
				assert.LessOrEqual(t, p.Distance(q), s.Length())
			}
		}
	})

	t.Run("coincident", func(t *testing.T) {
		p := Point{1, 1}
		assert.Equal(t, Segment{p, p}, Diameter([]Point{p, p, p}))
	})

	t.Run("too few", func(t *testing.T) {
		err := catch(func() { Diameter([]Point{{1, 1}}) })
		assert.True(t, errors.Is(err, ErrInsufficientInput))
	})
}
