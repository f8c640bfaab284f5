package internal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSVG(t *testing.T) {
	t.Run("circles", func(t *testing.T) {
		scene := LoadFixture("scatter")
		require.Len(t, scene.Circles, 4)
		assert.Equal(t, Circle{Point{10, 10}, 2}, scene.Circles[0])
		assert.Equal(t, Circle{Point{60, 52}, 4}, scene.Circles[3])
		// Centers double as points
		assert.Equal(t, []Point{{10, 10}, {20, 10}, {50, 50}, {60, 52}}, scene.Points)
	})

	t.Run("polygons and polylines", func(t *testing.T) {
		scene := LoadFixture("hexagon")
		require.Len(t, scene.Points, 9)
		assert.Equal(t, Point{60, 50}, scene.Points[0])
		assert.Equal(t, Point{48, 53}, scene.Points[8])
		assert.Empty(t, scene.Circles)
	})

	t.Run("lines", func(t *testing.T) {
		scene := LoadFixture("crossing")
		require.Len(t, scene.Segments, 2)
		l1 := LineBySegment(scene.Segments[0])
		l2 := LineBySegment(scene.Segments[1])
		p := CrossPoint(l1, l2, Epsilon)
		assert.InDelta(t, 2, p.X, 1e-9)
		assert.InDelta(t, 2, p.Y, 1e-9)
	})

	t.Run("odd coordinate count", func(t *testing.T) {
		fixture, err := fixtures.Open("fixtures/invalid_odd_points.svg")
		require.NoError(t, err)
		defer fixture.Close()
		_, err = ReadSVG(fixture)
		assert.Error(t, err)
	})

	t.Run("bad number", func(t *testing.T) {
		_, err := ReadSVG(strings.NewReader(`<svg><circle cx="one" cy="2" r="3"/></svg>`))
		assert.Error(t, err)
	})

	t.Run("missing attributes default to zero", func(t *testing.T) {
		scene, err := ReadSVG(strings.NewReader(`<svg><circle r="3"/></svg>`))
		require.NoError(t, err)
		assert.Equal(t, []Circle{{Point{0, 0}, 3}}, scene.Circles)
	})
}

func TestParsePointList(t *testing.T) {
	points, err := parsePointList("1,2 3,4\n5 6")
	require.NoError(t, err)
	assert.Equal(t, []Point{{1, 2}, {3, 4}, {5, 6}}, points)

	points, err = parsePointList("")
	require.NoError(t, err)
	assert.Empty(t, points)

	_, err = parsePointList("1,x")
	assert.Error(t, err)
}
