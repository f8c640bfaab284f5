package internal

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// This is not a full (or even correct) svg reader. It pulls out the handful of
// elements that map onto our shapes:
//
//	<circle cx cy r>            a circle, and its center as a point
//	<polygon points>, <polyline points>  each vertex as a point
//	<line x1 y1 x2 y2>          a segment
//
// Transforms and units are ignored.

// A bag of shapes, as read from an svg or drawn for debugging.
type Scene struct {
	Points   []Point
	Circles  []Circle
	Segments []Segment
}

func ReadSVG(r io.Reader) (*Scene, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	scene := &Scene{}
	for _, el := range root.FindAll("circle") {
		values, err := floatAttributes(el, "cx", "cy", "r")
		if err != nil {
			return nil, err
		}
		circle := Circle{Point{values[0], values[1]}, values[2]}
		scene.Circles = append(scene.Circles, circle)
		scene.Points = append(scene.Points, circle.Center)
	}

	for _, name := range []string{"polygon", "polyline"} {
		for _, el := range root.FindAll(name) {
			points, err := parsePointList(el.Attributes["points"])
			if err != nil {
				return nil, errors.Wrapf(err, "reading %s", name)
			}
			scene.Points = append(scene.Points, points...)
		}
	}

	for _, el := range root.FindAll("line") {
		values, err := floatAttributes(el, "x1", "y1", "x2", "y2")
		if err != nil {
			return nil, err
		}
		scene.Segments = append(scene.Segments, Segment{Point{values[0], values[1]}, Point{values[2], values[3]}})
	}
	return scene, nil
}

// Missing attributes default to zero, as they do in svg.
func floatAttributes(el *svgparser.Element, names ...string) ([]float64, error) {
	values := make([]float64, len(names))
	for i, name := range names {
		raw, ok := el.Attributes[name]
		if !ok {
			continue
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid %s attribute %q on <%s>", name, raw, el.Name)
		}
		values[i] = value
	}
	return values, nil
}

// Points lists are coordinates separated by commas and/or whitespace, taken in
// pairs.
func parsePointList(s string) ([]Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", s)
	}
	points := make([]Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, Point{x, y})
	}
	return points, nil
}
