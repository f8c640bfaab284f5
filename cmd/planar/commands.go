package main

import (
	"github.com/osuushi/planar/advanced"
	"github.com/pkg/errors"
)

// The outcome of one command. Only the fields the command fills in are
// printed.
type result struct {
	Point    *advanced.Point   `yaml:"point,omitempty"`
	Segment  *advanced.Segment `yaml:"segment,omitempty"`
	Line     *lineResult       `yaml:"line,omitempty"`
	Circle   *advanced.Circle  `yaml:"circle,omitempty"`
	Circles  []advanced.Circle `yaml:"circles,omitempty"`
	Distance *float64          `yaml:"distance,omitempty"`
	Contains []bool            `yaml:"contains,omitempty"`
}

type lineResult struct {
	B     float64 `yaml:"b"`
	Angle float64 `yaml:"angle"`
}

func enclose(scene *advanced.Scene, cfg *advanced.Config) (*result, error) {
	circle, err := advanced.MinContainingCircle(scene.Points, cfg)
	if err != nil {
		return nil, err
	}
	return &result{Circle: &circle}, nil
}

func diameter(scene *advanced.Scene) (*result, error) {
	segment, err := advanced.Diameter(scene.Points)
	if err != nil {
		return nil, err
	}
	length := segment.Length()
	return &result{Segment: &segment, Distance: &length}, nil
}

func nearest(scene *advanced.Scene) (*result, error) {
	first, second, err := advanced.FindNearestCirclePair(scene.Circles)
	if err != nil {
		return nil, err
	}
	distance := first.Distance(second)
	return &result{Circles: []advanced.Circle{first, second}, Distance: &distance}, nil
}

func circumcircle(scene *advanced.Scene, cfg *advanced.Config) (*result, error) {
	if err := expectPoints(scene, 3); err != nil {
		return nil, err
	}
	p := scene.Points
	circle, err := advanced.CircleByThreePoints(p[0], p[1], p[2], cfg)
	if err != nil {
		return nil, err
	}
	return &result{Circle: &circle}, nil
}

func cross(scene *advanced.Scene, cfg *advanced.Config) (*result, error) {
	if err := expectPoints(scene, 4); err != nil {
		return nil, err
	}
	p := scene.Points
	point, err := advanced.CrossPoint(advanced.LineByPoints(p[0], p[1]), advanced.LineByPoints(p[2], p[3]), cfg)
	if err != nil {
		return nil, err
	}
	return &result{Point: &point}, nil
}

func bisector(scene *advanced.Scene) (*result, error) {
	if err := expectPoints(scene, 2); err != nil {
		return nil, err
	}
	p := scene.Points
	line := advanced.BisectorByPoints(p[0], p[1])
	midpoint := p[0].Midpoint(p[1])
	return &result{Point: &midpoint, Line: &lineResult{line.B(), line.Angle()}}, nil
}

func contains(scene *advanced.Scene, cfg *advanced.Config) (*result, error) {
	if len(scene.Points) < 3 {
		return nil, errors.Wrapf(advanced.ErrInsufficientInput, "need a triangle, got %d points", len(scene.Points))
	}
	p := scene.Points
	triangle, err := advanced.NewTriangle(p[0], p[1], p[2])
	if err != nil {
		return nil, err
	}
	inside := make([]bool, 0, len(p)-3)
	for _, point := range p[3:] {
		inside = append(inside, triangle.ContainsWithin(point, cfg.Tolerance()))
	}
	return &result{Contains: inside}, nil
}

func expectPoints(scene *advanced.Scene, n int) error {
	if len(scene.Points) != n {
		return errors.Wrapf(advanced.ErrInsufficientInput, "need exactly %d points, got %d", n, len(scene.Points))
	}
	return nil
}
