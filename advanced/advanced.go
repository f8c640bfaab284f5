// Package advanced exposes the geometry operations with an explicit Config, for
// callers that need to tune the tolerance to their coordinate scale or make the
// enclosing circle search reproducible.
package advanced

import (
	"io"

	"github.com/fogleman/gg"
	"github.com/osuushi/planar/internal"
)

type Point = internal.Point
type Segment = internal.Segment
type Line = internal.Line
type Triangle = internal.Triangle
type Circle = internal.Circle
type Config = internal.Config
type Scene = internal.Scene

// Error kinds. Test for them with errors.Is.
var (
	ErrInsufficientInput = internal.ErrInsufficientInput
	ErrEmptyInput        = internal.ErrEmptyInput
	ErrDegenerateInput   = internal.ErrDegenerateInput
	ErrInvalidAngle      = internal.ErrInvalidAngle
	ErrNoIntersection    = internal.ErrNoIntersection
)

func DefaultConfig() *Config {
	return internal.DefaultConfig()
}

func LoadConfig(r io.Reader) (*Config, error) {
	return internal.LoadConfig(r)
}

func ReadSVG(r io.Reader) (*Scene, error) {
	return internal.ReadSVG(r)
}

// Save a drawing made with Scene.Draw as a png, optionally echoing it to the
// terminal.
func SaveDrawing(c *gg.Context, path string, inline bool) error {
	return internal.SaveDrawing(c, path, inline)
}

// Deferred by every operation below to turn a geometry panic into the returned
// error.
func recoverInto(err *error) {
	if recoveredErr := HandleGeometryPanicRecover(recover()); recoveredErr != nil {
		*err = recoveredErr
	}
}

func HandleGeometryPanicRecover(r interface{}) error {
	return internal.HandleGeometryPanicRecover(r)
}

func NewLine(p Point, angle float64) (line Line, err error) {
	defer recoverInto(&err)
	return internal.NewLine(p, angle), nil
}

func LineByPoints(a, b Point) Line {
	return internal.LineByPoints(a, b)
}

func LineBySegment(s Segment) Line {
	return internal.LineBySegment(s)
}

func BisectorByPoints(a, b Point) Line {
	return internal.BisectorByPoints(a, b)
}

func CircleByDiameter(s Segment) Circle {
	return internal.CircleByDiameter(s)
}

// Intersection of two lines. A nil config uses the default tolerance for the
// parallel check.
func CrossPoint(l1, l2 Line, cfg *Config) (point Point, err error) {
	defer recoverInto(&err)
	return internal.CrossPoint(l1, l2, cfg.Tolerance()), nil
}

func NewTriangle(a, b, c Point) (triangle Triangle, err error) {
	defer recoverInto(&err)
	return internal.NewTriangle(a, b, c), nil
}

func CircleByThreePoints(p1, p2, p3 Point, cfg *Config) (circle Circle, err error) {
	defer recoverInto(&err)
	return internal.CircleByThreePoints(p1, p2, p3, cfg.Tolerance()), nil
}

func Diameter(points []Point) (segment Segment, err error) {
	defer recoverInto(&err)
	return internal.Diameter(points), nil
}

func FindNearestCirclePair(circles []Circle) (first, second Circle, err error) {
	defer recoverInto(&err)
	first, second = internal.FindNearestCirclePair(circles)
	return first, second, nil
}

func MinContainingCircle(points []Point, cfg *Config) (circle Circle, err error) {
	defer recoverInto(&err)
	return internal.MinContainingCircle(points, cfg), nil
}
