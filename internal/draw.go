package internal

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Padding around the shapes, in pixels
const drawPadding = 20

// Radius of a drawn point, in pixels
const drawPointRadius = 3

// Render the scene, with highlight drawn on top in a second color. Scale is
// pixels per unit. The y axis points up, like it does in the geometry.
func (s *Scene) Draw(scale float64, highlight *Scene) *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	grow := func(p Point, r float64) {
		minX = math.Min(minX, p.X-r)
		minY = math.Min(minY, p.Y-r)
		maxX = math.Max(maxX, p.X+r)
		maxY = math.Max(maxY, p.Y+r)
	}
	for _, scene := range []*Scene{s, highlight} {
		if scene == nil {
			continue
		}
		for _, p := range scene.Points {
			grow(p, 0)
		}
		for _, c := range scene.Circles {
			grow(c.Center, c.Radius)
		}
		for _, seg := range scene.Segments {
			grow(seg.Begin, 0)
			grow(seg.End, 0)
		}
	}
	if math.IsInf(minX, 1) { // Nothing to draw
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	s.stroke(c, scale)
	c.SetRGB(0, 1, 1)
	c.Stroke()
	if highlight != nil {
		highlight.stroke(c, scale)
		c.SetRGB(1, 0.3, 0.3)
		c.Stroke()
	}
	return c
}

// Add the scene's shapes to the current path. Points become small circles.
func (s *Scene) stroke(c *gg.Context, scale float64) {
	for _, circle := range s.Circles {
		c.NewSubPath()
		c.DrawCircle(circle.Center.X, circle.Center.Y, circle.Radius)
	}
	for _, seg := range s.Segments {
		c.NewSubPath()
		c.MoveTo(seg.Begin.X, seg.Begin.Y)
		c.LineTo(seg.End.X, seg.End.Y)
	}
	for _, p := range s.Points {
		c.NewSubPath()
		c.DrawCircle(p.X, p.Y, drawPointRadius/scale)
	}
}

// Save the drawing as a png, and if inline is set, also print it to the
// terminal (iTerm only).
func SaveDrawing(c *gg.Context, path string, inline bool) error {
	if err := c.SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	if inline {
		imgcat.CatFile(path, os.Stdout)
	}
	return nil
}
