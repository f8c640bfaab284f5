package main

import (
	"fmt"
	"io"

	"github.com/osuushi/planar/advanced"
	"gopkg.in/yaml.v3"
)

func writeResult(w io.Writer, r *result, format string) error {
	if format == "yaml" {
		encoder := yaml.NewEncoder(w)
		defer encoder.Close()
		return encoder.Encode(r)
	}

	var err error
	printf := func(format string, args ...interface{}) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}
	if r.Point != nil {
		printf("point: %v\n", *r.Point)
	}
	if r.Segment != nil {
		printf("segment: %v\n", *r.Segment)
	}
	if r.Line != nil {
		printf("line: b = %g, angle = %g\n", r.Line.B, r.Line.Angle)
	}
	if r.Circle != nil {
		printf("circle: %v\n", *r.Circle)
	}
	for _, c := range r.Circles {
		printf("circle: %v\n", c)
	}
	if r.Distance != nil {
		printf("distance: %g\n", *r.Distance)
	}
	for _, inside := range r.Contains {
		printf("%t\n", inside)
	}
	return err
}

// Draw the input in one color and the result on top in another.
func draw(scene *advanced.Scene, r *result, path string, scale float64, inline bool) error {
	highlight := &advanced.Scene{Circles: r.Circles}
	if r.Circle != nil {
		highlight.Circles = append(highlight.Circles, *r.Circle)
	}
	if r.Segment != nil {
		highlight.Segments = append(highlight.Segments, *r.Segment)
	}
	if r.Point != nil {
		highlight.Points = append(highlight.Points, *r.Point)
	}
	return advanced.SaveDrawing(scene.Draw(scale, highlight), path, inline)
}
