package main

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/osuushi/planar/advanced"
	"github.com/pkg/errors"
)

func readScene(wantCircles bool) (*advanced.Scene, error) {
	if *svgPath != "" {
		f, err := os.Open(*svgPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return advanced.ReadSVG(f)
	}
	return parseScene(os.Stdin, wantCircles)
}

// Parse "x y" lines into points, or "x y r" lines into circles. Blank lines and
// lines starting with # are skipped.
func parseScene(in io.Reader, wantCircles bool) (*advanced.Scene, error) {
	scene := &advanced.Scene{}
	fieldCount := 2
	if wantCircles {
		fieldCount = 3
	}

	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != fieldCount {
			return nil, errors.Errorf("line %d: expected %d numbers, got %q", lineNumber, fieldCount, line)
		}
		values := make([]float64, fieldCount)
		for i, field := range fields {
			value, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNumber)
			}
			values[i] = value
		}

		point := advanced.Point{X: values[0], Y: values[1]}
		if wantCircles {
			if values[2] < 0 {
				return nil, errors.Errorf("line %d: negative radius %v", lineNumber, values[2])
			}
			scene.Circles = append(scene.Circles, advanced.Circle{Center: point, Radius: values[2]})
		}
		scene.Points = append(scene.Points, point)
	}
	return scene, errors.Wrap(scanner.Err(), "reading stdin")
}
