package main

import (
	"fmt"
	"os"

	"github.com/osuushi/planar/advanced"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Command line front end for the geometry constructions. Input on stdin is
// newline separated points in the form "x y" (or circles, "x y r"), unless --svg
// names a file to read shapes from instead.

var (
	app = kingpin.New("planar", "Planar geometry constructions on point and circle sets.")

	configPath = app.Flag("config", "YAML file with epsilon and seed settings.").ExistingFile()
	svgPath    = app.Flag("svg", "Read shapes from an SVG file instead of stdin.").ExistingFile()
	format     = app.Flag("format", "Output format.").Default("text").Enum("text", "yaml")
	pngPath    = app.Flag("png", "Also draw the input and result to this PNG file.").String()
	inline     = app.Flag("imgcat", "Print the drawing inline in the terminal (iTerm only). Implies --png.").Bool()
	scale      = app.Flag("scale", "Pixels per unit when drawing.").Default("20").Float64()
	verbose    = app.Flag("verbose", "Trace the enclosing circle search on stderr.").Short('v').Bool()

	encloseCmd  = app.Command("enclose", "Minimum enclosing circle of the input points.")
	seed        = encloseCmd.Flag("seed", "Seed for the point shuffle. Overrides the config.").Int64()
	diameterCmd = app.Command("diameter", "Farthest pair of the input points.")
	nearestCmd  = app.Command("nearest", "Nearest pair of the input circles.")
	circumCmd   = app.Command("circumcircle", "Circle through exactly three input points.")
	crossCmd    = app.Command("cross", "Intersection of the line through points 1-2 with the line through points 3-4.")
	bisectorCmd = app.Command("bisector", "Perpendicular bisector of exactly two input points.")
	containsCmd = app.Command("contains", "Whether the triangle of the first three points contains each remaining point.")
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg, err := loadConfig()
	app.FatalIfError(err, "loading config")

	scene, err := readScene(command == nearestCmd.FullCommand())
	app.FatalIfError(err, "reading input")

	var out *result
	switch command {
	case encloseCmd.FullCommand():
		out, err = enclose(scene, cfg)
	case diameterCmd.FullCommand():
		out, err = diameter(scene)
	case nearestCmd.FullCommand():
		out, err = nearest(scene)
	case circumCmd.FullCommand():
		out, err = circumcircle(scene, cfg)
	case crossCmd.FullCommand():
		out, err = cross(scene, cfg)
	case bisectorCmd.FullCommand():
		out, err = bisector(scene)
	case containsCmd.FullCommand():
		out, err = contains(scene, cfg)
	}
	app.FatalIfError(err, "%s", command)

	app.FatalIfError(writeResult(os.Stdout, out, *format), "writing result")

	if *inline && *pngPath == "" {
		*pngPath = "/tmp/planar.png"
	}
	if *pngPath != "" {
		app.FatalIfError(draw(scene, out, *pngPath, *scale, *inline), "drawing")
	}
}

func loadConfig() (*advanced.Config, error) {
	cfg := advanced.DefaultConfig()
	if *configPath != "" {
		f, err := os.Open(*configPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if cfg, err = advanced.LoadConfig(f); err != nil {
			return nil, err
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *verbose {
		cfg.Trace = func(c advanced.Circle, support ...advanced.Point) {
			fmt.Fprintf(os.Stderr, "%s %v through %v\n", c.DbgName(), c, support)
		}
	}
	return cfg, nil
}
