package internal

import (
	"embed"
	"log"
)

// Fixtures are svg files in the fixtures/ directory, loaded by name sans
// extension. If anything goes wrong, the test binary dies. Files named invalid_*
// are malformed on purpose; tests open those directly.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) *Scene {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	scene, err := ReadSVG(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	return scene
}

// Run fn and return the geometry error it panics with, if any.
func catch(fn func()) (err error) {
	defer func() {
		err = HandleGeometryPanicRecover(recover())
	}()
	fn()
	return nil
}
