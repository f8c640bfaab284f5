package internal

import "github.com/pkg/errors"

// Threading errors through every nested construction (the enclosing circle
// helpers call the circumcircle, which calls the point math, and so on) would
// clutter the geometry. Instead, we panic with a GeometryError, and the public
// API recovers to convert it to an error.

var (
	ErrInsufficientInput = errors.New("insufficient input")
	ErrEmptyInput        = errors.New("empty input")
	ErrDegenerateInput   = errors.New("degenerate input")
	ErrInvalidAngle      = errors.New("invalid line angle")
	ErrNoIntersection    = errors.New("no intersection")
)

// GeometryError carries one of the error kinds above. Use errors.Is against the
// kind to find out what went wrong.
type GeometryError struct {
	err error
}

func (e *GeometryError) Error() string { return e.err.Error() }

func (e *GeometryError) Unwrap() error { return e.err }

// Panic with a GeometryError of the given kind.
func fatalf(kind error, format string, args ...interface{}) {
	panic(&GeometryError{errors.Wrapf(kind, format, args...)})
}

// Converts a recovered GeometryError back into an error. Anything else is a real
// panic, so it gets rethrown.
func HandleGeometryPanicRecover(r interface{}) error {
	if r != nil {
		if geometryError, ok := r.(*GeometryError); ok {
			return geometryError
		}
		panic(r)
	}
	return nil
}
