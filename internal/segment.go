package internal

import "fmt"

// A segment between two points. Segments have no direction: two segments are
// equal if they have the same endpoints in either order.
type Segment struct {
	Begin Point `yaml:"begin"`
	End   Point `yaml:"end"`
}

func (s Segment) Equal(other Segment) bool {
	return s.Key() == other.Key()
}

// Canonical form of the segment, with the lexicographically smaller point first.
// Use this instead of the segment itself as a map key.
func (s Segment) Key() Segment {
	if s.End.Less(s.Begin) {
		return Segment{s.End, s.Begin}
	}
	return s
}

func (s Segment) Length() float64 {
	return s.Begin.Distance(s.End)
}

func (s Segment) Midpoint() Point {
	return s.Begin.Midpoint(s.End)
}

func (s Segment) String() string {
	return fmt.Sprintf("%v-%v", s.Begin, s.End)
}
