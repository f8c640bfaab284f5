package internal

// Find the two points farthest apart. The scan visits (points[j], points[i]) for
// every j < i, and the first pair at the maximum distance wins.
func Diameter(points []Point) Segment {
	if len(points) < 2 {
		fatalf(ErrInsufficientInput, "need at least two points, got %d", len(points))
	}

	// Seed with the first pair rather than a zero distance, so coincident input
	// still returns input points.
	result := Segment{points[0], points[1]}
	maxDistance := result.Length()
	for i := 2; i < len(points); i++ {
		for j := 0; j < i; j++ {
			distance := points[j].Distance(points[i])
			if distance > maxDistance {
				maxDistance = distance
				result = Segment{points[j], points[i]}
			}
		}
	}
	return result
}
