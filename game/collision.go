package game

import "math"

// Overlap é o teste AABB entre dois retângulos centrados.
func Overlap(a, b Rect) bool {
	dx := math.Abs(a.X - b.X)
	dy := math.Abs(a.Y - b.Y)
	return dx < float64(a.W+b.W)/2 && dy < float64(a.H+b.H)/2
}
