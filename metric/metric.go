package metric

import "math"

// Metric is satisfied by any node type T that can measure its distance to
// another node of the same type. The engine is generic over this capability
// and assumes nothing else about T.
type Metric[T any] interface {
	Distance(other T) float64
}

// Point is a node in the Euclidean plane.
type Point struct {
	X float64
	Y float64
}

var _ Metric[Point] = Point{}

// NewPoint returns the point (x, y).
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Distance returns the Euclidean distance between p and q.
//
// Complexity: O(1).
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Points converts raw coordinate pairs into Points, preserving order.
func Points(coords [][2]float64) []Point {
	out := make([]Point, len(coords))

	var i int
	for i = range coords {
		out[i] = Point{X: coords[i][0], Y: coords[i][1]}
	}

	return out
}
