package kopt_test

import (
	"fmt"
	"time"

	"github.com/katalvlaran/kopt/kopt"
	"github.com/katalvlaran/kopt/metric"
	"github.com/katalvlaran/kopt/tour"
)

// ExampleTwoOpt uncrosses the two diagonals of a unit square.
func ExampleTwoOpt() {
	tr := tour.New(metric.Points([][2]float64{{0, 0}, {1, 1}, {1, 0}, {0, 1}}))

	_, ok := kopt.TwoOpt(1, 3, tr)
	fmt.Println(ok, tr.Nodes(), tr.Length())
	// Output: true [{0 0} {1 0} {1 1} {0 1}] 4
}

// ExampleOptimize improves a tour over a distance table in place.
func ExampleOptimize() {
	tb, err := metric.NewTable([][]float64{
		{0, 1, 5, 1, 5},
		{1, 0, 1, 5, 5},
		{5, 1, 0, 5, 1},
		{1, 5, 5, 0, 1},
		{5, 5, 1, 1, 0},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	vs := tb.Vertices()
	tr := tour.New([]metric.Vertex{vs[0], vs[2], vs[1], vs[4], vs[3]})

	kopt.Optimize(tr, 20*time.Millisecond, kopt.WithSeed(7))
	fmt.Println(tr.Length())
	// Output: 5
}
