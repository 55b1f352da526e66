package kopt_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kopt/kopt"
	"github.com/katalvlaran/kopt/metric"
	"github.com/katalvlaran/kopt/tour"
)

// TestThreeOpt_Reconnections pins one instance per alternative. The cases are
// built so that exactly the expected alternative is the first improving one
// in the d1, d2, d4, d3 order.
func TestThreeOpt_Reconnections(t *testing.T) {
	a, b, c := metric.NewPoint(0, 0), metric.NewPoint(10, 0), metric.NewPoint(20, 1)
	d, e, f := metric.NewPoint(0, 1), metric.NewPoint(10, -1), metric.NewPoint(21, 0)

	cases := []struct {
		name    string
		in      []metric.Point
		i, j, k int
		want    []metric.Point
		delta   float64
	}{
		{
			name: "reverse first segment",
			in:   linePts(0, 2, 1, 3, 4, 5), i: 0, j: 2, k: 4,
			want: linePts(0, 1, 2, 3, 4, 5), delta: -2,
		},
		{
			name: "reverse second segment",
			in:   linePts(0, 1, 3, 2, 4, 5), i: 0, j: 1, k: 3,
			want: linePts(0, 1, 2, 3, 4, 5), delta: -2,
		},
		{
			// The swap would gain more (d3 = 3 vs d4 = 7), but d4 comes first.
			name: "reverse both segments wins over swap",
			in:   linePts(0, 3, 4, 1, 2, 5), i: 0, j: 2, k: 4,
			want: linePts(0, 2, 1, 4, 3, 5), delta: -2,
		},
		{
			name:  "swap segments",
			in:    []metric.Point{a, b, c, d, e, f},
			i:     0, j: 2, k: 4,
			want:  []metric.Point{a, d, e, b, c, f},
			delta: (1 + 1 + math.Sqrt2) - (10 + 20 + math.Sqrt(122)),
		},
		{
			name: "crossed square",
			in:   crossedPts(), i: 0, j: 1, k: 2,
			want: squarePts(), delta: 3 - (1 + 2*math.Sqrt2),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := tour.New(tc.in)
			before := tr.Length()

			delta, ok := kopt.ThreeOpt(tc.i, tc.j, tc.k, tr)

			require.True(t, ok)
			require.InDelta(t, tc.delta, delta, epsTiny)
			require.Equal(t, tc.want, tr.Nodes())
			require.InDelta(t, before+delta, tr.Length(), epsTiny)
		})
	}
}

func TestThreeOpt_RejectsOnOptimalSquare(t *testing.T) {
	var i, j, k int
	for i = 0; i < 4; i++ {
		for j = i + 1; j < 4; j++ {
			for k = j + 1; k < 4; k++ {
				tr := newTour(squarePts())
				delta, ok := kopt.ThreeOpt(i, j, k, tr)

				require.False(t, ok, "i=%d j=%d k=%d", i, j, k)
				require.Zero(t, delta)
				require.Equal(t, squarePts(), tr.Nodes())
			}
		}
	}
}

// TestThreeOpt_DeltaMatchesLength checks, for every triple on a random
// instance, that an accepted move changes the tour length by exactly the
// reported delta and keeps the node multiset, and that a rejected move leaves
// the tour untouched.
func TestThreeOpt_DeltaMatchesLength(t *testing.T) {
	pts := randomPts(10, seedDet)
	n := len(pts)

	accepted := 0
	var i, j, k int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			for k = j + 1; k < n; k++ {
				tr := newTour(pts)
				before := tr.Length()

				delta, ok := kopt.ThreeOpt(i, j, k, tr)
				if !ok {
					require.Equal(t, pts, tr.Nodes(), "i=%d j=%d k=%d", i, j, k)
					continue
				}
				accepted++
				require.Less(t, delta, 0.0)
				require.InDelta(t, before+delta, tr.Length(), epsTiny, "i=%d j=%d k=%d", i, j, k)
				require.True(t, tour.IsPermutation(pts, tr.Nodes()))
			}
		}
	}
	require.Positive(t, accepted, "a random tour should admit some 3-opt improvement")
}

func TestThreeOpt_PanicsOnBadIndices(t *testing.T) {
	tr := newTour(squarePts())

	require.Panics(t, func() { kopt.ThreeOpt(1, 1, 2, tr) })
	require.Panics(t, func() { kopt.ThreeOpt(0, 2, 2, tr) })
	require.Panics(t, func() { kopt.ThreeOpt(2, 1, 3, tr) })
	require.Panics(t, func() { kopt.ThreeOpt(0, 1, 4, tr) })
}
