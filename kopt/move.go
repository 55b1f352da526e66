package kopt

import (
	"math/rand"

	"github.com/katalvlaran/kopt/metric"
	"github.com/katalvlaran/kopt/tour"
)

// Move attempts one random k-opt move on t.
//
//   - k == 2: draws i, j; equal draws are a no-op, otherwise the pair is
//     sorted and handed to TwoOpt.
//   - k == 3: draws i, j, k3; any coincidence between the three draws is a
//     no-op, otherwise the triple is sorted and handed to ThreeOpt.
//   - any other k panics with *ArityError.
//
// The result is (delta, true) with delta < 0 for an accepted move and
// (0, false) for "no move". t must be non-empty.
func Move[T metric.Metric[T]](k int, t *tour.Tour[T], rng *rand.Rand) (float64, bool) {
	n := t.Len()

	switch k {
	case 2:
		i := randIndex(n, rng)
		j := randIndex(n, rng)
		if i == j {
			return 0, false
		}
		if i > j {
			i, j = j, i
		}

		return TwoOpt(i, j, t)

	case 3:
		i := randIndex(n, rng)
		j := randIndex(n, rng)
		k3 := randIndex(n, rng)
		if i == j || j == k3 || i == k3 {
			return 0, false
		}
		i, j, k3 = sort3(i, j, k3)

		return ThreeOpt(i, j, k3, t)

	default:
		panic(&ArityError{Arity: k})
	}
}

// sort3 returns x, y, z in ascending order.
func sort3(x, y, z int) (int, int, int) {
	if x > y {
		x, y = y, x
	}
	if y > z {
		y, z = z, y
	}
	if x > y {
		x, y = y, x
	}

	return x, y, z
}
