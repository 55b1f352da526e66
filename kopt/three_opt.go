// Package kopt - the 3-opt move.
//
// ThreeOpt removes the three edges leaving positions i, j and k
// (0 ≤ i < j < k < n, successors taken modulo n):
//
//	(a,b) = (T[i], T[i+1])   (c,d) = (T[j], T[j+1])   (e,f) = (T[k], T[k+1 mod n])
//
// leaving S1 = T[i+1..j] (from b to c) and S2 = T[j+1..k] (from d to e).
// Four reconnections are priced against d0 = ab + cd + ef:
//
//	d1 = ac + bd + ef   reverse S1
//	d2 = ab + ce + df   reverse S2
//	d4 = fb + cd + ea   reverse S1+S2 as one block
//	d3 = ad + eb + cf   swap S1 and S2, no reversal
//
// and examined in the fixed order d1, d2, d4, d3. The first one strictly
// cheaper than d0 is committed and its delta returned. The decision touches
// only the six boundary nodes, so it costs O(1) distance calls regardless of n;
// only the commit is O(n). Internal edges cancel because Distance is symmetric.
package kopt

import (
	"slices"

	"github.com/katalvlaran/kopt/metric"
	"github.com/katalvlaran/kopt/tour"
)

// reconnection enumerates the 3-opt alternatives in evaluation order.
type reconnection uint8

const (
	reverseFirst  reconnection = iota // d1
	reverseSecond                     // d2
	reverseBoth                       // d4
	swapSegments                      // d3
)

// ThreeOpt prices the four reconnections of the edges leaving i, j and k and
// commits the first strictly improving one, returning (alt-d0, true).
// If none improves, t is left untouched and (0, false) is returned.
func ThreeOpt[T metric.Metric[T]](i, j, k int, t *tour.Tour[T]) (float64, bool) {
	n := t.Len()
	if i < 0 || i >= j || j >= k || k >= n {
		panic(panicThreeOptIndices)
	}

	a, b := t.At(i), t.At(i+1)
	c, d := t.At(j), t.At(j+1)
	e, f := t.At(k), t.At((k+1)%n)

	d0 := a.Distance(b) + c.Distance(d) + e.Distance(f)
	alts := [...]struct {
		kind reconnection
		cost float64
	}{
		{reverseFirst, a.Distance(c) + b.Distance(d) + e.Distance(f)},
		{reverseSecond, a.Distance(b) + c.Distance(e) + d.Distance(f)},
		{reverseBoth, f.Distance(b) + c.Distance(d) + e.Distance(a)},
		{swapSegments, a.Distance(d) + e.Distance(b) + c.Distance(f)},
	}

	var m int
	for m = range alts {
		if alts[m].cost < d0 {
			_ = t.Replace(reconnect(t.Nodes(), i, j, k, alts[m].kind))

			return alts[m].cost - d0, true
		}
	}

	return 0, false
}

// reconnect rewires nodes = P + S1 + S2 + tail, with S1 = nodes[i+1:j+1]
// and S2 = nodes[j+1:k+1]. Reversals happen in place; the swap allocates.
//
// Complexity: O(n).
func reconnect[T any](nodes []T, i, j, k int, kind reconnection) []T {
	switch kind {
	case reverseFirst:
		slices.Reverse(nodes[i+1 : j+1])
	case reverseSecond:
		slices.Reverse(nodes[j+1 : k+1])
	case reverseBoth:
		slices.Reverse(nodes[i+1 : k+1])
	default: // swapSegments
		out := make([]T, 0, len(nodes))
		out = append(out, nodes[:i+1]...)
		out = append(out, nodes[j+1:k+1]...)
		out = append(out, nodes[i+1:j+1]...)
		out = append(out, nodes[k+1:]...)

		return out
	}

	return nodes
}
