// Package kopt - the 2-opt move.
//
// TwoOpt evaluates a single segment reversal by full recomputation:
// the candidate's cyclic length and the current length are both summed from
// scratch (O(n) distance calls each) and compared. No edge-delta shortcut is
// used, so the reported gain is exactly the difference of the two sums.
//
// Contracts:
//   - 0 ≤ i < j ≤ Len(); positions [i, j) are reversed.
//   - The tour is replaced only when the candidate is strictly shorter.
//
// Complexity: O(n) time and O(n) extra space per call.
package kopt

import (
	"slices"

	"github.com/katalvlaran/kopt/metric"
	"github.com/katalvlaran/kopt/tour"
)

// TwoOpt proposes reversing positions [i, j) of t. If the result is strictly
// shorter it replaces t's contents and returns (newLength-oldLength, true),
// a negative delta. Otherwise t is left untouched and (0, false) is returned.
func TwoOpt[T metric.Metric[T]](i, j int, t *tour.Tour[T]) (float64, bool) {
	if i < 0 || j > t.Len() || i >= j {
		panic(panicTwoOptIndices)
	}

	candidate := t.Nodes()
	ReverseSegment(candidate, i, j)

	prev := t.Length()
	post := tour.Length(candidate)
	if post < prev {
		_ = t.Replace(candidate) // same length by construction

		return post - prev, true
	}

	return 0, false
}

// ReverseSegment reverses nodes[i:j] in place. Applying it twice with the
// same (i, j) restores the original order.
//
// Complexity: O(j-i).
func ReverseSegment[T any](nodes []T, i, j int) {
	slices.Reverse(nodes[i:j])
}
