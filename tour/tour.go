// Package tour - the cyclic node sequence improved by the k-opt engine.
//
// A Tour is an ordered, cyclic sequence of nodes: the node after the last is
// the first. Its length is the sum of distances over all cyclic adjacent
// pairs. The engine mutates a Tour in place; callers inspect the same value
// after the engine returns.
//
// Provided helpers:
//   - New / Clone: construction from a node slice (always copied).
//   - Len / At / Nodes / Slice: read access; Nodes and Slice return copies.
//   - Replace: whole-sequence replacement with a same-sized candidate.
//   - Length / Length (func): total cyclic length.
//   - IsPermutation: multiset equality, used to check tour invariants.
//   - DebugString: compact printable representation for tests/debug.
//
// Design:
//   - No logging, no panics on user input; sentinel errors only.
//   - A Tour is NOT goroutine-safe. It is owned by one optimization call at a time.
package tour

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/kopt/metric"
)

// ErrLengthMismatch is returned by Replace when the candidate has a different node count.
var ErrLengthMismatch = errors.New("tour: replacement length mismatch")

// Tour is a Hamiltonian cycle over nodes of type T.
type Tour[T metric.Metric[T]] struct {
	nodes []T
}

// New returns a tour visiting nodes in the given order. The slice is copied,
// so later changes to nodes do not affect the tour.
//
// Complexity: O(n).
func New[T metric.Metric[T]](nodes []T) *Tour[T] {
	cp := make([]T, len(nodes))
	copy(cp, nodes)

	return &Tour[T]{nodes: cp}
}

// Len returns the number of nodes.
func (t *Tour[T]) Len() int { return len(t.nodes) }

// At returns the node at position i, 0 ≤ i < Len().
func (t *Tour[T]) At(i int) T { return t.nodes[i] }

// Nodes returns a copy of the current order.
func (t *Tour[T]) Nodes() []T { return t.Slice(0, len(t.nodes)) }

// Slice returns a copy of positions [i, j).
//
// Complexity: O(j-i).
func (t *Tour[T]) Slice(i, j int) []T {
	out := make([]T, j-i)
	copy(out, t.nodes[i:j])

	return out
}

// Replace overwrites the whole sequence with nodes. The candidate must have
// the same node count; being a permutation of the current nodes is the
// caller's contract and is not re-checked here.
//
// Complexity: O(n).
func (t *Tour[T]) Replace(nodes []T) error {
	if len(nodes) != len(t.nodes) {
		return ErrLengthMismatch
	}
	copy(t.nodes, nodes)

	return nil
}

// Length returns the total cyclic length of the tour.
//
// Complexity: O(n) distance calls.
func (t *Tour[T]) Length() float64 { return Length(t.nodes) }

// Clone returns an independent copy of t.
func (t *Tour[T]) Clone() *Tour[T] { return New(t.nodes) }

// Length sums Distance over all cyclic adjacent pairs of nodes.
// Tours with fewer than two nodes have length 0.
//
// Complexity: O(n) distance calls.
func Length[T metric.Metric[T]](nodes []T) float64 {
	n := len(nodes)
	if n < 2 {
		return 0
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i < n-1; i++ {
		sum += nodes[i].Distance(nodes[i+1])
	}
	sum += nodes[n-1].Distance(nodes[0]) // closing edge

	return sum
}

// IsPermutation reports whether a and b hold the same multiset of nodes.
//
// Complexity: O(n) time, O(n) space.
func IsPermutation[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	count := make(map[T]int, len(a))

	var v T
	for _, v = range a {
		count[v]++
	}
	for _, v = range b {
		count[v]--
		if count[v] < 0 {
			return false
		}
	}

	return true
}

// DebugString returns a compact representation such as "[a b c | a]", where
// the vertical bar marks the closing edge back to the first node.
func (t *Tour[T]) DebugString() string {
	if len(t.nodes) == 0 {
		return "[]"
	}

	var (
		sb strings.Builder
		i  int
	)
	sb.WriteByte('[')
	for i = range t.nodes {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", t.nodes[i])
	}
	fmt.Fprintf(&sb, " | %v]", t.nodes[0])

	return sb.String()
}
