// Package metric - dense distance tables.
//
// Table stores an n×n distance matrix in a flat row-major buffer w[i*n+j],
// so that Vertex.Distance is a single slice read in the hot path.
//
// Design:
//   - Validation happens once in NewTable; Distance itself never fails.
//   - Strict sentinels only (see errors below); no panics on user input.
package metric

import (
	"errors"
	"math"
)

// DefaultSymmetryEps is the absolute tolerance used when checking w[i][j]==w[j][i].
const DefaultSymmetryEps = 1e-9

var (
	// ErrEmptyTable is returned when the input has no rows.
	ErrEmptyTable = errors.New("metric: empty distance table")

	// ErrNonSquare is returned when some row length differs from the row count.
	ErrNonSquare = errors.New("metric: distance table is not square")

	// ErrInvalidWeight is returned for NaN or ±Inf entries.
	ErrInvalidWeight = errors.New("metric: NaN or Inf distance")

	// ErrNegativeWeight is returned for negative entries.
	ErrNegativeWeight = errors.New("metric: negative distance")

	// ErrNonZeroDiagonal is returned when w[i][i] != 0.
	ErrNonZeroDiagonal = errors.New("metric: non-zero diagonal")

	// ErrAsymmetry is returned when |w[i][j]-w[j][i]| > DefaultSymmetryEps.
	ErrAsymmetry = errors.New("metric: distance table is not symmetric")
)

// Table is an immutable, validated, symmetric distance table.
type Table struct {
	n int
	w []float64
}

// NewTable validates rows and copies them into a new Table.
//
// Error priority: shape -> finiteness -> sign -> diagonal -> symmetry.
//
// Complexity: O(n²) time and space.
func NewTable(rows [][]float64) (*Table, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrEmptyTable
	}

	var i, j int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, ErrNonSquare
		}
	}

	w := make([]float64, n*n)
	var x float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			x = rows[i][j]
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, ErrInvalidWeight
			}
			if x < 0 {
				return nil, ErrNegativeWeight
			}
			w[i*n+j] = x
		}
	}
	for i = 0; i < n; i++ {
		if w[i*n+i] != 0 {
			return nil, ErrNonZeroDiagonal
		}
		for j = i + 1; j < n; j++ {
			if math.Abs(w[i*n+j]-w[j*n+i]) > DefaultSymmetryEps {
				return nil, ErrAsymmetry
			}
		}
	}

	return &Table{n: n, w: w}, nil
}

// EuclideanTable builds the pairwise Euclidean distance table of pts.
// The result depends only on coordinates, so validation cannot fail for finite input.
//
// Complexity: O(n²).
func EuclideanTable(pts []Point) (*Table, error) {
	rows := make([][]float64, len(pts))

	var i, j int
	for i = range pts {
		rows[i] = make([]float64, len(pts))
		for j = range pts {
			rows[i][j] = pts[i].Distance(pts[j])
		}
	}

	return NewTable(rows)
}

// Size returns the number of vertices n.
func (t *Table) Size() int { return t.n }

// At returns w[i][j]. Indices are not range-checked beyond the slice bounds.
func (t *Table) At(i, j int) float64 { return t.w[i*t.n+j] }

// Vertex returns the node handle for row id.
// It panics when id is out of range: handles must always refer to a real row.
func (t *Table) Vertex(id int) Vertex {
	if id < 0 || id >= t.n {
		panic("metric: Table.Vertex: id out of range")
	}

	return Vertex{id: id, table: t}
}

// Vertices returns the handles for rows 0..n-1 in order.
func (t *Table) Vertices() []Vertex {
	out := make([]Vertex, t.n)

	var i int
	for i = 0; i < t.n; i++ {
		out[i] = Vertex{id: i, table: t}
	}

	return out
}

// Vertex is a node backed by a row of a Table. Two vertices are equal (==)
// iff they refer to the same row of the same table.
type Vertex struct {
	id    int
	table *Table
}

var _ Metric[Vertex] = Vertex{}

// ID returns the row index of v.
func (v Vertex) ID() int { return v.id }

// Distance reads w[v][u] from the shared table.
// Both vertices must come from the same Table.
func (v Vertex) Distance(u Vertex) float64 {
	return v.table.w[v.id*v.table.n+u.id]
}
