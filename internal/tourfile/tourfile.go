// Package tourfile reads and writes YAML tour documents for the kopt CLI.
//
// A document describes one instance and, optionally, a visiting order:
//
//	name: square
//	points:          # either points ...
//	  - [0, 0]
//	  - [1, 1]
//	matrix:          # ... or a symmetric distance matrix, never both
//	  - [0, 2]
//	  - [2, 0]
//	order: [1, 0]    # optional permutation of 0..n-1; identity when absent
//	length: 4        # written by the CLI, ignored on input
//
// Decoding is strict: unknown fields are rejected.
package tourfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/kopt/metric"
	"github.com/katalvlaran/kopt/tour"
)

var (
	// ErrNoInstance is returned when neither points nor matrix is present.
	ErrNoInstance = errors.New("tourfile: document has neither points nor matrix")

	// ErrAmbiguousInstance is returned when both points and matrix are present.
	ErrAmbiguousInstance = errors.New("tourfile: document has both points and matrix")

	// ErrBadPoint is returned for a point that is not an [x, y] pair.
	ErrBadPoint = errors.New("tourfile: point must have exactly two coordinates")

	// ErrInvalidOrder is returned when order is not a permutation of 0..n-1.
	ErrInvalidOrder = errors.New("tourfile: order is not a permutation of the nodes")
)

// Document is the on-disk form of a tour.
type Document struct {
	Name   string      `yaml:"name,omitempty"`
	Points [][]float64 `yaml:"points,omitempty,flow"`
	Matrix [][]float64 `yaml:"matrix,omitempty,flow"`
	Order  []int       `yaml:"order,omitempty,flow"`
	Length float64     `yaml:"length,omitempty"`
}

// Decode parses and validates a document.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("tourfile: decode: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Load reads and decodes the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tourfile: read %s: %w", path, err)
	}

	return Decode(bytes.NewReader(data))
}

// Encode writes d as YAML.
func (d *Document) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("tourfile: encode: %w", err)
	}

	return enc.Close()
}

// Save writes d to path, replacing any existing file.
func (d *Document) Save(path string) error {
	var buf bytes.Buffer
	if err := d.Encode(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("tourfile: write %s: %w", path, err)
	}

	return nil
}

// Size returns the number of nodes described by d.
func (d *Document) Size() int {
	if len(d.Points) > 0 {
		return len(d.Points)
	}

	return len(d.Matrix)
}

// Validate checks the structural invariants that do not need a distance table.
// Matrix contents are validated by metric.NewTable in Table.
func (d *Document) Validate() error {
	switch {
	case len(d.Points) == 0 && len(d.Matrix) == 0:
		return ErrNoInstance
	case len(d.Points) > 0 && len(d.Matrix) > 0:
		return ErrAmbiguousInstance
	}

	var p []float64
	for _, p = range d.Points {
		if len(p) != 2 {
			return ErrBadPoint
		}
	}

	if d.Order == nil {
		return nil
	}
	n := d.Size()
	if len(d.Order) != n {
		return ErrInvalidOrder
	}
	seen := make([]bool, n)

	var v int
	for _, v = range d.Order {
		if v < 0 || v >= n || seen[v] {
			return ErrInvalidOrder
		}
		seen[v] = true
	}

	return nil
}

// Table returns the distance table of the instance: Euclidean distances for
// point documents, the validated matrix otherwise.
func (d *Document) Table() (*metric.Table, error) {
	if len(d.Points) == 0 {
		return metric.NewTable(d.Matrix)
	}

	pts := make([]metric.Point, len(d.Points))

	var i int
	for i = range d.Points {
		pts[i] = metric.NewPoint(d.Points[i][0], d.Points[i][1])
	}

	return metric.EuclideanTable(pts)
}

// Tour builds the initial tour over tb in document order (identity when
// Order is absent). tb must have Size() nodes.
func (d *Document) Tour(tb *metric.Table) *tour.Tour[metric.Vertex] {
	n := tb.Size()
	nodes := make([]metric.Vertex, n)

	var i int
	for i = 0; i < n; i++ {
		if d.Order != nil {
			nodes[i] = tb.Vertex(d.Order[i])
		} else {
			nodes[i] = tb.Vertex(i)
		}
	}

	return tour.New(nodes)
}

// WithTour returns a copy of d whose Order and Length describe t.
func (d *Document) WithTour(t *tour.Tour[metric.Vertex]) *Document {
	out := *d
	out.Order = make([]int, t.Len())

	var i int
	for i = range out.Order {
		out.Order[i] = t.At(i).ID()
	}
	out.Length = t.Length()

	return &out
}
