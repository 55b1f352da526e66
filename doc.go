// Package kopt is the module root of a randomized k-opt tour improver for the
// travelling-salesperson problem. It holds documentation only; the engine is
// the nested package github.com/katalvlaran/kopt/kopt.
//
// Under the hood, everything is organized under these packages:
//
//	metric/            : the Distance capability, 2-D points, dense distance tables
//	tour/              : the cyclic node sequence and its length
//	kopt/              : 2-opt and 3-opt moves, the dispatcher and the escalating driver
//	internal/tourfile/ : YAML tour documents
//	internal/cli/      : cobra commands (optimize, bench)
//	cmd/kopt/          : the binary
//
// Quick example:
//
//	import (
//		"github.com/katalvlaran/kopt/kopt"
//		"github.com/katalvlaran/kopt/metric"
//		"github.com/katalvlaran/kopt/tour"
//	)
//
//	t := tour.New(metric.Points([][2]float64{{0, 0}, {1, 1}, {1, 0}, {0, 1}}))
//	kopt.Optimize(t, 100*time.Millisecond, kopt.WithSeed(7))
//	// t now visits the square along its boundary (length 4).
//
//	go install github.com/katalvlaran/kopt/cmd/kopt@latest
package kopt
