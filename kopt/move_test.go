package kopt_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kopt/kopt"
	"github.com/katalvlaran/kopt/metric"
)

func TestMove_TwoOpt_EqualIndicesIsNoMove(t *testing.T) {
	// A single node: both draws are always 0.
	tr := newTour(squarePts()[:1])
	rng := kopt.NewRand(seedDet)

	Repeat(t, 5, func(t *testing.T) {
		delta, ok := kopt.Move(2, tr, rng)
		require.False(t, ok)
		require.Zero(t, delta)
		require.Equal(t, squarePts()[:1], tr.Nodes())
	})
}

func TestMove_ThreeOpt_CoincidingIndicesIsNoMove(t *testing.T) {
	// Two nodes: three draws from {0,1} always coincide somewhere.
	tr := newTour(squarePts()[:2])
	rng := kopt.NewRand(seedDet)

	Repeat(t, 10, func(t *testing.T) {
		delta, ok := kopt.Move(3, tr, rng)
		require.False(t, ok)
		require.Zero(t, delta)
		require.Equal(t, squarePts()[:2], tr.Nodes())
	})
}

func TestMove_NeverLengthens(t *testing.T) {
	pts := randomPts(15, seedDet)
	tr := newTour(pts)
	rng := kopt.NewRand(seedDet)

	var (
		k    int
		iter int
	)
	for _, k = range []int{2, 3} {
		for iter = 0; iter < 500; iter++ {
			before := tr.Length()
			delta, ok := kopt.Move(k, tr, rng)
			if ok {
				require.Less(t, delta, 0.0)
				require.InDelta(t, before+delta, tr.Length(), epsTiny)
			} else {
				require.Equal(t, before, tr.Length())
			}
		}
	}
}

func TestMove_UnsupportedArityPanics(t *testing.T) {
	tr := newTour(squarePts())
	rng := kopt.NewRand(seedDet)

	var k int
	for _, k = range []int{-1, 0, 1, 4, 5} {
		require.PanicsWithError(t, (&kopt.ArityError{Arity: k}).Error(), func() {
			kopt.Move(k, tr, rng)
		})
	}
	require.Equal(t, squarePts(), tr.Nodes())
}

func TestRecover_ConvertsArityPanic(t *testing.T) {
	tr := newTour(squarePts())
	rng := kopt.NewRand(seedDet)

	err := kopt.Recover(func() { kopt.Move(4, tr, rng) })
	require.Error(t, err)
	require.True(t, errors.Is(err, kopt.ErrUnsupportedArity))

	var ae *kopt.ArityError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, 4, ae.Arity)
	require.Equal(t, "kopt: unsupported move arity: 4", err.Error())

	require.NoError(t, kopt.Recover(func() { kopt.Move(2, tr, rng) }))
}

func TestRecover_RepanicsOtherValues(t *testing.T) {
	require.PanicsWithValue(t, "boom", func() {
		_ = kopt.Recover(func() { panic("boom") })
	})
}

func TestMove_EmptyTourPanics(t *testing.T) {
	tr := newTour([]metric.Point{})

	require.Panics(t, func() { kopt.Move(2, tr, kopt.NewRand(seedDet)) })
}
