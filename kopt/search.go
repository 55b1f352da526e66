// Package kopt - the escalating local-search driver.
//
// State machine (one Step == one dispatcher call):
//
//	improvement      → stagnation = 0, arity = 2
//	no improvement   → stagnation++; if stagnation > limit { arity = 3; stagnation = 0 }
//
// limit is Len() unless WithStagnationLimit overrides it. Escalation is
// one-directional: arity returns to 2 only through an accepted move, never by
// stagnating at 3.
//
// Run loops Step until time.Since(start) exceeds the timeout, checking after
// every iteration. That check is the only termination condition and the only
// cancellation point; a single move is never interrupted.
package kopt

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/kopt/metric"
	"github.com/katalvlaran/kopt/tour"
)

// minSearchSize is the smallest tour with more than one distinct cycle length:
// every cyclic order of three or fewer nodes has the same length under a
// symmetric metric.
const minSearchSize = 4

// Stats summarizes one run.
type Stats struct {
	Iterations    int           // dispatcher calls
	Improvements2 int           // accepted 2-opt moves
	Improvements3 int           // accepted 3-opt moves
	Escalations   int           // 2 → 3 switches
	InitialLength float64       // tour length before the run
	FinalLength   float64       // tour length after the run
	Elapsed       time.Duration // wall-clock time spent in the loop
}

// Improvements returns the total number of accepted moves.
func (s Stats) Improvements() int { return s.Improvements2 + s.Improvements3 }

// Searcher holds the driver state for one tour. It is not goroutine-safe and
// takes exclusive use of its tour and RNG.
type Searcher[T metric.Metric[T]] struct {
	tour   *tour.Tour[T]
	rng    *rand.Rand
	logger logrus.FieldLogger
	limit  int

	arity      int
	stagnation int
	stats      Stats
}

// NewSearcher prepares a search over t starting at arity 2.
//
// Complexity: O(n) (initial length).
func NewSearcher[T metric.Metric[T]](t *tour.Tour[T], opts ...Option) *Searcher[T] {
	o := gatherOptions(opts)

	limit := o.stagnationLimit
	if limit == 0 {
		limit = t.Len()
	}

	return &Searcher[T]{
		tour:   t,
		rng:    o.rng,
		logger: o.logger,
		limit:  limit,
		arity:  2,
		stats:  Stats{InitialLength: t.Length()},
	}
}

// Arity returns the arity the next Step will try.
func (s *Searcher[T]) Arity() int { return s.arity }

// Stagnation returns the number of consecutive failures at the current arity.
func (s *Searcher[T]) Stagnation() int { return s.stagnation }

// Stats returns the counters accumulated so far. FinalLength and Elapsed are
// filled in by Run.
func (s *Searcher[T]) Stats() Stats { return s.stats }

// Step performs one dispatcher call and updates the state machine.
// It returns the dispatcher's result unchanged.
func (s *Searcher[T]) Step() (float64, bool) {
	s.stats.Iterations++

	delta, ok := Move(s.arity, s.tour, s.rng)
	if ok {
		if s.arity == 2 {
			s.stats.Improvements2++
		} else {
			s.stats.Improvements3++
		}
		s.stagnation = 0
		s.arity = 2

		return delta, true
	}

	s.stagnation++
	if s.stagnation > s.limit {
		if s.arity == 2 {
			s.stats.Escalations++
			if s.logger != nil {
				s.logger.WithFields(logrus.Fields{
					"iteration": s.stats.Iterations,
					"length":    s.tour.Length(),
				}).Debug("kopt: escalating to 3-opt")
			}
		}
		s.arity = 3
		s.stagnation = 0
	}

	return 0, false
}

// Run improves t in place until timeout has elapsed and returns the run's
// statistics. Tours with fewer than four nodes are returned immediately.
func Run[T metric.Metric[T]](t *tour.Tour[T], timeout time.Duration, opts ...Option) Stats {
	s := NewSearcher(t, opts...)
	start := time.Now()

	if t.Len() >= minSearchSize {
		for {
			s.Step()
			if time.Since(start) > timeout {
				break
			}
		}
	}

	s.stats.Elapsed = time.Since(start)
	s.stats.FinalLength = t.Length()
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{
			"nodes":        t.Len(),
			"iterations":   s.stats.Iterations,
			"improvements": s.stats.Improvements(),
			"escalations":  s.stats.Escalations,
			"initial":      s.stats.InitialLength,
			"final":        s.stats.FinalLength,
			"elapsed":      s.stats.Elapsed,
		}).Info("kopt: run finished")
	}

	return s.stats
}

// Optimize improves t in place until timeout has elapsed. The caller inspects
// t afterwards; there is no separate result.
//
// Tours with fewer than four nodes have a single cyclic length, so Optimize
// returns them untouched without waiting for the timeout.
func Optimize[T metric.Metric[T]](t *tour.Tour[T], timeout time.Duration, opts ...Option) {
	Run(t, timeout, opts...)
}
