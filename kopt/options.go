// Package kopt - functional configuration of a search run.
//
// Design:
//   - Option / options with unexported state; public entry points take ...Option.
//   - WithX constructors panic on nonsensical values (programmer error).
//   - Zero configuration is valid: DefaultSeed, no logging, node-count limit.
package kopt

import (
	"math/rand"

	"github.com/sirupsen/logrus"
)

// DefaultStagnationLimit selects the node-count escalation threshold.
const DefaultStagnationLimit = 0

const (
	panicNilRand         = "kopt: WithRand: rng must be non-nil"
	panicNilLogger       = "kopt: WithLogger: logger must be non-nil"
	panicNegativeLimit   = "kopt: WithStagnationLimit: limit must be >= 0"
	panicEmptyRange      = "kopt: sampler: empty index range"
	panicTwoOptIndices   = "kopt: TwoOpt: indices must satisfy 0 <= i < j <= n"
	panicThreeOptIndices = "kopt: ThreeOpt: indices must satisfy 0 <= i < j < k < n"
)

// Option mutates run options.
type Option func(*options)

type options struct {
	rng             *rand.Rand
	logger          logrus.FieldLogger
	stagnationLimit int
}

// WithSeed makes the run draw from NewRand(seed).
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = NewRand(seed) }
}

// WithRand makes the run draw from rng. The run takes exclusive use of rng
// for its duration.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic(panicNilRand)
	}

	return func(o *options) { o.rng = rng }
}

// WithLogger attaches a logger. Escalations are logged at Debug, the
// end-of-run summary at Info. Without it the engine is silent.
func WithLogger(logger logrus.FieldLogger) Option {
	if logger == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.logger = logger }
}

// WithStagnationLimit escalates after more than limit consecutive failures
// instead of more than Len() failures. limit==0 keeps the node-count default.
func WithStagnationLimit(limit int) Option {
	if limit < 0 {
		panic(panicNegativeLimit)
	}

	return func(o *options) { o.stagnationLimit = limit }
}

func gatherOptions(opts []Option) options {
	o := options{stagnationLimit: DefaultStagnationLimit}

	var opt Option
	for _, opt = range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = NewRand(DefaultSeed)
	}

	return o
}
