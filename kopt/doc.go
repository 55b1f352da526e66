// Package kopt improves travelling-salesperson tours by randomized k-opt
// local search with escalating arity.
//
// The engine never constructs a tour; it takes one built elsewhere
// (construction heuristic, prior run, arbitrary order) and repeatedly applies
// small edge exchanges that strictly shorten it until a wall-clock budget
// expires:
//
//   - TwoOpt    : reverse one segment; accepted iff the full recomputed length drops.
//   - ThreeOpt  : remove three edges and try four reconnections in a fixed
//     priority order; the decision costs O(1) distance calls.
//   - Move      : draw random indices for arity 2 or 3 and delegate.
//   - Optimize / Run / Searcher : the driver: start at arity 2, escalate to 3
//     after more than n consecutive failures, drop back to 2 on any improvement.
//
// Determinism:
//   - Every run owns its *rand.Rand (WithSeed / WithRand). No global generator
//     is ever consulted; the same seed and tour replay the same move sequence
//     (the number of iterations still depends on wall-clock time).
//
// Errors:
//   - Calling Move with an arity other than 2 or 3 is a programmer error and
//     panics with *ArityError (errors.Is(err, ErrUnsupportedArity)). Hosts that
//     must not crash can wrap the call in Recover.
//   - "No improving move" is never an error; it is the (0, false) result.
//
// Concurrency:
//   - A run is single-threaded and synchronous. Concurrent runs need their own
//     tours and their own RNG streams (see DeriveRand).
package kopt
