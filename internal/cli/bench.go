package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/kopt/kopt"
	"github.com/katalvlaran/kopt/metric"
	"github.com/katalvlaran/kopt/tour"
)

var errBenchShape = errors.New("bench needs --points >= 4 and --runs >= 1")

type benchFlags struct {
	points  int
	runs    int
	timeout time.Duration
	seed    int64
}

func newBenchCommand() *cobra.Command {
	var f benchFlags

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run repeated seeded searches on a random Euclidean instance and summarize final lengths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd.OutOrStdout(), f)
		},
	}
	cmd.Flags().IntVar(&f.points, "points", 100, "Number of uniform random points in the unit square")
	cmd.Flags().IntVar(&f.runs, "runs", 5, "Number of independent runs from the same initial tour")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 200*time.Millisecond, "Budget per run")
	cmd.Flags().Int64Var(&f.seed, "seed", kopt.DefaultSeed, "Seed for the instance and the per-run streams")

	return cmd
}

// runBench runs f.runs searches sequentially. Each run gets its own clone of
// the initial tour and its own stream derived from the instance seed.
func runBench(w io.Writer, f benchFlags) error {
	if f.points < 4 || f.runs < 1 {
		return errBenchShape
	}
	if f.timeout < 0 {
		return errNegativeTimeout
	}

	base := kopt.NewRand(f.seed)
	pts := make([]metric.Point, f.points)

	var i int
	for i = range pts {
		pts[i] = metric.NewPoint(base.Float64(), base.Float64())
	}
	initial := tour.New(pts)

	finals := make([]float64, f.runs)
	for i = range finals {
		tr := initial.Clone()
		st := kopt.Run(tr, f.timeout,
			kopt.WithRand(kopt.DeriveRand(base, uint64(i))),
			kopt.WithLogger(logrus.StandardLogger().WithField("run", i)),
		)
		finals[i] = st.FinalLength
		fmt.Fprintf(w, "run %d: length %.6f (%d iterations, %d improvements, %d escalations)\n",
			i, st.FinalLength, st.Iterations, st.Improvements(), st.Escalations)
	}

	mean, std := stat.MeanStdDev(finals, nil)
	if f.runs == 1 {
		std = 0 // sample stddev is undefined for one run
	}
	fmt.Fprintf(w, "initial %.6f  mean %.6f  stddev %.6f  best %.6f\n",
		initial.Length(), mean, std, floats.Min(finals))

	return nil
}
