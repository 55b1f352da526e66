package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/kopt/internal/tourfile"
	"github.com/katalvlaran/kopt/kopt"
)

var errNegativeTimeout = errors.New("timeout must be >= 0")

type optimizeFlags struct {
	input   string
	output  string
	config  string
	timeout time.Duration
	seed    int64
}

func newOptimizeCommand() *cobra.Command {
	var f optimizeFlags

	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Improve the tour in a YAML document until the time budget expires",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOptimize(cmd, &f)
		},
	}
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "Input tour document (YAML)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output tour document; stdout when empty")
	cmd.Flags().StringVar(&f.config, "config", "", "Optional YAML run configuration (timeout, seed, log)")
	cmd.Flags().DurationVar(&f.timeout, "timeout", time.Second, "Wall-clock optimization budget")
	cmd.Flags().Int64Var(&f.seed, "seed", kopt.DefaultSeed, "Seed for move sampling (0 selects the default seed)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runOptimize(cmd *cobra.Command, f *optimizeFlags) error {
	if f.config != "" {
		cfg, err := LoadRunConfig(f.config)
		if err != nil {
			return err
		}
		if err = applyRunConfig(cmd, cfg, &f.timeout, &f.seed); err != nil {
			return err
		}
	}
	if f.timeout < 0 {
		return errNegativeTimeout
	}

	doc, err := tourfile.Load(f.input)
	if err != nil {
		return err
	}
	tb, err := doc.Table()
	if err != nil {
		return fmt.Errorf("%s: %w", f.input, err)
	}
	tr := doc.Tour(tb)

	logrus.WithFields(logrus.Fields{
		"input":   f.input,
		"nodes":   tr.Len(),
		"timeout": f.timeout,
		"seed":    f.seed,
	}).Info("starting optimization")

	st := kopt.Run(tr, f.timeout, kopt.WithSeed(f.seed), kopt.WithLogger(logrus.StandardLogger()))
	out := doc.WithTour(tr)

	if f.output == "" {
		return out.Encode(cmd.OutOrStdout())
	}
	if err = out.Save(f.output); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d nodes, length %.6f -> %.6f (%d improvements, %d iterations)\n",
		f.output, tr.Len(), st.InitialLength, st.FinalLength, st.Improvements(), st.Iterations)

	return nil
}
