// Package cli wires the kopt engine into a cobra command tree.
package cli

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the kopt command tree. Every call returns fresh
// commands with their own flag state.
func NewRootCommand() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "kopt",
		Short:         "Improve travelling-salesperson tours by randomized k-opt local search",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logrus.SetLevel(level)
			logrus.SetOutput(cmd.ErrOrStderr())

			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")

	root.AddCommand(newOptimizeCommand(), newBenchCommand())

	return root
}

// Execute runs the CLI against os.Args and exits non-zero on failure.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	logrus.SetOutput(stderr)

	if err := root.Execute(); err != nil {
		logrus.Errorf("kopt: %v", err)
		return 1
	}

	return 0
}
