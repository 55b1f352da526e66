package cli

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// RunConfig is the optional YAML run configuration passed with --config.
// Explicitly set flags take precedence over its values.
type RunConfig struct {
	Timeout time.Duration `yaml:"timeout"`
	Seed    int64         `yaml:"seed"`
	Log     string        `yaml:"log"`
}

// LoadRunConfig decodes path strictly: unknown keys are an error.
func LoadRunConfig(path string) (RunConfig, error) {
	var cfg RunConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Timeout < 0 {
		return cfg, fmt.Errorf("config %s: timeout must be >= 0", path)
	}

	return cfg, nil
}

// applyRunConfig copies config values into the flag targets that the user
// did not set explicitly on the command line. A configured log level replaces
// the one installed by the root command.
func applyRunConfig(cmd *cobra.Command, cfg RunConfig, timeout *time.Duration, seed *int64) error {
	if cfg.Timeout > 0 && !cmd.Flags().Changed("timeout") {
		*timeout = cfg.Timeout
	}
	if cfg.Seed != 0 && !cmd.Flags().Changed("seed") {
		*seed = cfg.Seed
	}
	if cfg.Log != "" && !cmd.Flags().Changed("log") {
		level, err := logrus.ParseLevel(cfg.Log)
		if err != nil {
			return err
		}
		logrus.SetLevel(level)
	}

	return nil
}
