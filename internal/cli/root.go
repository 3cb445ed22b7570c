package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/haskel/flowcal/internal/config"
	"github.com/haskel/flowcal/internal/logger"
	"github.com/haskel/flowcal/internal/sensor"
)

var (
	// Global flags
	cfgFile   string
	jsonOut   bool
	verbose   bool
	seed      uint64
	outputSel string

	// Version info (set from main)
	Version = "0.1.0"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "flowcal",
	Short: "FLS110 flow-sensor calibration calculator",
	Long: `Flowcal computes calibrated flow-sensor outputs (mass flow in sccm,
differential pressure in Pa) from raw physical inputs using the FLS110
cubic calibration polynomial, either as a single evaluation or as a
Monte Carlo uncertainty estimate over uniform input distributions.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "sampler seed (0 = time-derived)")
	rootCmd.PersistentFlags().StringVarP(&outputSel, "output", "o", "", "output selector: massflow, diffpressure, all")
}

// SetVersion sets the version for the CLI
func SetVersion(v string) {
	Version = v
	rootCmd.Version = v
}

// loadConfig builds the effective configuration from file (or
// defaults) with flag overrides applied, and parses the output
// selector.
func loadConfig() (*config.Config, sensor.Output, error) {
	var cfg *config.Config
	if cfgFile != "" {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return nil, 0, err
		}
	} else {
		cfg = config.Default()
	}

	if seed != 0 {
		cfg.MonteCarlo.Seed = seed
	}
	if outputSel != "" {
		cfg.Output.Select = outputSel
	}

	sel, err := cfg.OutputSelect()
	if err != nil {
		return nil, 0, err
	}
	return cfg, sel, nil
}

// newLogger builds the process logger; --verbose forces debug level.
func newLogger(cfg *config.Config) *slog.Logger {
	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	return logger.New(level, cfg.Logging.Format)
}
