package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haskel/flowcal/internal/bench"
	"github.com/haskel/flowcal/internal/montecarlo"
	"github.com/haskel/flowcal/internal/report"
	"github.com/haskel/flowcal/internal/sampler"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark the Monte Carlo loop",
	Long: `Run the Monte Carlo loop and print only the tracked value and the
loop's CPU time in microseconds, space-separated on a single line. With
-n 1 this benchmarks a single evaluation.

Example output:
  2657.097316 8423`,
	RunE: runBench,
}

var benchIterations int

func init() {
	benchCmd.Flags().IntVarP(&benchIterations, "iterations", "n", 0, "Monte Carlo iterations (default from config)")
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, sel, err := loadConfig()
	if err != nil {
		return err
	}

	n := cfg.MonteCarlo.Iterations
	if benchIterations > 0 {
		n = benchIterations
	}

	s := sampler.New(cfg.Inputs, cfg.MonteCarlo.Seed)

	sw, err := bench.Start()
	if err != nil {
		return fmt.Errorf("failed to start CPU clock: %w", err)
	}

	res, err := montecarlo.Run(cfg.Calibration, s, sel, n, nil)
	if err != nil {
		return err
	}

	micros, err := sw.Microseconds()
	if err != nil {
		return err
	}

	return report.WriteBenchLine(cmd.OutOrStdout(), res.Stats.Mean, micros)
}
