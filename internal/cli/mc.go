package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haskel/flowcal/internal/bench"
	"github.com/haskel/flowcal/internal/montecarlo"
	"github.com/haskel/flowcal/internal/report"
	"github.com/haskel/flowcal/internal/sampler"
)

var mcCmd = &cobra.Command{
	Use:   "mc",
	Short: "Run a Monte Carlo uncertainty estimate",
	Long: `Run N independent sampling and evaluation passes, collect the tracked
output per iteration, and report its mean and variance. The reported
value of the tracked output is the mean over all iterations.

Raw per-iteration samples are dumped to the samples file (data.out by
default) together with the loop's CPU time in microseconds.

Examples:
  flowcal mc                          # Config defaults
  flowcal mc -n 100000 -o massflow    # 100k iterations, mass flow
  flowcal mc --seed 42 --json         # Reproducible run, JSON report`,
	RunE: runMC,
}

var (
	mcIterations  int
	mcCSV         string
	mcSamplesFile string
	mcTiming      bool
	mcNoSamples   bool
)

func init() {
	mcCmd.Flags().IntVarP(&mcIterations, "iterations", "n", 0, "Monte Carlo iterations (default from config)")
	mcCmd.Flags().StringVar(&mcCSV, "csv", "", "also write results to a CSV file")
	mcCmd.Flags().StringVar(&mcSamplesFile, "samples-file", "", "samples dump path (default from config)")
	mcCmd.Flags().BoolVar(&mcTiming, "timing", false, "report CPU time used")
	mcCmd.Flags().BoolVar(&mcNoSamples, "no-samples", false, "skip the samples dump")
	rootCmd.AddCommand(mcCmd)
}

func runMC(cmd *cobra.Command, args []string) error {
	cfg, sel, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	n := cfg.MonteCarlo.Iterations
	if mcIterations > 0 {
		n = mcIterations
	}
	samplesFile := cfg.MonteCarlo.SamplesFile
	if mcSamplesFile != "" {
		samplesFile = mcSamplesFile
	}

	s := sampler.New(cfg.Inputs, cfg.MonteCarlo.Seed)

	// Timing wraps the full iteration loop, not individual passes.
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

	log.Debug("monte carlo run complete",
		"iterations", n,
		"mean", res.Stats.Mean,
		"variance", res.Stats.Variance,
		"cpu_micros", micros,
	)

	r := &report.Report{
		Select:  sel,
		Outputs: res.LastOutputs,
		Value:   res.Stats.Mean,
		Stats:   &res.Stats,
	}
	if err := emit(cmd, r, mcCSV); err != nil {
		return err
	}

	if !mcNoSamples {
		if err := report.SaveSamples(samplesFile, res.Samples, micros); err != nil {
			return err
		}
		log.Debug("wrote samples dump", "path", samplesFile, "samples", len(res.Samples))
	}

	if mcTiming {
		fmt.Fprintf(cmd.OutOrStdout(), "\nCPU time used: %f seconds\n", float64(micros)/1e6)
	}
	return nil
}
