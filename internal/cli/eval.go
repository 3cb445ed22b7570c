package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haskel/flowcal/internal/bench"
	"github.com/haskel/flowcal/internal/report"
	"github.com/haskel/flowcal/internal/sampler"
	"github.com/haskel/flowcal/internal/sensor"
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate the calibration once",
	Long: `Run a single sampling and evaluation pass: draw one sample per input
from its uniform distribution, apply the calibration formula, and report
the selected output(s) directly.

Examples:
  flowcal eval                       # Both outputs, text report
  flowcal eval -o massflow --json    # Mass flow only, JSON
  flowcal eval --seed 7 --csv out.csv`,
	RunE: runEval,
}

var (
	evalCSV    string
	evalTiming bool
)

func init() {
	evalCmd.Flags().StringVar(&evalCSV, "csv", "", "also write results to a CSV file")
	evalCmd.Flags().BoolVar(&evalTiming, "timing", false, "report CPU time used")
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg, sel, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	sw, err := bench.Start()
	if err != nil {
		return fmt.Errorf("failed to start CPU clock: %w", err)
	}

	s := sampler.New(cfg.Inputs, cfg.MonteCarlo.Seed)
	in := s.Draw()
	out, value := sensor.Evaluate(cfg.Calibration, in, sel)

	log.Debug("evaluated calibration",
		"heat_transfer", in.HeatTransfer,
		"selector", sel.String(),
		"value", value,
	)

	r := &report.Report{Select: sel, Outputs: out, Value: value}
	if err := emit(cmd, r, evalCSV); err != nil {
		return err
	}

	if evalTiming {
		elapsed, err := sw.Elapsed()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nCPU time used: %f seconds\n", elapsed.Seconds())
	}
	return nil
}
