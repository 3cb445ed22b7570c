package cli

import (
	"github.com/spf13/cobra"

	"github.com/haskel/flowcal/internal/cli/tui"
	"github.com/haskel/flowcal/internal/montecarlo"
	"github.com/haskel/flowcal/internal/sampler"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run Monte Carlo with a live convergence view",
	Long: `Run a Monte Carlo estimate while showing progress and the running mean
in an interactive terminal view. The final statistics stay on screen
until dismissed.

Examples:
  flowcal watch                      # Config defaults
  flowcal watch -n 1000000 -o massflow`,
	RunE: runWatch,
}

var watchIterations int

func init() {
	watchCmd.Flags().IntVarP(&watchIterations, "iterations", "n", 0, "Monte Carlo iterations (default from config)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, sel, err := loadConfig()
	if err != nil {
		return err
	}

	n := cfg.MonteCarlo.Iterations
	if watchIterations > 0 {
		n = watchIterations
	}

	s := sampler.New(cfg.Inputs, cfg.MonteCarlo.Seed)

	return tui.Run(tui.Config{
		Iterations: n,
		Output:     sel,
		Run: func(observer func(montecarlo.Progress)) (*montecarlo.Result, error) {
			return montecarlo.Run(cfg.Calibration, s, sel, n, observer)
		},
	})
}
