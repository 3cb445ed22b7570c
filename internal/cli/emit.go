package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/haskel/flowcal/internal/report"
)

// emit renders a report to stdout (text or JSON per the --json flag)
// and optionally to a CSV file.
func emit(cmd *cobra.Command, r *report.Report, csvPath string) error {
	w := cmd.OutOrStdout()

	var err error
	if jsonOut {
		err = report.WriteJSON(w, r)
	} else {
		err = report.WriteText(w, r)
	}
	if err != nil {
		return err
	}

	if csvPath == "" {
		return nil
	}

	f, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	if err := report.WriteCSV(f, r); err != nil {
		f.Close()
		return fmt.Errorf("failed to write CSV file: %w", err)
	}
	return f.Close()
}
