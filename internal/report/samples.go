package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WriteSamples dumps raw Monte Carlo samples, one per line, followed by
// a trailing line with the loop's CPU time in microseconds.
func WriteSamples(w io.Writer, samples []float64, micros uint64) error {
	bw := bufio.NewWriter(w)
	for _, s := range samples {
		if _, err := fmt.Fprintf(bw, "%f\n", s); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(bw, "%d\n", micros); err != nil {
		return err
	}
	return bw.Flush()
}

// SaveSamples writes the samples dump to a file, creating or truncating
// it.
func SaveSamples(path string, samples []float64, micros uint64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create samples file: %w", err)
	}
	if err := WriteSamples(f, samples, micros); err != nil {
		f.Close()
		return fmt.Errorf("failed to write samples file: %w", err)
	}
	return f.Close()
}
