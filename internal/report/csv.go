package report

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteCSV writes the selected outputs as CSV with a header row.
func WriteCSV(w io.Writer, r *Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"name", "value", "unit"}); err != nil {
		return err
	}
	for _, e := range r.entries() {
		rec := []string{
			e.output.String(),
			strconv.FormatFloat(e.value, 'g', -1, 64),
			e.output.Unit(),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
