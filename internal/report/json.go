package report

import (
	"encoding/json"
	"io"

	"github.com/haskel/flowcal/internal/montecarlo"
)

type jsonOutput struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

type jsonDocument struct {
	Outputs    []jsonOutput      `json:"outputs"`
	MonteCarlo *montecarlo.Stats `json:"monte_carlo,omitempty"`
}

// WriteJSON writes the report as an indented JSON document.
func WriteJSON(w io.Writer, r *Report) error {
	doc := jsonDocument{MonteCarlo: r.Stats}
	for _, e := range r.entries() {
		doc.Outputs = append(doc.Outputs, jsonOutput{
			Name:  e.output.String(),
			Value: e.value,
			Unit:  e.output.Unit(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
