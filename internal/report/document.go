package report

import (
	"encoding/json"
	"io"

	"baccarat_sim/internal/model"
)

// Document is the JSON summary of a run, optionally carrying analytics.
type Document struct {
	model.RunSummary
	Analytics *model.Analytics `json:"analytics,omitempty"`
}

// WriteSummary writes an indented JSON document.
func WriteSummary(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
