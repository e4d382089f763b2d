package render

import (
	"encoding/json"
	"io"

	"github.com/ralt/bundlediff/internal/models"
)

// JSONRenderer writes the report as indented JSON
type JSONRenderer struct{}

// Format implements Renderer
func (r *JSONRenderer) Format() Format {
	return FormatJSON
}

// Render implements Renderer
func (r *JSONRenderer) Render(w io.Writer, report *models.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(withDifferences(report))
}

// withDifferences keeps an empty result encoded as [] rather than null
func withDifferences(report *models.Report) *models.Report {
	if report.Differences != nil {
		return report
	}
	cp := *report
	cp.Differences = []models.DiffRecord{}
	return &cp
}
