package render

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ralt/bundlediff/internal/models"
)

// YAMLRenderer writes the report as YAML
type YAMLRenderer struct{}

// Format implements Renderer
func (r *YAMLRenderer) Format() Format {
	return FormatYAML
}

// Render implements Renderer
func (r *YAMLRenderer) Render(w io.Writer, report *models.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(withDifferences(report)); err != nil {
		return err
	}
	return enc.Close()
}
