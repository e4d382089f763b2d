package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/ralt/bundlediff/internal/models"
)

// NoDifferencesMessage is shown instead of an empty table
const NoDifferencesMessage = "No differences found in the data arrays!"

// Format names an output format
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat converts a flag value into a Format
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", FormatTable:
		return FormatTable, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q (expected table, json or yaml)", s)
	}
}

// Renderer interface for report output
type Renderer interface {
	// Render writes the report to w
	Render(w io.Writer, report *models.Report) error

	// Format returns the format this renderer produces
	Format() Format
}

// Options tune renderer output
type Options struct {
	NoColor bool
}

// New returns the renderer for format
func New(format Format, opts Options) (Renderer, error) {
	switch format {
	case FormatTable:
		return NewTableRenderer(opts.NoColor), nil
	case FormatJSON:
		return &JSONRenderer{}, nil
	case FormatYAML:
		return &YAMLRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
