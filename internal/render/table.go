package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ralt/bundlediff/internal/models"
)

// Palette
var (
	iris  = lipgloss.Color("#8B5CF6")
	slate = lipgloss.Color("#667085")
	red   = lipgloss.Color("#D93025")
)

// changedMarker flags changed cells when colors are disabled
const changedMarker = " *"

// TableRenderer draws the diff as a terminal table, highlighting changed cells
type TableRenderer struct {
	noColor bool

	header  lipgloss.Style
	cell    lipgloss.Style
	changed lipgloss.Style
}

// NewTableRenderer creates a table renderer
func NewTableRenderer(noColor bool) *TableRenderer {
	base := lipgloss.NewStyle().Padding(0, 1)

	r := &TableRenderer{
		noColor: noColor,
		header:  base,
		cell:    base,
		changed: base,
	}
	if !noColor {
		r.header = base.Bold(true).Foreground(iris)
		r.changed = base.Bold(true).Foreground(red)
	}
	return r
}

// Format implements Renderer
func (r *TableRenderer) Format() Format {
	return FormatTable
}

// Render implements Renderer
func (r *TableRenderer) Render(w io.Writer, report *models.Report) error {
	if _, err := fmt.Fprintf(w, "Comparing %s (%s) vs %s (%s)\n\n",
		report.Left.Path, report.Left.Fingerprint, report.Right.Path, report.Right.Fingerprint); err != nil {
		return err
	}

	if len(report.Differences) == 0 {
		_, err := fmt.Fprintln(w, NoDifferencesMessage)
		return err
	}

	cols := Columns(report.Variant)
	diffs := report.Differences

	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Header()
	}

	rows := make([][]string, len(diffs))
	for i := range diffs {
		row := make([]string, len(cols))
		for j, c := range cols {
			row[j] = c.Cell(&diffs[i])
			if r.noColor && c.Highlighted(&diffs[i]) {
				row[j] += changedMarker
			}
		}
		rows[i] = row
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(slate)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.header
			}
			// data rows follow the header row
			idx := row - table.HeaderRow - 1
			if idx >= 0 && idx < len(diffs) && col < len(cols) && cols[col].Highlighted(&diffs[idx]) {
				return r.changed
			}
			return r.cell
		})

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}

	s := report.Summary
	_, err := fmt.Fprintf(w, "\n%d difference(s): %d only in first, %d only in second, %d with different values\n",
		len(diffs), s.OnlyInFirst, s.OnlyInSecond, s.Different)
	return err
}
