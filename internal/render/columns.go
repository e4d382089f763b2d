package render

import "github.com/ralt/bundlediff/internal/models"

// Column groups
const (
	GroupFirst  = "First JSON"
	GroupSecond = "Second JSON"
)

// Column describes one table column
type Column struct {
	Key   string
	Label string
	Group string
	// Tracked is the tracked field whose change highlights this column
	Tracked string
}

// Header returns the column heading, qualified by its group
func (c Column) Header() string {
	switch c.Group {
	case GroupFirst:
		return c.Label + " (1)"
	case GroupSecond:
		return c.Label + " (2)"
	default:
		return c.Label
	}
}

// Highlighted reports whether the cell shows a changed value
func (c Column) Highlighted(d *models.DiffRecord) bool {
	return c.Tracked != "" && d.Status == models.StatusDifferent && d.HasChanged(c.Tracked)
}

// Cell returns the cell text for a diff record
func (c Column) Cell(d *models.DiffRecord) string {
	if c.Key == models.KeyStatus {
		return StatusIcon(d.Status) + " " + string(d.Status)
	}
	return d.Value(c.Key)
}

// Columns returns the ordered columns for a variant
func Columns(v models.Variant) []Column {
	cols := []Column{
		{Key: models.KeyName, Label: "Name"},
		{Key: models.KeySymbolicName, Label: "Symbolic Name"},
		{Key: models.KeyStatus, Label: "Status"},
	}

	if v == models.VariantPackage {
		cols[1].Label = "Group"
		return append(cols,
			Column{Key: models.KeyVersion1, Label: "Version", Group: GroupFirst, Tracked: models.FieldVersion},
			Column{Key: models.KeyCreated1, Label: "Created", Group: GroupFirst, Tracked: models.FieldCreated},
			Column{Key: models.KeySize1, Label: "Size", Group: GroupFirst, Tracked: models.FieldSize},
			Column{Key: models.KeyState1, Label: "State", Group: GroupFirst, Tracked: models.FieldInstalled},
			Column{Key: models.KeyVersion2, Label: "Version", Group: GroupSecond, Tracked: models.FieldVersion},
			Column{Key: models.KeyCreated2, Label: "Created", Group: GroupSecond, Tracked: models.FieldCreated},
			Column{Key: models.KeySize2, Label: "Size", Group: GroupSecond, Tracked: models.FieldSize},
			Column{Key: models.KeyState2, Label: "State", Group: GroupSecond, Tracked: models.FieldInstalled},
		)
	}

	return append(cols,
		Column{Key: models.KeyVersion1, Label: "Version", Group: GroupFirst, Tracked: models.FieldVersion},
		Column{Key: models.KeyState1, Label: "State", Group: GroupFirst, Tracked: models.FieldState},
		Column{Key: models.KeyVersion2, Label: "Version", Group: GroupSecond, Tracked: models.FieldVersion},
		Column{Key: models.KeyState2, Label: "State", Group: GroupSecond, Tracked: models.FieldState},
	)
}

// StatusIcon returns the marker shown for a status
func StatusIcon(s models.Status) string {
	switch s {
	case models.StatusDifferent:
		return "~"
	case models.StatusOnlyInFirst:
		return "-"
	case models.StatusOnlyInSecond:
		return "+"
	default:
		return "?"
	}
}
