package differ

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/ralt/bundlediff/internal/models"
)

// Direction is a sort direction
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// String returns the string representation of Direction
func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// ParseDirection converts "asc" or "desc" into a Direction
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return Ascending, fmt.Errorf("unknown sort direction %q", s)
	}
}

// emptySentinel sorts after every valid UTF-8 string
var emptySentinel = string(utf8.MaxRune)

// Sort returns a stably ordered copy of records by the display value of the
// given column key. Empty values go last in both directions.
func Sort(records []models.DiffRecord, key string, dir Direction) []models.DiffRecord {
	sorted := slices.Clone(records)
	if sorted == nil {
		sorted = []models.DiffRecord{}
	}

	value := func(d *models.DiffRecord) string {
		v := d.Value(key)
		if v == "" && dir == Ascending {
			return emptySentinel
		}
		return v
	}

	slices.SortStableFunc(sorted, func(a, b models.DiffRecord) int {
		c := strings.Compare(value(&a), value(&b))
		if dir == Descending {
			return -c
		}
		return c
	})

	return sorted
}

// SortState is the table's sort selection. The zero value means unsorted.
type SortState struct {
	Field     string
	Direction Direction
}

// Toggle returns the state after selecting field: the same field flips the
// direction, a different field starts ascending.
func (s SortState) Toggle(field string) SortState {
	if s.Field == field {
		if s.Direction == Ascending {
			return SortState{Field: field, Direction: Descending}
		}
		return SortState{Field: field, Direction: Ascending}
	}
	return SortState{Field: field, Direction: Ascending}
}

// Apply orders records according to the state, returning a copy
func (s SortState) Apply(records []models.DiffRecord) []models.DiffRecord {
	if s.Field == "" {
		return slices.Clone(records)
	}
	return Sort(records, s.Field, s.Direction)
}
