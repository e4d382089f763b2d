package differ

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ralt/bundlediff/internal/models"
)

func names(records []models.DiffRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Name)
	}
	return out
}

func sortFixture() []models.DiffRecord {
	return []models.DiffRecord{
		{Name: "n1", Version1: "2.0"},
		{Name: "n2", Version1: ""},
		{Name: "n3", Version1: "1.0"},
		{Name: "n4", Version1: "3.0"},
		{Name: "n5", Version1: "1.0"},
	}
}

func TestSortAscendingEmptyLast(t *testing.T) {
	got := Sort(sortFixture(), models.KeyVersion1, Ascending)
	assert.Equal(t, []string{"n3", "n5", "n1", "n4", "n2"}, names(got))
}

func TestSortDescendingEmptyLast(t *testing.T) {
	got := Sort(sortFixture(), models.KeyVersion1, Descending)
	assert.Equal(t, []string{"n4", "n1", "n3", "n5", "n2"}, names(got))
}

func TestSortIsStable(t *testing.T) {
	records := []models.DiffRecord{
		{Name: "first", Status: models.StatusOnlyInFirst},
		{Name: "second", Status: models.StatusDifferent},
		{Name: "third", Status: models.StatusOnlyInFirst},
		{Name: "fourth", Status: models.StatusDifferent},
	}

	asc := Sort(records, models.KeyStatus, Ascending)
	assert.Equal(t, []string{"second", "fourth", "first", "third"}, names(asc))

	desc := Sort(records, models.KeyStatus, Descending)
	assert.Equal(t, []string{"first", "third", "second", "fourth"}, names(desc))
}

func TestSortIdempotent(t *testing.T) {
	once := Sort(sortFixture(), models.KeyVersion1, Ascending)
	twice := Sort(once, models.KeyVersion1, Ascending)
	assert.Equal(t, once, twice)
}

func TestSortReverseKeepsEmptyLast(t *testing.T) {
	asc := Sort(sortFixture(), models.KeyVersion1, Ascending)
	desc := Sort(asc, models.KeyVersion1, Descending)

	assert.Equal(t, "n2", asc[len(asc)-1].Name)
	assert.Equal(t, "n2", desc[len(desc)-1].Name)
	// Non-empty values come back in reverse value order.
	assert.Equal(t, []string{"3.0", "2.0", "1.0", "1.0"}, []string{
		desc[0].Version1, desc[1].Version1, desc[2].Version1, desc[3].Version1,
	})
}

func TestSortDoesNotMutateInput(t *testing.T) {
	input := sortFixture()
	before := append([]models.DiffRecord(nil), input...)

	got := Sort(input, models.KeyVersion1, Descending)

	assert.Equal(t, before, input)
	got[0].Name = "changed"
	assert.Equal(t, before, input)
}

func TestSortUnknownKeyKeepsOrder(t *testing.T) {
	got := Sort(sortFixture(), "nope", Ascending)
	assert.Equal(t, names(sortFixture()), names(got))
}

func TestSortEmptyInput(t *testing.T) {
	got := Sort(nil, models.KeyName, Ascending)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSortStateToggle(t *testing.T) {
	var s SortState
	assert.Equal(t, "", s.Field)

	s = s.Toggle(models.KeyName)
	assert.Equal(t, SortState{Field: models.KeyName, Direction: Ascending}, s)

	s = s.Toggle(models.KeyName)
	assert.Equal(t, SortState{Field: models.KeyName, Direction: Descending}, s)

	s = s.Toggle(models.KeyName)
	assert.Equal(t, Ascending, s.Direction)

	s = s.Toggle(models.KeyName).Toggle(models.KeyStatus)
	assert.Equal(t, SortState{Field: models.KeyStatus, Direction: Ascending}, s)
}

func TestSortStateApply(t *testing.T) {
	records := sortFixture()

	unsorted := SortState{}.Apply(records)
	assert.Equal(t, names(records), names(unsorted))

	sorted := SortState{Field: models.KeyVersion1, Direction: Descending}.Apply(records)
	assert.Equal(t, "n4", sorted[0].Name)
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("DESC")
	assert.NoError(t, err)
	assert.Equal(t, Descending, d)

	d, err = ParseDirection("")
	assert.NoError(t, err)
	assert.Equal(t, Ascending, d)

	_, err = ParseDirection("sideways")
	assert.Error(t, err)
}
