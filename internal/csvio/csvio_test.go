package csvio

import (
	"strings"
	"testing"

	"github.com/inovacc/tablr/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNextID() (NextID, *[]model.RecordID) {
	var handed []model.RecordID

	next := model.RecordID(1000)

	return func() model.RecordID {
		next++
		handed = append(handed, next)

		return next
	}, &handed
}

func TestExportProjectsVisibleLabels(t *testing.T) {
	records := []model.Record{
		{ID: 1, Fields: model.Fields{
			"name": model.Text("Alice, Johnson"), // embedded delimiter forces quoting
			"age":  model.Number(28),
			"dept": model.Text("hidden anyway"),
		}},
		{ID: 2, Fields: model.Fields{
			"name": model.Text("Bob"),
		}},
	}
	columns := []model.Column{
		{Key: "name", Label: "Name", Visible: true, Sortable: true},
		{Key: "age", Label: "Age", Visible: true, Sortable: true},
		{Key: "dept", Label: "Department", Visible: false, Sortable: true},
	}

	var buf strings.Builder
	require.NoError(t, Export(&buf, records, columns))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "Name,Age", lines[0], "header is visible labels in display order")
	assert.Equal(t, `"Alice, Johnson",28`, lines[1])
	assert.Equal(t, "Bob,", lines[2], "absent renders empty")
}

func TestImportTwoRowsNameAge(t *testing.T) {
	existing := model.SeedRecords()
	columns := model.SeedColumns()

	nextID, handed := testNextID()

	input := "Name,Age\nNew One,33\nNew Two,44\n"

	records, err := Import(strings.NewReader(input), existing, columns, nextID)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, model.Text("New One"), records[0].Get("name"))
	assert.Equal(t, model.Number(33), records[0].Get("age"), "age column is numeric, parsed as integer")
	assert.Equal(t, model.Number(44), records[1].Get("age"))

	// fresh distinct ids
	require.Len(t, *handed, 2)
	assert.NotEqual(t, records[0].ID, records[1].ID)

	// email has no matching header: absent, not empty
	assert.True(t, records[0].Get("email").IsAbsent())
}

func TestImportHeaderMatchIsCaseInsensitive(t *testing.T) {
	nextID, _ := testNextID()

	input := "NAME,aGe\nCarol,25\n"

	records, err := Import(strings.NewReader(input), model.SeedRecords(), model.SeedColumns(), nextID)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, model.Text("Carol"), records[0].Get("name"))
	assert.Equal(t, model.Number(25), records[0].Get("age"))
}

func TestImportBadNumberDefaultsToZero(t *testing.T) {
	nextID, _ := testNextID()

	input := "Name,Age\nDave,not-a-number\n"

	records, err := Import(strings.NewReader(input), model.SeedRecords(), model.SeedColumns(), nextID)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, model.Number(0), records[0].Get("age"))
}

func TestImportParseErrorAbortsWholesale(t *testing.T) {
	nextID, handed := testNextID()

	// unterminated quote
	input := "Name,Age\n\"broken,33\nfine,44\n"

	records, err := Import(strings.NewReader(input), model.SeedRecords(), model.SeedColumns(), nextID)
	require.Error(t, err)
	assert.Nil(t, records, "no partial application")
	assert.Empty(t, *handed)
}

func TestImportSkipsBlankLines(t *testing.T) {
	nextID, _ := testNextID()

	input := "Name,Age\nEve,31\n,\n\nFrank,29\n"

	records, err := Import(strings.NewReader(input), model.SeedRecords(), model.SeedColumns(), nextID)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestIsNumericColumn(t *testing.T) {
	records := []model.Record{
		{ID: 1, Fields: model.Fields{"age": model.Number(3), "name": model.Text("a")}},
		{ID: 2, Fields: model.Fields{"age": model.Number(4)}},
		{ID: 3, Fields: model.Fields{"name": model.Text("b")}},
	}

	assert.True(t, IsNumericColumn(records, "age"), "numbers and absents only")
	assert.False(t, IsNumericColumn(records, "name"))
	assert.False(t, IsNumericColumn(records, "missing"), "never defined means not numeric")
}
