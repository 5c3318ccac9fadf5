package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/tablr/internal/model"
	"github.com/inovacc/tablr/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func testModel(t *testing.T) TableModel {
	t.Helper()

	m := NewTableModel(state.Seeded(), nil, model.DefaultConfig())
	m.width = 120
	m.height = 40

	return m
}

func press(t *testing.T, m TableModel, keys ...string) TableModel {
	t.Helper()

	for _, k := range keys {
		next, _ := m.Update(key(k))

		var ok bool

		m, ok = next.(TableModel)
		require.True(t, ok)
	}

	return m
}

func TestSortToggleCycle(t *testing.T) {
	m := testModel(t)

	// cursor starts on the name column, already sorted ascending by seed
	m = press(t, m, "s")
	require.NotNil(t, m.st.Sort())
	assert.Equal(t, model.KeyName, m.st.Sort().Key)
	assert.Equal(t, model.Descending, m.st.Sort().Direction, "same column flips direction")

	// a different column resets to ascending
	m = press(t, m, "l", "l", "s")
	assert.Equal(t, model.KeyAge, m.st.Sort().Key)
	assert.Equal(t, model.Ascending, m.st.Sort().Direction)

	m = press(t, m, "s")
	assert.Equal(t, model.Descending, m.st.Sort().Direction)
}

func TestPagingClampsAtLastPage(t *testing.T) {
	m := testModel(t)

	m = press(t, m, "]")
	assert.Equal(t, 2, m.st.UI().Page)

	// 12 records, page size 10: page 3 does not exist
	m = press(t, m, "]")
	assert.Equal(t, 2, m.st.UI().Page)

	m = press(t, m, "[", "[")
	assert.Equal(t, 1, m.st.UI().Page)
}

func TestDeleteFlowClampsPage(t *testing.T) {
	m := testModel(t)

	// go to page 2 (rows 11-12), delete both; page must fall back to 1
	m = press(t, m, "]")
	m = press(t, m, "d", "y")
	assert.Equal(t, 2, m.st.UI().Page)
	assert.Len(t, m.st.Records(), 11)

	m = press(t, m, "d", "y")
	assert.Equal(t, 1, m.st.UI().Page)
	assert.Len(t, m.st.Records(), 10)
}

func TestInlineEditCommitAndSaveAll(t *testing.T) {
	m := testModel(t)

	m = press(t, m, "enter") // start editing first cell
	require.Equal(t, modeEdit, m.mode)
	require.True(t, m.st.Dirty())

	m.edit.SetValue("Changed Name")
	m = press(t, m, "enter")
	assert.Equal(t, modeBrowse, m.mode)

	// committed store untouched until save all
	rec, _ := m.st.RecordByID(m.editID)
	assert.NotEqual(t, "Changed Name", rec.Get(model.KeyName).Render())
	assert.Equal(t, "Changed Name", m.st.EffectiveValue(rec, model.KeyName).Render())

	m = press(t, m, "ctrl+s")
	assert.False(t, m.st.Dirty())

	rec, _ = m.st.RecordByID(m.editID)
	assert.Equal(t, "Changed Name", rec.Get(model.KeyName).Render())
}

func TestInlineEditRejectsBadAge(t *testing.T) {
	m := testModel(t)

	// move to the age column and open the editor
	m = press(t, m, "l", "l", "enter")
	require.Equal(t, modeEdit, m.mode)
	require.Equal(t, model.KeyAge, m.editKey)

	m.edit.SetValue("999")
	m = press(t, m, "enter")

	// not accepted: still editing, buffer keeps the snapshot value
	assert.Equal(t, modeEdit, m.mode)

	rec, _ := m.st.RecordByID(m.editID)
	assert.NotEqual(t, "999", m.st.EffectiveValue(rec, model.KeyAge).Render())
}

func TestCancelAllReverts(t *testing.T) {
	m := testModel(t)

	m = press(t, m, "enter")
	m.edit.SetValue("Nope")
	m = press(t, m, "enter")
	require.True(t, m.st.Dirty())

	m = press(t, m, "ctrl+r")
	assert.False(t, m.st.Dirty())
}

func TestAddColumnValidation(t *testing.T) {
	m := testModel(t)

	m = press(t, m, "c", "a")
	require.Equal(t, modeAddColumn, m.mode)

	// duplicate label
	m.addInput.SetValue("Age")
	m = press(t, m, "enter")
	assert.Len(t, m.st.Columns(), 6, "duplicate key aborts with no state change")

	m = press(t, m, "a")
	m.addInput.SetValue("Salary")
	m = press(t, m, "enter")
	require.Len(t, m.st.Columns(), 7)

	// every record gained an explicit empty value
	for _, r := range m.st.Records() {
		v, ok := r.Fields["salary"]
		require.True(t, ok)
		assert.Equal(t, model.Text(""), v)
	}
}
