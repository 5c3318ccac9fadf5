package state

import (
	"testing"

	"github.com/inovacc/tablr/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func columnKeys(s *AppState) []model.ColumnKey {
	keys := make([]model.ColumnKey, 0, len(s.Columns()))
	for _, c := range s.Columns() {
		keys = append(keys, c.Key)
	}

	return keys
}

func TestToggleVisibility(t *testing.T) {
	s := testState(t)

	s.ToggleVisibility(model.KeyDepartment, true)

	for _, c := range s.Columns() {
		if c.Key == model.KeyDepartment {
			assert.True(t, c.Visible)
		}
	}

	// unknown key is a no-op
	before := columnKeys(s)
	s.ToggleVisibility("nope", true)
	assert.Equal(t, before, columnKeys(s))
}

func TestAppendColumn(t *testing.T) {
	s := testState(t)

	s.AppendColumn(model.Column{Key: "salary", Label: "Salary", Visible: true, Sortable: true})

	require.Len(t, s.Columns(), 7)
	assert.Equal(t, model.ColumnKey("salary"), s.Columns()[6].Key)
	assert.True(t, s.HasColumn("salary"))
}

func TestReorderColumns(t *testing.T) {
	tests := []struct {
		name     string
		dragged  model.ColumnKey
		target   model.ColumnKey
		expected []model.ColumnKey
	}{
		{
			name:     "drag backward lands before target",
			dragged:  model.KeyAge,
			target:   model.KeyName,
			expected: []model.ColumnKey{"age", "name", "email", "role", "department", "location"},
		},
		{
			name:     "drag forward lands after target",
			dragged:  model.KeyName,
			target:   model.KeyAge,
			expected: []model.ColumnKey{"email", "age", "name", "role", "department", "location"},
		},
		{
			name:     "adjacent swap",
			dragged:  model.KeyName,
			target:   model.KeyEmail,
			expected: []model.ColumnKey{"email", "name", "age", "role", "department", "location"},
		},
		{
			name:     "same key is a no-op",
			dragged:  model.KeyName,
			target:   model.KeyName,
			expected: []model.ColumnKey{"name", "email", "age", "role", "department", "location"},
		},
		{
			name:     "unknown key is a no-op",
			dragged:  "nope",
			target:   model.KeyName,
			expected: []model.ColumnKey{"name", "email", "age", "role", "department", "location"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testState(t)

			s.ReorderColumns(tt.dragged, tt.target)

			assert.Equal(t, tt.expected, columnKeys(s))
		})
	}
}

func TestReorderIsPurePermutation(t *testing.T) {
	s := testState(t)

	before := columnKeys(s)

	pairs := [][2]model.ColumnKey{
		{"name", "location"},
		{"location", "email"},
		{"age", "age"},
		{"role", "name"},
	}

	for _, p := range pairs {
		s.ReorderColumns(p[0], p[1])
	}

	after := columnKeys(s)
	require.Len(t, after, len(before))

	seen := make(map[model.ColumnKey]int)
	for _, k := range after {
		seen[k]++
	}

	for _, k := range before {
		assert.Equal(t, 1, seen[k], "key %s must appear exactly once", k)
	}
}
