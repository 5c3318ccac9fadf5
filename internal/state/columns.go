package state

import "github.com/inovacc/tablr/internal/model"

// Columns returns the ordered column registry; the slice order is the
// display order.
func (s *AppState) Columns() []model.Column { return s.columns }

// SetAllColumns replaces the registry wholesale.
func (s *AppState) SetAllColumns(columns []model.Column) {
	s.columns = append([]model.Column(nil), columns...)
}

// ToggleVisibility sets the visible flag of the column with the given
// key. No-op if the key is absent.
func (s *AppState) ToggleVisibility(key model.ColumnKey, visible bool) {
	for i := range s.columns {
		if s.columns[i].Key == key {
			s.columns[i].Visible = visible

			return
		}
	}
}

// AppendColumn adds a column at the end of the registry. Key uniqueness
// is the caller's responsibility; the add-column flow checks before
// calling.
func (s *AppState) AppendColumn(col model.Column) {
	s.columns = append(s.columns, col)
}

// HasColumn reports whether a column with the given key exists.
func (s *AppState) HasColumn(key model.ColumnKey) bool {
	for _, c := range s.columns {
		if c.Key == key {
			return true
		}
	}

	return false
}

// ReorderColumns removes the dragged column and reinserts it at the
// target's original position index. Dragging forward therefore lands just
// after the target, dragging backward lands just before it. No-op if
// either key is absent or the keys are equal.
func (s *AppState) ReorderColumns(draggedKey, targetKey model.ColumnKey) {
	if draggedKey == targetKey {
		return
	}

	draggedIdx, targetIdx := -1, -1
	for i, c := range s.columns {
		switch c.Key {
		case draggedKey:
			draggedIdx = i
		case targetKey:
			targetIdx = i
		}
	}

	if draggedIdx == -1 || targetIdx == -1 {
		return
	}

	dragged := s.columns[draggedIdx]
	rest := append(append([]model.Column(nil), s.columns[:draggedIdx]...), s.columns[draggedIdx+1:]...)

	s.columns = append(rest[:targetIdx], append([]model.Column{dragged}, rest[targetIdx:]...)...)
}
