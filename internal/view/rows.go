package view

import "github.com/inovacc/tablr/internal/model"

// Overlay supplies the edit-buffer shadow for rendering. The state tree
// implements it; a nil Overlay renders committed values only.
type Overlay interface {
	Editing(id model.RecordID) bool
	EffectiveValue(rec model.Record, key model.ColumnKey) model.Value
}

// Cell is one rendered value keyed by its column.
type Cell struct {
	Key  model.ColumnKey
	Text string
}

// RowView is a render-ready row: the underlying record, whether it is
// being edited, and the display values in visible-column order.
type RowView struct {
	Record  model.Record
	Editing bool
	Cells   []Cell
}

// Rows projects a page of records onto the visible columns, letting
// buffered edits shadow committed values.
func Rows(records []model.Record, visible []model.Column, ov Overlay) []RowView {
	out := make([]RowView, 0, len(records))
	for _, r := range records {
		row := RowView{Record: r, Cells: make([]Cell, 0, len(visible))}

		if ov != nil {
			row.Editing = ov.Editing(r.ID)
		}

		for _, c := range visible {
			v := r.Get(c.Key)
			if ov != nil {
				v = ov.EffectiveValue(r, c.Key)
			}

			row.Cells = append(row.Cells, Cell{Key: c.Key, Text: v.Render()})
		}

		out = append(out, row)
	}

	return out
}
