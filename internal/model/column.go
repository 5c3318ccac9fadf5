package model

import "strings"

// ColumnKey is the stable identifier of a column, unique within the
// registry. Keys are lowercase alphanumeric.
type ColumnKey string

// Column describes one field of a record for display purposes. The order
// of columns in the registry is the display order.
type Column struct {
	Key      ColumnKey `json:"key"`
	Label    string    `json:"label"`
	Visible  bool      `json:"visible"`
	Sortable bool      `json:"sortable"`
}

// KeyFromLabel derives a column key from a display label: lowercased with
// everything outside [a-z0-9] stripped. May be empty for labels with no
// usable characters; callers must reject that.
func KeyFromLabel(label string) ColumnKey {
	var b strings.Builder
	for _, r := range strings.ToLower(label) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}

	return ColumnKey(b.String())
}

// Direction of an active sort.
type Direction string

const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

// SortSpec names the single active sort column and its direction. A nil
// *SortSpec means unsorted; there is no multi-column sort.
type SortSpec struct {
	Key       ColumnKey `json:"key"`
	Direction Direction `json:"direction"`
}
