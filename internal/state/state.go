package state

import (
	"time"

	"github.com/inovacc/tablr/internal/model"
)

// UIState is the persisted table selection.
type UIState struct {
	SearchTerm string          `json:"search_term"`
	Sort       *model.SortSpec `json:"sort,omitempty"`
	Page       int             `json:"page"`
}

// Snapshot is the JSON-serializable image of the whole state tree, the
// unit stored under the fixed root key in the snapshot database. UID and
// SavedAt are stamped by the store on save.
type Snapshot struct {
	UID     string         `json:"uid,omitempty"`
	SavedAt time.Time      `json:"saved_at,omitempty"`
	Records []model.Record `json:"records"`
	Columns []model.Column `json:"columns"`
	UI      UIState        `json:"ui"`
}

// AppState is the application state tree. Construct one with New or
// Seeded and pass it by reference to whichever layer needs it; there is
// no package-level instance.
type AppState struct {
	records []model.Record
	columns []model.Column
	edits   map[model.RecordID]model.Fields
	ui      UIState
	ids     *model.IDGenerator
}

// New returns an empty state tree.
func New() *AppState {
	return &AppState{
		edits: make(map[model.RecordID]model.Fields),
		ui:    UIState{Page: 1},
		ids:   model.NewIDGenerator(nil),
	}
}

// Seeded returns a state tree loaded with the built-in dataset and the
// default sort (name ascending).
func Seeded() *AppState {
	s := New()
	s.SetAllRecords(model.SeedRecords())
	s.SetAllColumns(model.SeedColumns())
	s.ui.Sort = &model.SortSpec{Key: model.KeyName, Direction: model.Ascending}

	return s
}

// FromSnapshot rebuilds a state tree from a stored snapshot. The edit
// buffer always starts empty; uncommitted edits are never persisted.
func FromSnapshot(snap *Snapshot) *AppState {
	s := New()
	s.SetAllRecords(snap.Records)
	s.SetAllColumns(snap.Columns)
	s.ui = snap.UI

	if s.ui.Page < 1 {
		s.ui.Page = 1
	}

	return s
}

// Snapshot captures the committed state for persistence. In-progress
// edits are deliberately excluded.
func (s *AppState) Snapshot() *Snapshot {
	return &Snapshot{
		Records: append([]model.Record(nil), s.records...),
		Columns: append([]model.Column(nil), s.columns...),
		UI:      s.ui,
	}
}

// NextID returns a fresh record id.
func (s *AppState) NextID() model.RecordID { return s.ids.Next() }

// UI returns the current table selection.
func (s *AppState) UI() UIState { return s.ui }

// SetSearchTerm replaces the active search term.
func (s *AppState) SetSearchTerm(term string) { s.ui.SearchTerm = term }

// SetPage sets the 1-based current page. Out-of-range pages are corrected
// by the view pipeline on the next derivation.
func (s *AppState) SetPage(page int) {
	if page < 1 {
		page = 1
	}

	s.ui.Page = page
}

// Sort returns the active sort spec, nil when unsorted.
func (s *AppState) Sort() *model.SortSpec { return s.ui.Sort }

// ToggleSort applies the header-click rule: sorting the already-active
// ascending column flips it to descending, anything else sorts that
// column ascending.
func (s *AppState) ToggleSort(key model.ColumnKey) {
	dir := model.Ascending
	if s.ui.Sort != nil && s.ui.Sort.Key == key && s.ui.Sort.Direction == model.Ascending {
		dir = model.Descending
	}

	s.ui.Sort = &model.SortSpec{Key: key, Direction: dir}
}
