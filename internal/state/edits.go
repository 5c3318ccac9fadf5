package state

import "github.com/inovacc/tablr/internal/model"

// StartEdit opens an edit buffer entry for the record, seeded with a
// snapshot of its current full field map. Re-invoking while an entry
// exists is a no-op so in-progress edits are never reset. No-op if the
// id is absent from the store.
func (s *AppState) StartEdit(id model.RecordID) {
	if _, ok := s.edits[id]; ok {
		return
	}

	rec, ok := s.RecordByID(id)
	if !ok {
		return
	}

	s.edits[id] = rec.Fields.Clone()
}

// ChangeField merges one field into the record's buffer entry, creating
// the entry if needed. Validation happens at the edit boundary before
// this is called; rejected values never reach the buffer.
func (s *AppState) ChangeField(id model.RecordID, key model.ColumnKey, value model.Value) {
	entry, ok := s.edits[id]
	if !ok {
		entry = make(model.Fields)
		s.edits[id] = entry
	}

	entry[key] = value
}

// Editing reports whether the record has an edit buffer entry.
func (s *AppState) Editing(id model.RecordID) bool {
	_, ok := s.edits[id]

	return ok
}

// Dirty reports whether any record is being edited.
func (s *AppState) Dirty() bool { return len(s.edits) > 0 }

// EffectiveValue resolves the displayed value for a field: the buffered
// value when an entry exists and defines the field, the committed value
// otherwise. This shadow lookup is how in-progress edits render without
// touching the record store.
func (s *AppState) EffectiveValue(rec model.Record, key model.ColumnKey) model.Value {
	if entry, ok := s.edits[rec.ID]; ok {
		if v, ok := entry[key]; ok {
			return v
		}
	}

	return rec.Get(key)
}

// SaveAll commits every buffer entry to the record store in one bulk
// update, then clears the buffer. All-or-nothing across every edited
// row; there is no per-row save.
func (s *AppState) SaveAll() {
	s.UpdateMany(s.edits)
	s.edits = make(map[model.RecordID]model.Fields)
}

// CancelAll discards the entire buffer without touching the store.
func (s *AppState) CancelAll() {
	s.edits = make(map[model.RecordID]model.Fields)
}
