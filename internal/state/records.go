package state

import "github.com/inovacc/tablr/internal/model"

// Records returns the full unordered record collection. Callers treat the
// slice as read-only; mutation goes through the operations below.
func (s *AppState) Records() []model.Record { return s.records }

// RecordByID returns the first record with the given id. Duplicate ids are
// not enforced away, so first match wins.
func (s *AppState) RecordByID(id model.RecordID) (model.Record, bool) {
	for _, r := range s.records {
		if r.ID == id {
			return r, true
		}
	}

	return model.Record{}, false
}

// SetAllRecords replaces the collection wholesale and reseeds the id
// generator past every id now in use.
func (s *AppState) SetAllRecords(records []model.Record) {
	s.records = append([]model.Record(nil), records...)
	s.ids = model.NewIDGenerator(s.records)
}

// InsertRecords appends records to the collection. Ids are not
// deduplicated; callers guarantee freshness via NextID.
func (s *AppState) InsertRecords(records []model.Record) {
	s.records = append(s.records, records...)
}

// UpdateField merges a single field into the record with the given id,
// preserving all other fields. No-op if the id is absent.
func (s *AppState) UpdateField(id model.RecordID, key model.ColumnKey, value model.Value) {
	for i := range s.records {
		if s.records[i].ID == id {
			s.records[i].Fields = s.records[i].Fields.Clone()
			s.records[i].Set(key, value)

			return
		}
	}
}

// UpdateMany applies a mapping of id to partial field map. Each entry
// independently no-ops if its id is absent.
func (s *AppState) UpdateMany(updates map[model.RecordID]model.Fields) {
	for id, fields := range updates {
		for i := range s.records {
			if s.records[i].ID != id {
				continue
			}

			s.records[i].Fields = s.records[i].Fields.Clone()
			for k, v := range fields {
				s.records[i].Set(k, v)
			}

			break
		}
	}
}

// DeleteRecord removes the record with the given id. No-op if absent.
// An in-progress edit of that record stays in the buffer; it resolves to
// a no-op at save time.
func (s *AppState) DeleteRecord(id model.RecordID) {
	out := s.records[:0]
	for _, r := range s.records {
		if r.ID != id {
			out = append(out, r)
		}
	}

	s.records = out
}
