package model

import (
	"sync"
	"time"
)

// RecordID uniquely identifies a record. IDs are orderable and immutable:
// seed records use fixed small ids, everything created afterwards gets a
// millisecond-epoch id from the generator.
type RecordID int64

// Fields is a record's open attribute bag keyed by column key. A key that
// is not in the map is absent, which is not the same as an explicit empty
// text value.
type Fields map[ColumnKey]Value

// Clone returns an independent copy of the field map.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}

	return out
}

// Record is one row of managed data.
type Record struct {
	ID     RecordID `json:"id"`
	Fields Fields   `json:"fields"`
}

// Get returns the value stored under key, or Absent if the record does not
// define the field.
func (r Record) Get(key ColumnKey) Value {
	if v, ok := r.Fields[key]; ok {
		return v
	}

	return Absent
}

// Set stores value under key, allocating the field map if needed.
func (r *Record) Set(key ColumnKey, value Value) {
	if r.Fields == nil {
		r.Fields = make(Fields)
	}

	r.Fields[key] = value
}

// IDGenerator hands out fresh record ids. Ids follow the wall clock in
// milliseconds but never repeat or go backwards, so records created within
// the same millisecond (a CSV import batch) still get distinct ids.
type IDGenerator struct {
	mu   sync.Mutex
	last int64
}

// NewIDGenerator returns a generator seeded past every id already in use.
func NewIDGenerator(existing []Record) *IDGenerator {
	g := &IDGenerator{}
	for _, r := range existing {
		if int64(r.ID) > g.last {
			g.last = int64(r.ID)
		}
	}

	return g
}

// Next returns a fresh unique id.
func (g *IDGenerator) Next() RecordID {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now().UnixMilli()
	if now <= g.last {
		now = g.last + 1
	}

	g.last = now

	return RecordID(now)
}
