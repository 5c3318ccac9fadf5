package state

import (
	"testing"

	"github.com/inovacc/tablr/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartEditSnapshotsRecord(t *testing.T) {
	s := testState(t)

	s.StartEdit(1)

	require.True(t, s.Editing(1))
	assert.True(t, s.Dirty())

	rec, _ := s.RecordByID(1)
	assert.Equal(t, rec.Get(model.KeyName), s.EffectiveValue(rec, model.KeyName))
}

func TestStartEditTwiceKeepsChanges(t *testing.T) {
	s := testState(t)

	s.StartEdit(1)
	s.ChangeField(1, model.KeyName, model.Text("Changed"))
	s.StartEdit(1) // must not reset the in-progress edit

	rec, _ := s.RecordByID(1)
	assert.Equal(t, model.Text("Changed"), s.EffectiveValue(rec, model.KeyName))
}

func TestStartEditMissingIDIsNoop(t *testing.T) {
	s := testState(t)

	s.StartEdit(9999)

	assert.False(t, s.Editing(9999))
	assert.False(t, s.Dirty())
}

func TestEffectiveValueShadowsCommitted(t *testing.T) {
	s := testState(t)
	rec, _ := s.RecordByID(1)

	// no entry: committed value
	assert.Equal(t, model.Text("Alice Johnson"), s.EffectiveValue(rec, model.KeyName))

	s.StartEdit(1)
	s.ChangeField(1, model.KeyName, model.Text("Alice Cooper"))

	// entry defines the field: buffered value, store untouched
	assert.Equal(t, model.Text("Alice Cooper"), s.EffectiveValue(rec, model.KeyName))

	committed, _ := s.RecordByID(1)
	assert.Equal(t, model.Text("Alice Johnson"), committed.Get(model.KeyName))
}

func TestCancelAllRevertsEverything(t *testing.T) {
	s := testState(t)

	s.StartEdit(1)
	s.ChangeField(1, model.KeyName, model.Text("X"))
	s.StartEdit(2)
	s.ChangeField(2, model.KeyAge, model.Number(99))

	s.CancelAll()

	assert.False(t, s.Dirty())

	rec1, _ := s.RecordByID(1)
	rec2, _ := s.RecordByID(2)
	assert.Equal(t, model.Text("Alice Johnson"), s.EffectiveValue(rec1, model.KeyName))
	assert.Equal(t, model.Number(34), s.EffectiveValue(rec2, model.KeyAge))
}

func TestSaveAllCommitsAndClears(t *testing.T) {
	s := testState(t)

	s.StartEdit(1)
	s.ChangeField(1, model.KeyName, model.Text("Alice Cooper"))
	s.StartEdit(2)
	s.ChangeField(2, model.KeyAge, model.Number(35))

	s.SaveAll()

	require.False(t, s.Dirty())

	rec1, _ := s.RecordByID(1)
	rec2, _ := s.RecordByID(2)
	assert.Equal(t, model.Text("Alice Cooper"), rec1.Get(model.KeyName))
	assert.Equal(t, model.Number(35), rec2.Get(model.KeyAge))

	// untouched fields survive the full-snapshot entry
	assert.Equal(t, model.Text("alice.j@example.com"), rec1.Get(model.KeyEmail))
}

func TestSaveAllWithDeletedRecordIsNoop(t *testing.T) {
	s := testState(t)

	s.StartEdit(1)
	s.ChangeField(1, model.KeyName, model.Text("Gone"))
	s.DeleteRecord(1)

	s.SaveAll()

	assert.False(t, s.Dirty())
	assert.Len(t, s.Records(), 11)
}
