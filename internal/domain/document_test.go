package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Edit(t *testing.T) {
	created := time.Date(2025, time.January, 7, 10, 0, 0, 0, time.UTC)
	doc := NewDocument(1, "Acta", DocumentRecord, "v1", 10, created)
	require.Equal(t, 1, doc.Version)
	require.Empty(t, doc.History)

	edited := created.Add(time.Hour)
	require.NoError(t, doc.Edit("v2", 20, edited))

	assert.Equal(t, 2, doc.Version)
	assert.Equal(t, "v2", doc.Content)
	assert.Equal(t, int64(20), doc.LastModifiedBy)
	assert.Equal(t, edited, doc.UpdatedAt)
	require.Len(t, doc.History, 1)
	assert.Equal(t, Snapshot{Content: "v1", ModifiedBy: 10, ModifiedAt: created, Version: 1}, doc.History[0])

	require.NoError(t, doc.Edit("v3", 10, edited.Add(time.Hour)))
	assert.Equal(t, 3, doc.Version)
	require.Len(t, doc.History, 2)
	assert.Equal(t, Snapshot{Content: "v2", ModifiedBy: 20, ModifiedAt: edited, Version: 2}, doc.History[1])
}

func TestDocument_EditFinal(t *testing.T) {
	now := time.Date(2025, time.January, 7, 10, 0, 0, 0, time.UTC)
	doc := NewDocument(1, "Acta", DocumentRecord, "v1", 10, now)
	require.NoError(t, doc.Edit("v2", 10, now))
	require.True(t, doc.Finalize(10, now))

	err := doc.Edit("v3", 10, now.Add(time.Minute))
	assert.ErrorIs(t, err, ErrDocumentFinalized)
	assert.Equal(t, "v2", doc.Content)
	assert.Equal(t, 2, doc.Version)
	assert.Len(t, doc.History, 1)
}

func TestDocument_FinalizeTwice(t *testing.T) {
	now := time.Date(2025, time.January, 7, 10, 0, 0, 0, time.UTC)
	doc := NewDocument(1, "Acta", DocumentRecord, "v1", 10, now)

	assert.True(t, doc.Finalize(11, now.Add(time.Minute)))
	assert.False(t, doc.Finalize(12, now.Add(time.Hour)))
	assert.Equal(t, int64(11), doc.LastModifiedBy)
	assert.Equal(t, DocumentFinal, doc.Status)
}

func TestDocument_EditDoesNotShareHistory(t *testing.T) {
	now := time.Date(2025, time.January, 7, 10, 0, 0, 0, time.UTC)
	doc := NewDocument(1, "Acta", DocumentRecord, "v1", 10, now)
	before := doc.History

	require.NoError(t, doc.Edit("v2", 10, now))
	assert.Empty(t, before)
}

func TestRoom_ResolveAvailability(t *testing.T) {
	base := time.Date(2025, time.January, 7, 10, 0, 0, 0, time.UTC)
	room := &Room{
		ID:           1,
		ManualStatus: RoomAvailable,
		StartDate:    base.AddDate(0, -1, 0),
		EndDate:      base.AddDate(1, 0, 0),
		Active:       true,
	}
	w := WindowFrom(base, 2*time.Hour)

	a := room.ResolveAvailability(w, nil)
	assert.True(t, a.Available())

	a = room.ResolveAvailability(w, []Assignment{{HearingID: 9, RoomID: 1, Window: WindowFrom(base.Add(time.Hour), 2*time.Hour)}})
	assert.Equal(t, RoomOccupied, a.Status)
	require.NotNil(t, a.OccupiedBy)
	assert.Equal(t, int64(9), *a.OccupiedBy)

	// назначение другого зала не влияет
	a = room.ResolveAvailability(w, []Assignment{{HearingID: 9, RoomID: 2, Window: w}})
	assert.True(t, a.Available())

	room.ManualStatus = RoomMaintenance
	assert.Equal(t, RoomMaintenance, room.ResolveAvailability(w, nil).Status)

	room.ManualStatus = RoomAvailable
	room.EndDate = base.Add(time.Hour)
	a = room.ResolveAvailability(w, nil)
	assert.False(t, a.CoversWindow)
	assert.False(t, a.Available())
}

func TestValidationError(t *testing.T) {
	verr := NewValidationError()
	assert.NoError(t, verr.OrNil())

	verr.Add("description", "too short")
	verr.Add("description", "ignored")
	verr.Add("city", "required")

	err := verr.OrNil()
	require.Error(t, err)
	assert.Equal(t, "too short", verr.FieldErrors["description"])
	assert.Equal(t, "validation failed: city: required; description: too short", err.Error())
}
