package memory_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HearingService/internal/domain"
	hearingRepo "github.com/m04kA/SMC-HearingService/internal/infra/storage/hearing"
	"github.com/m04kA/SMC-HearingService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-HearingService/internal/testfixtures"
)

const duration = 2 * time.Hour

func TestHearingRepository_CaseSequence(t *testing.T) {
	store := memory.NewStore()
	repo := memory.NewHearingRepository(store)
	ctx := context.Background()

	first, err := repo.NextCaseSequence(ctx)
	require.NoError(t, err)
	second, err := repo.NextCaseSequence(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(memory.FirstCaseSequence), first)
	assert.Equal(t, first+1, second)
}

func TestHearingRepository_CreateDuplicateCaseNumber(t *testing.T) {
	repo := memory.NewHearingRepository(memory.NewStore())
	ctx := context.Background()
	at := testfixtures.At(2025, time.January, 7, 10, 0)

	_, err := repo.Create(ctx, testfixtures.PendingHearing("CASO-1001-2025", at))
	require.NoError(t, err)

	_, err = repo.Create(ctx, testfixtures.PendingHearing("CASO-1001-2025", at))
	assert.ErrorIs(t, err, hearingRepo.ErrCaseNumberTaken)
}

func TestHearingRepository_CreateSetsTimestamps(t *testing.T) {
	repo := memory.NewHearingRepository(memory.NewStore())
	ctx := context.Background()
	before := time.Now()

	created, err := repo.Create(ctx, testfixtures.PendingHearing("CASO-1001-2025", testfixtures.At(2025, time.January, 7, 10, 0)))
	require.NoError(t, err)

	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
	assert.False(t, created.CreatedAt.Before(before))

	loaded, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.CreatedAt, loaded.CreatedAt)
}

func TestHearingRepository_AssignRoom(t *testing.T) {
	repo := memory.NewHearingRepository(memory.NewStore())
	ctx := context.Background()
	at := testfixtures.At(2025, time.January, 7, 10, 0)

	first, err := repo.Create(ctx, testfixtures.PendingHearing("CASO-1-2025", at))
	require.NoError(t, err)
	second, err := repo.Create(ctx, testfixtures.PendingHearing("CASO-2-2025", at.Add(time.Hour)))
	require.NoError(t, err)
	adjacent, err := repo.Create(ctx, testfixtures.PendingHearing("CASO-3-2025", at.Add(duration)))
	require.NoError(t, err)

	ok, err := repo.AssignRoom(ctx, first.ID, 10, first.Window(duration), duration)
	require.NoError(t, err)
	assert.True(t, ok)

	// повторное одобрение: заявка уже не pending
	ok, err = repo.AssignRoom(ctx, first.ID, 10, first.Window(duration), duration)
	require.NoError(t, err)
	assert.False(t, ok)

	// пересекающееся окно в том же зале
	ok, err = repo.AssignRoom(ctx, second.ID, 10, second.Window(duration), duration)
	require.NoError(t, err)
	assert.False(t, ok)

	// окно, которое только касается границы, не пересекается
	ok, err = repo.AssignRoom(ctx, adjacent.ID, 10, adjacent.Window(duration), duration)
	require.NoError(t, err)
	assert.True(t, ok)

	assignments, err := repo.ListAssignments(ctx, []int64{10}, domain.WindowFrom(at, 4*time.Hour), duration)
	require.NoError(t, err)
	require.Len(t, assignments, 2)
	assert.Equal(t, first.ID, assignments[0].HearingID)
	assert.Equal(t, adjacent.ID, assignments[1].HearingID)
}

func TestHearingRepository_UpdateStatusClearsRoom(t *testing.T) {
	repo := memory.NewHearingRepository(memory.NewStore())
	ctx := context.Background()
	at := testfixtures.At(2025, time.January, 7, 10, 0)

	h, err := repo.Create(ctx, testfixtures.PendingHearing("CASO-1-2025", at))
	require.NoError(t, err)
	_, err = repo.AssignRoom(ctx, h.ID, 10, h.Window(duration), duration)
	require.NoError(t, err)

	comment := &domain.Comment{Text: "cancelada", CreatedBy: 10, CreatedAt: at}
	ok, err := repo.UpdateStatus(ctx, h.ID,
		[]domain.HearingStatus{domain.StatusPending, domain.StatusApproved}, domain.StatusCancelled, comment)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repo.GetByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, got.Status)
	assert.Nil(t, got.AssignedRoomID)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, "cancelada", got.Comments[0].Text)

	ok, err = repo.UpdateStatus(ctx, h.ID, []domain.HearingStatus{domain.StatusPending}, domain.StatusRejected, nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHearingRepository_ReturnsCopies(t *testing.T) {
	repo := memory.NewHearingRepository(memory.NewStore())
	ctx := context.Background()

	h, err := repo.Create(ctx, testfixtures.PendingHearing("CASO-1-2025", testfixtures.At(2025, time.January, 7, 10, 0)))
	require.NoError(t, err)

	h.Status = domain.StatusRejected
	h.Participants[0].Name = "changed"

	got, err := repo.GetByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, got.Status)
	assert.NotEqual(t, "changed", got.Participants[0].Name)
}

func TestTxManager_RollbackOnError(t *testing.T) {
	store := memory.NewStore()
	repo := memory.NewHearingRepository(store)
	tx := memory.NewTxManager(store)
	ctx := context.Background()
	failure := errors.New("boom")

	err := tx.DoSerializable(ctx, func(ctx context.Context) error {
		_, err := repo.Create(ctx, testfixtures.PendingHearing("CASO-1-2025", testfixtures.At(2025, time.January, 7, 10, 0)))
		require.NoError(t, err)

		// вложенная транзакция переиспользует внешнюю
		return tx.Do(ctx, func(ctx context.Context) error {
			return failure
		})
	})
	assert.ErrorIs(t, err, failure)

	hearings, err := repo.List(ctx, domain.HearingFilter{})
	require.NoError(t, err)
	assert.Empty(t, hearings)
}

func TestTxManager_Commit(t *testing.T) {
	store := memory.NewStore()
	repo := memory.NewHearingRepository(store)
	tx := memory.NewTxManager(store)
	ctx := context.Background()

	err := tx.Do(ctx, func(ctx context.Context) error {
		_, err := repo.Create(ctx, testfixtures.PendingHearing("CASO-1-2025", testfixtures.At(2025, time.January, 7, 10, 0)))
		return err
	})
	require.NoError(t, err)

	hearings, err := repo.List(ctx, domain.HearingFilter{})
	require.NoError(t, err)
	assert.Len(t, hearings, 1)
}

func TestRoomRepository_ListActive(t *testing.T) {
	repo := memory.NewRoomRepository(testfixtures.NewStore())
	ctx := context.Background()

	rooms, err := repo.ListActive(ctx, nil)
	require.NoError(t, err)
	require.Len(t, rooms, 4)
	assert.Equal(t, testfixtures.CentroSala1, rooms[0].ID)
	assert.Equal(t, testfixtures.NorteSala1, rooms[1].ID)
	assert.Equal(t, testfixtures.CentroSala2, rooms[2].ID)
	assert.Equal(t, testfixtures.CentroTaller, rooms[3].ID)

	location := testfixtures.NorteID
	rooms, err = repo.ListActive(ctx, &location)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "Sede Norte", rooms[0].LocationName)
	assert.Equal(t, "NOR", rooms[0].LocationPrefix)
}

func TestDocumentRepository_SaveGuardedByDraft(t *testing.T) {
	store := testfixtures.NewStore()
	hearings := memory.NewHearingRepository(store)
	docs := memory.NewDocumentRepository(store)
	ctx := context.Background()
	now := testfixtures.ReferenceTime()

	h, err := hearings.Create(ctx, testfixtures.PendingHearing("CASO-1-2025", testfixtures.At(2025, time.January, 7, 10, 0)))
	require.NoError(t, err)

	doc, err := docs.Create(ctx, domain.NewDocument(h.ID, "Acta", domain.DocumentRecord, "v1", testfixtures.ConciliatorID, now))
	require.NoError(t, err)

	final, err := docs.GetByID(ctx, doc.ID)
	require.NoError(t, err)
	require.True(t, final.Finalize(testfixtures.ConciliatorID, now))
	ok, err := docs.Save(ctx, final)
	require.NoError(t, err)
	assert.True(t, ok)

	stale, err := docs.GetByID(ctx, doc.ID)
	require.NoError(t, err)
	stale.Status = domain.DocumentDraft
	stale.Content = "v2"
	ok, err = docs.Save(ctx, stale)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := docs.GetByID(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "v1", got.Content)
	assert.Equal(t, domain.DocumentFinal, got.Status)
}

func TestHolidayRepository_ListForYear(t *testing.T) {
	repo := memory.NewHolidayRepository(testfixtures.NewStore())

	h2025, err := repo.ListForYear(context.Background(), 2025)
	require.NoError(t, err)
	assert.Len(t, h2025, 2)

	h2026, err := repo.ListForYear(context.Background(), 2026)
	require.NoError(t, err)
	require.Len(t, h2026, 1)
	assert.True(t, h2026[0].Recurring)
}

func TestLoadSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[locations]]
id = 1
name = "Sede Centro"
prefix = "CEN"

[[rooms]]
id = 10
location_id = 1
name = "Sala 1"
modality = "in_person"
start_date = 2025-01-01T00:00:00-05:00
end_date = 2026-01-01T00:00:00-05:00
features = ["projector"]

[[holidays]]
date = 2025-03-24
description = "San José"
`), 0o644))

	seed, err := memory.LoadSeed(path)
	require.NoError(t, err)

	store := memory.NewStore()
	require.NoError(t, store.Apply(seed))

	room, err := memory.NewRoomRepository(store).GetByID(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, "Sede Centro", room.LocationName)
	assert.Equal(t, domain.RoomAvailable, room.ManualStatus)
	assert.True(t, room.Active)
	assert.Equal(t, []domain.Feature{domain.FeatureProjector}, room.Features)

	holidays, err := memory.NewHolidayRepository(store).ListForYear(context.Background(), 2025)
	require.NoError(t, err)
	require.Len(t, holidays, 1)
	assert.True(t, holidays[0].Matches(time.Date(2025, time.March, 24, 15, 0, 0, 0, testfixtures.Bogota)))
}

func TestApply_InvalidRoom(t *testing.T) {
	store := memory.NewStore()
	err := store.Apply(&memory.Seed{Rooms: []memory.SeedRoom{{ID: 1, Modality: "hologram"}}})
	assert.Error(t, err)
}
