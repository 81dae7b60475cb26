package hearings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HearingService/internal/domain"
	"github.com/m04kA/SMC-HearingService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-HearingService/internal/service/hearings/models"
	"github.com/m04kA/SMC-HearingService/internal/testfixtures"
	"github.com/m04kA/SMC-HearingService/pkg/logger"
	"github.com/m04kA/SMC-HearingService/pkg/ptr"
)

const duration = 2 * time.Hour

type recorder struct {
	results []string
}

func (r *recorder) IncHearingTransition(transition, result string) {
	r.results = append(r.results, transition+"/"+result)
}

type fixture struct {
	repo     *memory.HearingRepository
	recorder *recorder
	clock    *testfixtures.Clock
	svc      *Service
}

func newFixture() *fixture {
	repo := memory.NewHearingRepository(testfixtures.NewStore())
	f := &fixture{repo: repo, recorder: &recorder{}, clock: testfixtures.NewClock(testfixtures.ReferenceTime())}
	f.svc = NewService(repo, f.recorder, duration, logger.NewNop())
	f.svc.timeProvider = f.clock
	return f
}

func (f *fixture) create(t *testing.T, h *domain.HearingRequest) *domain.HearingRequest {
	t.Helper()
	created, err := f.repo.Create(context.Background(), h)
	require.NoError(t, err)
	return created
}

func (f *fixture) approve(t *testing.T, h *domain.HearingRequest, roomID int64) {
	t.Helper()
	ok, err := f.repo.AssignRoom(context.Background(), h.ID, roomID, h.Window(duration), duration)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestGetByID_Access(t *testing.T) {
	f := newFixture()
	h := f.create(t, testfixtures.PendingHearing("CASO-1001-2025", testfixtures.At(2025, time.January, 7, 10, 0)))

	resp, err := f.svc.GetByID(context.Background(), testfixtures.Owner(), h.ID)
	require.NoError(t, err)
	assert.Equal(t, "CASO-1001-2025", resp.CaseNumber)
	assert.Equal(t, testfixtures.At(2025, time.January, 7, 12, 0).UTC().Format(domain.DateTimeFormat), resp.HearingEndTime)

	_, err = f.svc.GetByID(context.Background(), testfixtures.Admin(), h.ID)
	require.NoError(t, err)

	_, err = f.svc.GetByID(context.Background(), testfixtures.OtherUser(), h.ID)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = f.svc.GetByID(context.Background(), testfixtures.Admin(), 999)
	assert.ErrorIs(t, err, ErrHearingNotFound)
}

func TestList_ScopeAndFilters(t *testing.T) {
	f := newFixture()
	later := f.create(t, testfixtures.PendingHearing("CASO-1002-2025", testfixtures.At(2025, time.February, 4, 10, 0)))
	earlier := f.create(t, testfixtures.PendingHearing("CASO-1001-2025", testfixtures.At(2025, time.January, 7, 10, 0)))
	foreign := testfixtures.PendingHearing("CASO-1003-2025", testfixtures.At(2025, time.January, 8, 10, 0))
	foreign.RequestedBy = testfixtures.OtherUserID
	foreign.Type = domain.HearingTypeOther
	f.create(t, foreign)

	own, err := f.svc.List(context.Background(), &models.ListRequest{Principal: testfixtures.Owner()})
	require.NoError(t, err)
	require.Equal(t, 2, own.Total)
	assert.Equal(t, earlier.ID, own.Hearings[0].ID)
	assert.Equal(t, later.ID, own.Hearings[1].ID)

	all, err := f.svc.List(context.Background(), &models.ListRequest{Principal: testfixtures.Admin()})
	require.NoError(t, err)
	assert.Equal(t, 3, all.Total)

	others, err := f.svc.List(context.Background(), &models.ListRequest{Principal: testfixtures.Admin(), Type: ptr.Ptr("OTHER")})
	require.NoError(t, err)
	require.Equal(t, 1, others.Total)
	assert.Equal(t, "CASO-1003-2025", others.Hearings[0].CaseNumber)

	start := testfixtures.At(2025, time.February, 1, 0, 0)
	ranged, err := f.svc.List(context.Background(), &models.ListRequest{Principal: testfixtures.Admin(), StartDate: &start})
	require.NoError(t, err)
	require.Equal(t, 1, ranged.Total)
	assert.Equal(t, later.ID, ranged.Hearings[0].ID)
}

func TestList_InvalidInput(t *testing.T) {
	f := newFixture()
	start := testfixtures.At(2025, time.February, 1, 0, 0)
	end := testfixtures.At(2025, time.January, 1, 0, 0)

	tests := []*models.ListRequest{
		{Principal: testfixtures.Admin(), Status: ptr.Ptr("archived")},
		{Principal: testfixtures.Admin(), Type: ptr.Ptr("maritime")},
		{Principal: testfixtures.Admin(), StartDate: &start, EndDate: &end},
	}
	for _, req := range tests {
		_, err := f.svc.List(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestReject(t *testing.T) {
	f := newFixture()
	h := f.create(t, testfixtures.PendingHearing("CASO-1001-2025", testfixtures.At(2025, time.January, 7, 10, 0)))

	_, err := f.svc.Reject(context.Background(), &models.TransitionRequest{Principal: testfixtures.Owner(), HearingID: h.ID})
	assert.ErrorIs(t, err, ErrAccessDenied)

	resp, err := f.svc.Reject(context.Background(), &models.TransitionRequest{
		Principal: testfixtures.Admin(),
		HearingID: h.ID,
		Comment:   ptr.Ptr("  Falta documentación  "),
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusRejected), resp.Status)
	require.Len(t, resp.Comments, 1)
	assert.Equal(t, "Falta documentación", resp.Comments[0].Text)
	assert.Equal(t, testfixtures.AdminID, resp.Comments[0].CreatedBy)
	assert.Equal(t, []string{"reject/ok"}, f.recorder.results)
}

func TestCancel_ApprovedReleasesRoom(t *testing.T) {
	f := newFixture()
	h := f.create(t, testfixtures.PendingHearing("CASO-1001-2025", testfixtures.At(2025, time.January, 7, 10, 0)))
	f.approve(t, h, testfixtures.CentroSala1)

	resp, err := f.svc.Cancel(context.Background(), &models.TransitionRequest{Principal: testfixtures.Owner(), HearingID: h.ID})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.Nil(t, resp.AssignedRoomID)
	assert.Empty(t, resp.Comments)

	assignments, err := f.repo.ListAssignments(context.Background(), nil, h.Window(duration), duration)
	require.NoError(t, err)
	assert.Empty(t, assignments)
}

func TestCancel_ForeignUser(t *testing.T) {
	f := newFixture()
	h := f.create(t, testfixtures.PendingHearing("CASO-1001-2025", testfixtures.At(2025, time.January, 7, 10, 0)))

	_, err := f.svc.Cancel(context.Background(), &models.TransitionRequest{Principal: testfixtures.OtherUser(), HearingID: h.ID})
	assert.ErrorIs(t, err, ErrAccessDenied)

	stored, err := f.repo.GetByID(context.Background(), h.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, stored.Status)
}

func TestTransitions_FromTerminalStates(t *testing.T) {
	for _, terminal := range []domain.HearingStatus{domain.StatusRejected, domain.StatusCancelled} {
		t.Run(string(terminal), func(t *testing.T) {
			f := newFixture()
			h := f.create(t, testfixtures.PendingHearing("CASO-1001-2025", testfixtures.At(2025, time.January, 7, 10, 0)))
			_, err := f.repo.UpdateStatus(context.Background(), h.ID, []domain.HearingStatus{domain.StatusPending}, terminal, nil)
			require.NoError(t, err)

			req := &models.TransitionRequest{Principal: testfixtures.Admin(), HearingID: h.ID}
			_, err = f.svc.Cancel(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidTransition)
			_, err = f.svc.Reject(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidTransition)

			stored, err := f.repo.GetByID(context.Background(), h.ID)
			require.NoError(t, err)
			assert.Equal(t, terminal, stored.Status)
			assert.Equal(t, []string{"cancel/invalid", "reject/invalid"}, f.recorder.results)
		})
	}
}

func TestReject_ApprovedIsInvalid(t *testing.T) {
	f := newFixture()
	h := f.create(t, testfixtures.PendingHearing("CASO-1001-2025", testfixtures.At(2025, time.January, 7, 10, 0)))
	f.approve(t, h, testfixtures.CentroSala1)

	_, err := f.svc.Reject(context.Background(), &models.TransitionRequest{Principal: testfixtures.Admin(), HearingID: h.ID})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestAddComment(t *testing.T) {
	f := newFixture()
	h := f.create(t, testfixtures.PendingHearing("CASO-1001-2025", testfixtures.At(2025, time.January, 7, 10, 0)))

	resp, err := f.svc.AddComment(context.Background(), &models.AddCommentRequest{
		Principal: testfixtures.Owner(),
		HearingID: h.ID,
		Text:      "Adjunto el informe del accidente",
	})
	require.NoError(t, err)
	require.Len(t, resp.Comments, 1)
	assert.Equal(t, testfixtures.ReferenceTime().Format(domain.DateTimeFormat), resp.Comments[0].CreatedAt)

	f.clock.Advance(time.Hour)
	resp, err = f.svc.AddComment(context.Background(), &models.AddCommentRequest{
		Principal: testfixtures.Admin(),
		HearingID: h.ID,
		Text:      "Recibido",
	})
	require.NoError(t, err)
	require.Len(t, resp.Comments, 2)
	assert.Equal(t, "Recibido", resp.Comments[1].Text)

	_, err = f.svc.AddComment(context.Background(), &models.AddCommentRequest{
		Principal: testfixtures.OtherUser(),
		HearingID: h.ID,
		Text:      "hola",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = f.svc.AddComment(context.Background(), &models.AddCommentRequest{
		Principal: testfixtures.Owner(),
		HearingID: h.ID,
		Text:      "   ",
	})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.FieldErrors, "text")
}

func TestListCurrent(t *testing.T) {
	f := newFixture()
	now := testfixtures.At(2025, time.January, 7, 11, 0)
	f.clock.Set(now)

	running := f.create(t, testfixtures.PendingHearing("CASO-1001-2025", testfixtures.At(2025, time.January, 7, 10, 0)))
	f.approve(t, running, testfixtures.CentroSala1)
	finished := f.create(t, testfixtures.PendingHearing("CASO-1002-2025", testfixtures.At(2025, time.January, 7, 9, 0)))
	f.approve(t, finished, testfixtures.CentroSala2)
	f.create(t, testfixtures.PendingHearing("CASO-1003-2025", testfixtures.At(2025, time.January, 7, 10, 30)))

	resp, err := f.svc.ListCurrent(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, running.ID, resp.Hearings[0].ID)
}
