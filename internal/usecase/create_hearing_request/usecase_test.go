package create_hearing_request

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HearingService/internal/domain"
	"github.com/m04kA/SMC-HearingService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-HearingService/internal/testfixtures"
	"github.com/m04kA/SMC-HearingService/pkg/logger"
)

func newUseCase(store *memory.Store) *UseCase {
	uc := NewUseCase(
		memory.NewHearingRepository(store),
		memory.NewHolidayRepository(store),
		testfixtures.Policy(),
		logger.NewNop(),
	)
	uc.timeProvider = testfixtures.NewClock(testfixtures.ReferenceTime())
	return uc
}

func validRequest(at time.Time) *Request {
	return &Request{
		RequestedBy:     testfixtures.OwnerID,
		Type:            domain.HearingTypeTransit,
		HearingDateTime: at,
		ClaimAmount:     2500000,
		VehicleCount:    2,
		Address:         "Carrera 7 # 32-16",
		Department:      "Cundinamarca",
		City:            "Bogotá",
		Description:     testfixtures.Description(),
		Participants:    testfixtures.Participants(),
	}
}

func TestExecute_CreatesPendingWithCaseNumber(t *testing.T) {
	store := testfixtures.NewStore()
	uc := newUseCase(store)

	first, err := uc.Execute(context.Background(), validRequest(testfixtures.At(2025, time.January, 7, 10, 0)))
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), validRequest(testfixtures.At(2025, time.January, 8, 9, 0)))
	require.NoError(t, err)

	assert.Equal(t, "CASO-1001-2025", first.CaseNumber)
	assert.Equal(t, "CASO-1002-2025", second.CaseNumber)
	assert.Equal(t, string(domain.StatusPending), first.Status)
	assert.Nil(t, first.AssignedRoomID)
	assert.Equal(t, testfixtures.OwnerID, first.RequestedBy)
	assert.Len(t, first.Participants, 2)

	stored, err := memory.NewHearingRepository(store).GetByID(context.Background(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, stored.Status)
	assert.True(t, stored.HearingDateTime.Equal(testfixtures.At(2025, time.January, 7, 10, 0)))
}

func TestExecute_ScheduleRules(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		ok   bool
	}{
		{name: "saturday", at: testfixtures.At(2025, time.January, 11, 10, 0)},
		{name: "sunday", at: testfixtures.At(2025, time.January, 12, 10, 0)},
		{name: "exact holiday", at: testfixtures.At(2025, time.March, 24, 10, 0)},
		{name: "recurring holiday", at: testfixtures.At(2025, time.August, 7, 10, 0)},
		{name: "before opening", at: testfixtures.At(2025, time.January, 7, 8, 59)},
		{name: "at opening", at: testfixtures.At(2025, time.January, 7, 9, 0), ok: true},
		{name: "last minute", at: testfixtures.At(2025, time.January, 7, 16, 59), ok: true},
		{name: "at closing", at: testfixtures.At(2025, time.January, 7, 17, 0)},
		{name: "today", at: testfixtures.At(2025, time.January, 3, 15, 0)},
		{name: "beyond horizon", at: testfixtures.At(2026, time.January, 5, 10, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(testfixtures.NewStore())

			resp, err := uc.Execute(context.Background(), validRequest(tt.at))
			if tt.ok {
				require.NoError(t, err)
				assert.NotEmpty(t, resp.CaseNumber)
				return
			}

			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr), "expected validation error, got %v", err)
			assert.Contains(t, verr.FieldErrors, "hearingDateTime")
		})
	}
}

type failingHolidays struct{}

func (failingHolidays) ListForYear(context.Context, int) ([]domain.Holiday, error) {
	return nil, errors.New("connection refused")
}

func TestExecute_HolidaySourceFailure(t *testing.T) {
	store := testfixtures.NewStore()
	uc := NewUseCase(memory.NewHearingRepository(store), failingHolidays{}, testfixtures.Policy(), logger.NewNop())
	uc.timeProvider = testfixtures.NewClock(testfixtures.ReferenceTime())

	_, err := uc.Execute(context.Background(), validRequest(testfixtures.At(2025, time.January, 7, 10, 0)))
	assert.ErrorIs(t, err, ErrInternal)
}
