package create_hearing_request

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HearingService/internal/domain"
	"github.com/m04kA/SMC-HearingService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-HearingService/internal/service/hearings"
	"github.com/m04kA/SMC-HearingService/internal/service/hearings/models"
	"github.com/m04kA/SMC-HearingService/internal/testfixtures"
	"github.com/m04kA/SMC-HearingService/internal/usecase/approve_hearing_request"
	"github.com/m04kA/SMC-HearingService/internal/usecase/get_room_status"
	"github.com/m04kA/SMC-HearingService/pkg/logger"
	"github.com/m04kA/SMC-HearingService/pkg/metrics"
)

// Полный жизненный цикл: подача, одобрение с залом, отмена
func TestScenario_SubmitApproveCancel(t *testing.T) {
	ctx := context.Background()
	log := logger.NewNop()
	store := testfixtures.NewStore()
	hearingRepo := memory.NewHearingRepository(store)
	roomRepo := memory.NewRoomRepository(store)
	policy := testfixtures.Policy()
	var m *metrics.Metrics

	submit := newUseCase(store)
	approve := approve_hearing_request.NewUseCase(hearingRepo, roomRepo, memory.NewTxManager(store), m, policy.HearingDuration, log)
	roomStatus := get_room_status.NewUseCase(roomRepo, hearingRepo, policy.HearingDuration, log)
	service := hearings.NewService(hearingRepo, m, policy.HearingDuration, log)

	at := testfixtures.At(2025, time.January, 7, 10, 0)
	statusOfRoom := func() *get_room_status.Response {
		resp, err := roomStatus.Execute(ctx, &get_room_status.Request{
			RoomID: testfixtures.CentroSala1,
			Start:  at,
			End:    at.Add(policy.HearingDuration),
		})
		require.NoError(t, err)
		return resp
	}

	created, err := submit.Execute(ctx, validRequest(at))
	require.NoError(t, err)
	assert.Equal(t, "CASO-1001-2025", created.CaseNumber)
	assert.Equal(t, string(domain.StatusPending), created.Status)
	assert.Equal(t, string(domain.RoomAvailable), statusOfRoom().Status)

	approved, err := approve.Execute(ctx, &approve_hearing_request.Request{
		Principal:  testfixtures.Admin(),
		HearingID:  created.ID,
		LocationID: testfixtures.CentroID,
		RoomID:     testfixtures.CentroSala1,
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusApproved), approved.Status)

	occupied := statusOfRoom()
	assert.Equal(t, string(domain.RoomOccupied), occupied.Status)
	require.NotNil(t, occupied.OccupiedBy)
	assert.Equal(t, created.ID, *occupied.OccupiedBy)

	cancelled, err := service.Cancel(ctx, &models.TransitionRequest{
		Principal: testfixtures.Owner(),
		HearingID: created.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), cancelled.Status)
	assert.Nil(t, cancelled.AssignedRoomID)
	assert.Equal(t, string(domain.RoomAvailable), statusOfRoom().Status)
}
