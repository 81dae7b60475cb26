package get_room_status

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HearingService/internal/domain"
	roomRepo "github.com/m04kA/SMC-HearingService/internal/infra/storage/room"
)

// UseCase вычисляет статус зала на интервал из назначений
// Сохраненный статус зала учитывается только как ручной maintenance
type UseCase struct {
	roomRepo        RoomRepository
	hearingRepo     HearingRepository
	hearingDuration time.Duration
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(roomRepo RoomRepository, hearingRepo HearingRepository, hearingDuration time.Duration, logger Logger) *UseCase {
	return &UseCase{
		roomRepo:        roomRepo,
		hearingRepo:     hearingRepo,
		hearingDuration: hearingDuration,
		logger:          logger,
	}
}

// Execute возвращает статус зала на интервал [Start, End)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	verr := domain.NewValidationError()
	if req.RoomID <= 0 {
		verr.Add("roomId", "Sala inválida")
	}
	window, err := domain.NewWindow(req.Start, req.End)
	if err != nil {
		verr.Add("end", "La fecha de fin debe ser posterior a la de inicio")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("GetRoomStatus: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("GetRoomStatus: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	assignments, err := uc.hearingRepo.ListAssignments(ctx, []int64{room.ID}, window, uc.hearingDuration)
	if err != nil {
		uc.logger.Error("GetRoomStatus: failed to list assignments for room id=%d: %v", room.ID, err)
		return nil, fmt.Errorf("%w: failed to list assignments: %v", ErrInternal, err)
	}

	a := room.ResolveAvailability(window, assignments)

	return &Response{
		RoomID:       room.ID,
		Name:         room.Name,
		LocationID:   room.LocationID,
		LocationName: room.LocationName,
		Start:        window.Start.Format(domain.DateTimeFormat),
		End:          window.End.Format(domain.DateTimeFormat),
		Status:       string(a.Status),
		Active:       a.CoversWindow,
		OccupiedBy:   a.OccupiedBy,
	}, nil
}
