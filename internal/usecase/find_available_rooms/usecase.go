package find_available_rooms

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-HearingService/internal/domain"
	roomRepo "github.com/m04kA/SMC-HearingService/internal/infra/storage/room"
)

// UseCase поиск залов, свободных на интервал
// Всегда читает зафиксированные назначения, без кэша
type UseCase struct {
	roomRepo        RoomRepository
	hearingRepo     HearingRepository
	hearingDuration time.Duration
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	hearingRepo HearingRepository,
	hearingDuration time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:        roomRepo,
		hearingRepo:     hearingRepo,
		hearingDuration: hearingDuration,
		logger:          logger,
	}
}

// Execute возвращает активные залы, свободные на весь интервал
// Сортировка: название зала, затем название площадки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	window, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("FindAvailableRooms: validation failed: %v", err)
		return nil, err
	}

	if req.LocationID != nil {
		if _, err := uc.roomRepo.GetLocation(ctx, *req.LocationID); err != nil {
			if errors.Is(err, roomRepo.ErrLocationNotFound) {
				uc.logger.Warn("FindAvailableRooms: location id=%d not found", *req.LocationID)
				return nil, ErrLocationNotFound
			}
			uc.logger.Error("FindAvailableRooms: failed to get location id=%d: %v", *req.LocationID, err)
			return nil, fmt.Errorf("%w: failed to get location: %v", ErrInternal, err)
		}
	}

	rooms, err := uc.roomRepo.ListActive(ctx, req.LocationID)
	if err != nil {
		uc.logger.Error("FindAvailableRooms: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	resp := &Response{
		Start: window.Start.Format(domain.DateTimeFormat),
		End:   window.End.Format(domain.DateTimeFormat),
		Rooms: make([]*RoomResponse, 0, len(rooms)),
	}
	if len(rooms) == 0 {
		return resp, nil
	}

	roomIDs := make([]int64, 0, len(rooms))
	for _, r := range rooms {
		roomIDs = append(roomIDs, r.ID)
	}

	assignments, err := uc.hearingRepo.ListAssignments(ctx, roomIDs, window, uc.hearingDuration)
	if err != nil {
		uc.logger.Error("FindAvailableRooms: failed to list assignments: %v", err)
		return nil, fmt.Errorf("%w: failed to list assignments: %v", ErrInternal, err)
	}

	available := make([]*domain.Room, 0, len(rooms))
	for _, r := range rooms {
		if r.ResolveAvailability(window, assignments).Available() {
			available = append(available, r)
		}
	}

	sort.SliceStable(available, func(i, j int) bool {
		if available[i].Name != available[j].Name {
			return available[i].Name < available[j].Name
		}
		return available[i].LocationName < available[j].LocationName
	})

	for _, r := range available {
		resp.Rooms = append(resp.Rooms, fromDomainRoom(r, domain.RoomAvailable))
	}
	resp.Total = len(resp.Rooms)

	uc.logger.Info("FindAvailableRooms: %d of %d rooms available for %s - %s",
		resp.Total, len(rooms), resp.Start, resp.End)
	return resp, nil
}
