package approve_hearing_request

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HearingService/internal/domain"
	hearingRepo "github.com/m04kA/SMC-HearingService/internal/infra/storage/hearing"
	roomRepo "github.com/m04kA/SMC-HearingService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HearingService/internal/service/hearings/models"
	"github.com/m04kA/SMC-HearingService/pkg/pgerrors"
	"github.com/m04kA/SMC-HearingService/pkg/txmanager"
)

const transitionName = "approve"

// UseCase одобрение заявки с назначением зала
// Единственная операция, которой нужна защита от гонки: два администратора
// не должны одновременно занять один зал на пересекающиеся окна
type UseCase struct {
	hearingRepo     HearingRepository
	roomRepo        RoomRepository
	txManager       TransactionManager
	transitions     TransitionRecorder
	hearingDuration time.Duration
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	hearingRepo HearingRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	transitions TransitionRecorder,
	hearingDuration time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		hearingRepo:     hearingRepo,
		roomRepo:        roomRepo,
		txManager:       txManager,
		transitions:     transitions,
		hearingDuration: hearingDuration,
		logger:          logger,
	}
}

// Execute pending -> approved с привязкой зала
// Все шаги выполняются в сериализуемой транзакции:
//  1. строка зала блокируется (FOR UPDATE), конкурентные одобрения в этот зал ждут
//  2. доступность зала перепроверяется на окно заявки
//  3. статус и зал меняются одним условным UPDATE (status = pending и нет пересечений)
//
// Ноль измененных строк или serialization failure означают проигранную гонку.
// Автоматических повторов нет. Правила расписания здесь не проверяются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.HearingResponse, error) {
	uc.logger.Info("ApproveHearingRequest: hearing=%d, location=%d, room=%d, by user=%d",
		req.HearingID, req.LocationID, req.RoomID, req.Principal.UserID)

	if !req.Principal.IsAdmin() {
		uc.logger.Warn("ApproveHearingRequest: user=%d is not an admin", req.Principal.UserID)
		return nil, ErrAccessDenied
	}

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ApproveHearingRequest: validation failed: %v", err)
		return nil, err
	}

	var result *domain.HearingRequest

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Заявка должна быть в статусе pending, иначе ошибки зала не проверяются
		hearing, err := uc.hearingRepo.GetByID(txCtx, req.HearingID)
		if err != nil {
			if errors.Is(err, hearingRepo.ErrHearingNotFound) {
				return ErrHearingNotFound
			}
			if isSerializationFailure(err) {
				return fmt.Errorf("%w: %v", ErrConflict, err)
			}
			return fmt.Errorf("%w: failed to get hearing: %v", ErrInternal, err)
		}
		if err := domain.CheckTransition(hearing.Status, domain.StatusApproved); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTransition, err)
		}

		// 2. Блокируем зал
		room, err := uc.roomRepo.LockForAssignment(txCtx, req.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				return ErrRoomNotFound
			}
			if isSerializationFailure(err) {
				return fmt.Errorf("%w: %v", ErrConflict, err)
			}
			return fmt.Errorf("%w: failed to lock room: %v", ErrInternal, err)
		}
		if room.LocationID != req.LocationID {
			return fmt.Errorf("%w: room %d belongs to location %d", ErrRoomNotInLocation, room.ID, room.LocationID)
		}

		// 3. Перепроверяем доступность зала на окно заявки
		window := hearing.Window(uc.hearingDuration)
		assignments, err := uc.hearingRepo.ListAssignments(txCtx, []int64{room.ID}, window, uc.hearingDuration)
		if err != nil {
			if isSerializationFailure(err) {
				return fmt.Errorf("%w: %v", ErrConflict, err)
			}
			return fmt.Errorf("%w: failed to list assignments: %v", ErrInternal, err)
		}

		availability := room.ResolveAvailability(window, assignments)
		switch {
		case availability.Status == domain.RoomOccupied:
			return fmt.Errorf("%w: room %d occupied by hearing %d", ErrConflict, room.ID, *availability.OccupiedBy)
		case !availability.Available():
			return fmt.Errorf("%w: room %d status=%s covers=%t", ErrRoomUnavailable, room.ID, availability.Status, availability.CoversWindow)
		}

		// 4. Условный UPDATE
		ok, err := uc.hearingRepo.AssignRoom(txCtx, hearing.ID, room.ID, window, uc.hearingDuration)
		if err != nil {
			if isSerializationFailure(err) {
				return fmt.Errorf("%w: %v", ErrConflict, err)
			}
			return fmt.Errorf("%w: failed to assign room: %v", ErrInternal, err)
		}
		if !ok {
			return uc.explainLostRace(txCtx, hearing.ID, room.ID)
		}

		hearing.Status = domain.StatusApproved
		hearing.AssignedRoomID = &room.ID
		result = hearing
		return nil
	})

	if err != nil {
		// Конфликт при commit сериализуемой транзакции
		switch {
		case pgerrors.IsSerializationFailure(err):
			err = fmt.Errorf("%w: commit: %v", ErrConflict, err)
		case errors.Is(err, txmanager.ErrTransaction):
			err = fmt.Errorf("%w: %v", ErrInternal, err)
		}
		uc.record(err)
		uc.logErr(req, err)
		return nil, err
	}

	uc.record(nil)
	uc.logger.Info("ApproveHearingRequest: hearing=%d approved in room=%d", req.HearingID, req.RoomID)
	return models.FromDomainHearing(result, uc.hearingDuration), nil
}

// explainLostRace условный UPDATE не изменил строку: выясняем, что именно изменилось
func (uc *UseCase) explainLostRace(ctx context.Context, hearingID, roomID int64) error {
	current, err := uc.hearingRepo.GetByID(ctx, hearingID)
	if err != nil {
		return fmt.Errorf("%w: failed to re-read hearing: %v", ErrInternal, err)
	}
	if current.Status != domain.StatusPending {
		return fmt.Errorf("%w: hearing %d is %s", ErrInvalidTransition, hearingID, current.Status)
	}
	return fmt.Errorf("%w: room %d taken concurrently", ErrConflict, roomID)
}

func isSerializationFailure(err error) bool {
	return errors.Is(err, hearingRepo.ErrSerialization) || errors.Is(err, roomRepo.ErrSerialization)
}

func (uc *UseCase) record(err error) {
	result := "ok"
	switch {
	case err == nil:
	case errors.Is(err, ErrConflict):
		result = "conflict"
	case errors.Is(err, ErrInvalidTransition):
		result = "invalid"
	case errors.Is(err, ErrInternal):
		result = "error"
	default:
		result = "rejected"
	}
	uc.transitions.IncHearingTransition(transitionName, result)
}

func (uc *UseCase) logErr(req *Request, err error) {
	switch {
	case errors.Is(err, ErrInternal):
		uc.logger.Error("ApproveHearingRequest: hearing=%d room=%d: %v", req.HearingID, req.RoomID, err)
	default:
		uc.logger.Warn("ApproveHearingRequest: hearing=%d room=%d: %v", req.HearingID, req.RoomID, err)
	}
}
