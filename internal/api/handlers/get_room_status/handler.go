package get_room_status

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-HearingService/internal/api/handlers"
	getRoomStatus "github.com/m04kA/SMC-HearingService/internal/usecase/get_room_status"
)

const (
	msgInvalidRoomID   = "ID de sala inválido"
	msgInvalidDateTime = "Formato de fecha inválido, se espera RFC3339 o YYYY-MM-DD"
	msgRoomNotFound    = "Sala no encontrada"
)

type Handler struct {
	useCase      GetRoomStatusUseCase
	span         time.Duration
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

func NewHandler(useCase GetRoomStatusUseCase, span time.Duration, loc *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:      useCase,
		span:         span,
		location:     loc,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Handle GET /api/v1/rooms/{id}/status?start&end
// Статус вычисляется из назначений на интервал, по умолчанию на ближайшее окно слушания
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/status - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	useCaseReq, err := ToUseCaseRequest(r, roomID, h.timeProvider.Now(), h.span, h.location)
	if err != nil {
		verr, _ := handlers.AsValidationError(err)
		h.logger.Warn("GET /rooms/{id}/status - Invalid parameters: %v", err)
		handlers.RespondValidationError(w, verr)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if verr, ok := handlers.AsValidationError(err); ok {
			handlers.RespondValidationError(w, verr)
			return
		}
		if errors.Is(err, getRoomStatus.ErrRoomNotFound) {
			h.logger.Warn("GET /rooms/{id}/status - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)
			return
		}
		h.logger.Error("GET /rooms/{id}/status - Failed to get room status: room_id=%d, error=%v", roomID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /rooms/{id}/status - Room status retrieved: room_id=%d, status=%s", roomID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
