package find_available_rooms

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-HearingService/internal/api/handlers"
	findRooms "github.com/m04kA/SMC-HearingService/internal/usecase/find_available_rooms"
)

const (
	msgInvalidLocationID = "Ubicación inválida"
	msgInvalidDateTime   = "Formato de fecha inválido, se espera RFC3339 o YYYY-MM-DD"
	msgLocationNotFound  = "Ubicación no encontrada"
)

type Handler struct {
	useCase  FindAvailableRoomsUseCase
	span     time.Duration
	location *time.Location
	logger   Logger
}

// NewHandler span - длина окна по умолчанию, когда end не передан
func NewHandler(useCase FindAvailableRoomsUseCase, span time.Duration, loc *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		span:     span,
		location: loc,
		logger:   logger,
	}
}

// Handle GET /api/v1/rooms/available?locationId&start&end
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	useCaseReq, err := ToUseCaseRequest(r, h.span, h.location)
	if err != nil {
		verr, _ := handlers.AsValidationError(err)
		h.logger.Warn("GET /rooms/available - Invalid parameters: %v", err)
		handlers.RespondValidationError(w, verr)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if verr, ok := handlers.AsValidationError(err); ok {
			h.logger.Warn("GET /rooms/available - Invalid window: %v", verr)
			handlers.RespondValidationError(w, verr)
			return
		}
		if errors.Is(err, findRooms.ErrLocationNotFound) {
			h.logger.Warn("GET /rooms/available - Location not found: location_id=%v", *useCaseReq.LocationID)
			handlers.RespondNotFound(w, msgLocationNotFound)
			return
		}
		h.logger.Error("GET /rooms/available - Failed to find rooms: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /rooms/available - Available rooms found: count=%d, start=%s, end=%s",
		result.Total, result.Start, result.End)
	handlers.RespondJSON(w, http.StatusOK, result)
}
