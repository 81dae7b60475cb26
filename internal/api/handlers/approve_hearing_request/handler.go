package approve_hearing_request

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HearingService/internal/api/handlers"
	"github.com/m04kA/SMC-HearingService/internal/api/middleware"
	approveHearing "github.com/m04kA/SMC-HearingService/internal/usecase/approve_hearing_request"
)

const (
	msgUnauthorized       = "No autorizado"
	msgInvalidHearingID   = "ID de solicitud inválido"
	msgInvalidRequestBody = "Cuerpo de la solicitud inválido"
	msgAccessDenied       = "Solo un administrador puede aprobar solicitudes"
	msgHearingNotFound    = "Solicitud de audiencia no encontrada"
	msgRoomNotFound       = "Sala no encontrada"
	msgRoomNotInLocation  = "La sala no pertenece a la ubicación seleccionada"
	msgRoomUnavailable    = "La sala no está disponible para el horario de la audiencia"
	msgCannotApprove      = "Solo se pueden aprobar solicitudes pendientes"
	msgRoomConflict       = "La sala ya fue asignada a otra audiencia en ese horario, consulte de nuevo las salas disponibles"
)

type Handler struct {
	useCase   ApproveHearingUseCase
	validator *handlers.Validator
	logger    Logger
}

func NewHandler(useCase ApproveHearingUseCase, validator *handlers.Validator, logger Logger) *Handler {
	return &Handler{
		useCase:   useCase,
		validator: validator,
		logger:    logger,
	}
}

// Handle PATCH /api/v1/hearing-requests/{id}/approve
// Body: {locationId, roomId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("PATCH /hearing-requests/{id}/approve - Invalid hearing ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHearingID)
		return
	}

	var req ApproveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /hearing-requests/{id}/approve - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if verr := h.validator.Struct(&req); verr != nil {
		handlers.RespondValidationError(w, verr)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(principal, id))
	if err != nil {
		if verr, ok := handlers.AsValidationError(err); ok {
			handlers.RespondValidationError(w, verr)
			return
		}

		switch {
		case errors.Is(err, approveHearing.ErrAccessDenied):
			h.logger.Warn("PATCH /hearing-requests/{id}/approve - Access denied: user_id=%d", principal.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, approveHearing.ErrHearingNotFound):
			h.logger.Warn("PATCH /hearing-requests/{id}/approve - Hearing not found: id=%d", id)
			handlers.RespondNotFound(w, msgHearingNotFound)

		case errors.Is(err, approveHearing.ErrRoomNotFound):
			h.logger.Warn("PATCH /hearing-requests/{id}/approve - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, approveHearing.ErrRoomNotInLocation):
			h.logger.Warn("PATCH /hearing-requests/{id}/approve - Room not in location: room_id=%d, location_id=%d",
				req.RoomID, req.LocationID)
			handlers.RespondBadRequest(w, msgRoomNotInLocation)

		case errors.Is(err, approveHearing.ErrInvalidTransition):
			h.logger.Warn("PATCH /hearing-requests/{id}/approve - Invalid transition: id=%d, %v", id, err)
			handlers.RespondBadRequest(w, msgCannotApprove)

		case errors.Is(err, approveHearing.ErrRoomUnavailable):
			h.logger.Warn("PATCH /hearing-requests/{id}/approve - Room unavailable: id=%d, %v", id, err)
			handlers.RespondConflict(w, msgRoomUnavailable)

		case errors.Is(err, approveHearing.ErrConflict):
			h.logger.Warn("PATCH /hearing-requests/{id}/approve - Room conflict: id=%d, room_id=%d, %v", id, req.RoomID, err)
			handlers.RespondConflict(w, msgRoomConflict)

		default:
			h.logger.Error("PATCH /hearing-requests/{id}/approve - Failed to approve hearing: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /hearing-requests/{id}/approve - Hearing approved: id=%d, room_id=%d, user_id=%d",
		id, req.RoomID, principal.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
