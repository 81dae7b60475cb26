package reject_hearing_request

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HearingService/internal/api/handlers"
	"github.com/m04kA/SMC-HearingService/internal/api/middleware"
	"github.com/m04kA/SMC-HearingService/internal/service/hearings"
)

const (
	msgUnauthorized       = "No autorizado"
	msgInvalidHearingID   = "ID de solicitud inválido"
	msgInvalidRequestBody = "Cuerpo de la solicitud inválido"
	msgHearingNotFound    = "Solicitud de audiencia no encontrada"
	msgAccessDenied       = "Solo un administrador puede rechazar solicitudes"
	msgCannotReject       = "Solo se pueden rechazar solicitudes pendientes"
)

type Handler struct {
	service   HearingService
	validator *handlers.Validator
	logger    Logger
}

func NewHandler(service HearingService, validator *handlers.Validator, logger Logger) *Handler {
	return &Handler{
		service:   service,
		validator: validator,
		logger:    logger,
	}
}

// Handle PATCH /api/v1/hearing-requests/{id}/reject
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("PATCH /hearing-requests/{id}/reject - Invalid hearing ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHearingID)
		return
	}

	var req RejectRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /hearing-requests/{id}/reject - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if verr := h.validator.Struct(&req); verr != nil {
		handlers.RespondValidationError(w, verr)
		return
	}

	result, err := h.service.Reject(r.Context(), req.ToServiceRequest(principal, id))
	if err != nil {
		switch {
		case errors.Is(err, hearings.ErrAccessDenied):
			h.logger.Warn("PATCH /hearing-requests/{id}/reject - Access denied: user_id=%d", principal.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, hearings.ErrHearingNotFound):
			h.logger.Warn("PATCH /hearing-requests/{id}/reject - Hearing not found: id=%d", id)
			handlers.RespondNotFound(w, msgHearingNotFound)
		case errors.Is(err, hearings.ErrInvalidTransition):
			h.logger.Warn("PATCH /hearing-requests/{id}/reject - Invalid transition: id=%d, %v", id, err)
			handlers.RespondBadRequest(w, msgCannotReject)
		default:
			h.logger.Error("PATCH /hearing-requests/{id}/reject - Failed to reject hearing: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /hearing-requests/{id}/reject - Hearing rejected: id=%d, user_id=%d", id, principal.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
