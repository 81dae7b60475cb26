package get_hearing_request

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HearingService/internal/api/handlers"
	"github.com/m04kA/SMC-HearingService/internal/api/middleware"
	"github.com/m04kA/SMC-HearingService/internal/service/hearings"
)

const (
	msgUnauthorized     = "No autorizado"
	msgInvalidHearingID = "ID de solicitud inválido"
	msgHearingNotFound  = "Solicitud de audiencia no encontrada"
	msgAccessDenied     = "No tiene permiso para ver esta solicitud"
)

type Handler struct {
	service HearingService
	logger  Logger
}

func NewHandler(service HearingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/hearing-requests/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("GET /hearing-requests/{id} - Invalid hearing ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHearingID)
		return
	}

	result, err := h.service.GetByID(r.Context(), principal, id)
	if err != nil {
		switch {
		case errors.Is(err, hearings.ErrHearingNotFound):
			h.logger.Warn("GET /hearing-requests/{id} - Hearing not found: id=%d", id)
			handlers.RespondNotFound(w, msgHearingNotFound)
		case errors.Is(err, hearings.ErrAccessDenied):
			h.logger.Warn("GET /hearing-requests/{id} - Access denied: id=%d, user_id=%d", id, principal.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("GET /hearing-requests/{id} - Failed to get hearing: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /hearing-requests/{id} - Hearing retrieved: id=%d, user_id=%d", id, principal.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
