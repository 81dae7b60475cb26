package list_hearing_documents

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HearingService/internal/api/handlers"
	"github.com/m04kA/SMC-HearingService/internal/api/middleware"
	"github.com/m04kA/SMC-HearingService/internal/service/documents"
)

const (
	msgUnauthorized     = "No autorizado"
	msgInvalidHearingID = "ID de solicitud inválido"
	msgHearingNotFound  = "Solicitud de audiencia no encontrada"
	msgAccessDenied     = "No tiene permiso para ver los documentos de esta solicitud"
)

type Handler struct {
	service DocumentService
	logger  Logger
}

func NewHandler(service DocumentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/hearing-requests/{id}/documents
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	hearingID, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("GET /hearing-requests/{id}/documents - Invalid hearing ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHearingID)
		return
	}

	result, err := h.service.ListByHearing(r.Context(), principal, hearingID)
	if err != nil {
		switch {
		case errors.Is(err, documents.ErrHearingNotFound):
			handlers.RespondNotFound(w, msgHearingNotFound)
		case errors.Is(err, documents.ErrAccessDenied):
			h.logger.Warn("GET /hearing-requests/{id}/documents - Access denied: hearing_id=%d, user_id=%d",
				hearingID, principal.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("GET /hearing-requests/{id}/documents - Failed to list documents: hearing_id=%d, error=%v",
				hearingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
