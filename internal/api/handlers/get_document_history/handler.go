package get_document_history

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HearingService/internal/api/handlers"
	"github.com/m04kA/SMC-HearingService/internal/api/middleware"
	"github.com/m04kA/SMC-HearingService/internal/service/documents"
)

const (
	msgUnauthorized      = "No autorizado"
	msgInvalidDocumentID = "ID de documento inválido"
	msgDocumentNotFound  = "Documento no encontrado"
	msgAccessDenied      = "No tiene permiso para ver este documento"
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

// Handle GET /api/v1/documents/{id}/history
// Версии от старых к новым
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("GET /documents/{id}/history - Invalid document ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDocumentID)
		return
	}

	result, err := h.service.GetHistory(r.Context(), principal, id)
	if err != nil {
		switch {
		case errors.Is(err, documents.ErrDocumentNotFound):
			handlers.RespondNotFound(w, msgDocumentNotFound)
		case errors.Is(err, documents.ErrAccessDenied):
			h.logger.Warn("GET /documents/{id}/history - Access denied: id=%d, user_id=%d", id, principal.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("GET /documents/{id}/history - Failed to get history: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /documents/{id}/history - History retrieved: id=%d, versions=%d", id, len(result.History))
	handlers.RespondJSON(w, http.StatusOK, result)
}
