package get_document

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

// Handle GET /api/v1/documents/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("GET /documents/{id} - Invalid document ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDocumentID)
		return
	}

	result, err := h.service.Get(r.Context(), principal, id)
	if err != nil {
		switch {
		case errors.Is(err, documents.ErrDocumentNotFound):
			handlers.RespondNotFound(w, msgDocumentNotFound)
		case errors.Is(err, documents.ErrAccessDenied):
			h.logger.Warn("GET /documents/{id} - Access denied: id=%d, user_id=%d", id, principal.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("GET /documents/{id} - Failed to get document: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
