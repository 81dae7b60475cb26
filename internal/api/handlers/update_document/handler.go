package update_document

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HearingService/internal/api/handlers"
	"github.com/m04kA/SMC-HearingService/internal/api/middleware"
	"github.com/m04kA/SMC-HearingService/internal/service/documents"
)

const (
	msgUnauthorized       = "No autorizado"
	msgInvalidDocumentID  = "ID de documento inválido"
	msgInvalidRequestBody = "Cuerpo de la solicitud inválido"
	msgDocumentNotFound   = "Documento no encontrado"
	msgAccessDenied       = "Solo administradores y conciliadores pueden modificar documentos"
	msgImmutable          = "El documento está finalizado y no se puede modificar"
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

// Handle PUT /api/v1/documents/{id}
// Body: {content?, status?}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("PUT /documents/{id} - Invalid document ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDocumentID)
		return
	}

	var req UpdateDocumentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /documents/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), req.ToServiceRequest(principal, id))
	if err != nil {
		if verr, ok := handlers.AsValidationError(err); ok {
			handlers.RespondValidationError(w, verr)
			return
		}
		switch {
		case errors.Is(err, documents.ErrDocumentNotFound):
			h.logger.Warn("PUT /documents/{id} - Document not found: id=%d", id)
			handlers.RespondNotFound(w, msgDocumentNotFound)
		case errors.Is(err, documents.ErrAccessDenied):
			h.logger.Warn("PUT /documents/{id} - Access denied: id=%d, user_id=%d", id, principal.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, documents.ErrImmutable):
			h.logger.Warn("PUT /documents/{id} - Document is final: id=%d", id)
			handlers.RespondConflict(w, msgImmutable)
		default:
			h.logger.Error("PUT /documents/{id} - Failed to update document: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /documents/{id} - Document updated: id=%d, version=%d, status=%s, user_id=%d",
		id, result.Version, result.Status, principal.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
