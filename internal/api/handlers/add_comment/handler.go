package add_comment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HearingService/internal/api/handlers"
	"github.com/m04kA/SMC-HearingService/internal/api/middleware"
	"github.com/m04kA/SMC-HearingService/internal/service/hearings"
	"github.com/m04kA/SMC-HearingService/internal/service/hearings/models"
)

const (
	msgUnauthorized       = "No autorizado"
	msgInvalidHearingID   = "ID de solicitud inválido"
	msgInvalidRequestBody = "Cuerpo de la solicitud inválido"
	msgHearingNotFound    = "Solicitud de audiencia no encontrada"
	msgAccessDenied       = "No tiene permiso para comentar esta solicitud"
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

// Handle POST /api/v1/hearing-requests/{id}/comments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("POST /hearing-requests/{id}/comments - Invalid hearing ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHearingID)
		return
	}

	var req AddCommentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /hearing-requests/{id}/comments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddComment(r.Context(), &models.AddCommentRequest{
		Principal: principal,
		HearingID: id,
		Text:      req.Text,
	})
	if err != nil {
		if verr, ok := handlers.AsValidationError(err); ok {
			handlers.RespondValidationError(w, verr)
			return
		}
		switch {
		case errors.Is(err, hearings.ErrHearingNotFound):
			h.logger.Warn("POST /hearing-requests/{id}/comments - Hearing not found: id=%d", id)
			handlers.RespondNotFound(w, msgHearingNotFound)
		case errors.Is(err, hearings.ErrAccessDenied):
			h.logger.Warn("POST /hearing-requests/{id}/comments - Access denied: id=%d, user_id=%d", id, principal.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("POST /hearing-requests/{id}/comments - Failed to add comment: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /hearing-requests/{id}/comments - Comment added: id=%d, user_id=%d", id, principal.UserID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
