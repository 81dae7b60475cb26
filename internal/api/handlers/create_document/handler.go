package create_document

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HearingService/internal/api/handlers"
	"github.com/m04kA/SMC-HearingService/internal/api/middleware"
	"github.com/m04kA/SMC-HearingService/internal/service/documents"
)

const (
	msgUnauthorized       = "No autorizado"
	msgInvalidRequestBody = "Cuerpo de la solicitud inválido"
	msgAccessDenied       = "Solo administradores y conciliadores pueden crear documentos"
	msgHearingNotFound    = "Solicitud de audiencia no encontrada"
	msgHearingNotApproved = "Solo se pueden crear documentos para audiencias aprobadas"
)

type Handler struct {
	service   DocumentService
	validator *handlers.Validator
	logger    Logger
}

func NewHandler(service DocumentService, validator *handlers.Validator, logger Logger) *Handler {
	return &Handler{
		service:   service,
		validator: validator,
		logger:    logger,
	}
}

// Handle POST /api/v1/documents
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateDocumentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /documents - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if verr := h.validator.Struct(&req); verr != nil {
		handlers.RespondValidationError(w, verr)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest(principal))
	if err != nil {
		if verr, ok := handlers.AsValidationError(err); ok {
			handlers.RespondValidationError(w, verr)
			return
		}
		switch {
		case errors.Is(err, documents.ErrAccessDenied):
			h.logger.Warn("POST /documents - Access denied: user_id=%d", principal.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, documents.ErrHearingNotFound):
			h.logger.Warn("POST /documents - Hearing not found: hearing_id=%d", req.HearingID)
			handlers.RespondNotFound(w, msgHearingNotFound)
		case errors.Is(err, documents.ErrHearingNotApproved):
			h.logger.Warn("POST /documents - Hearing not approved: hearing_id=%d", req.HearingID)
			handlers.RespondConflict(w, msgHearingNotApproved)
		default:
			h.logger.Error("POST /documents - Failed to create document: hearing_id=%d, error=%v", req.HearingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /documents - Document created: id=%d, hearing_id=%d, user_id=%d",
		result.ID, result.HearingID, principal.UserID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
