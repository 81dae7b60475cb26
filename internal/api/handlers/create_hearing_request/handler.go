package create_hearing_request

import (
	"net/http"

	"github.com/m04kA/SMC-HearingService/internal/api/handlers"
	"github.com/m04kA/SMC-HearingService/internal/api/middleware"
)

const (
	msgUnauthorized       = "No autorizado"
	msgInvalidRequestBody = "Cuerpo de la solicitud inválido"
	msgInvalidDateTime    = "Formato de fecha inválido, se espera RFC3339"
)

type Handler struct {
	useCase   CreateHearingUseCase
	validator *handlers.Validator
	logger    Logger
}

func NewHandler(useCase CreateHearingUseCase, validator *handlers.Validator, logger Logger) *Handler {
	return &Handler{
		useCase:   useCase,
		validator: validator,
		logger:    logger,
	}
}

// Handle POST /api/v1/hearing-requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateHearingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /hearing-requests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	req.Normalize()
	if verr := h.validator.Struct(&req); verr != nil {
		h.logger.Warn("POST /hearing-requests - Validation failed: user_id=%d, %v", principal.UserID, verr)
		handlers.RespondValidationError(w, verr)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(principal.UserID)
	if err != nil {
		verr, _ := handlers.AsValidationError(err)
		h.logger.Warn("POST /hearing-requests - Failed to parse request: %v", err)
		handlers.RespondValidationError(w, verr)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if verr, ok := handlers.AsValidationError(err); ok {
			h.logger.Warn("POST /hearing-requests - Rejected: user_id=%d, %v", principal.UserID, verr)
			handlers.RespondValidationError(w, verr)
			return
		}
		h.logger.Error("POST /hearing-requests - Failed to create hearing request: user_id=%d, error=%v", principal.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /hearing-requests - Hearing request created: id=%d, case=%s, user_id=%d",
		result.ID, result.CaseNumber, principal.UserID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
