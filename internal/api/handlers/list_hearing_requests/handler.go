package list_hearing_requests

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-HearingService/internal/api/handlers"
	"github.com/m04kA/SMC-HearingService/internal/api/middleware"
	"github.com/m04kA/SMC-HearingService/internal/service/hearings"
)

const (
	msgUnauthorized  = "No autorizado"
	msgInvalidParams = "Parámetros de consulta inválidos"
)

type Handler struct {
	service  HearingService
	location *time.Location
	logger   Logger
}

// NewHandler loc - часовой пояс для дат без времени в фильтрах
func NewHandler(service HearingService, loc *time.Location, logger Logger) *Handler {
	return &Handler{
		service:  service,
		location: loc,
		logger:   logger,
	}
}

// Handle GET /api/v1/hearing-requests?status&type&startDate&endDate
// Обычный пользователь видит только свои заявки
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	serviceReq, err := ToServiceRequest(r, principal, h.location)
	if err != nil {
		h.logger.Warn("GET /hearing-requests - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, hearings.ErrInvalidInput) {
			h.logger.Warn("GET /hearing-requests - Invalid parameters: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		h.logger.Error("GET /hearing-requests - Failed to list hearing requests: user_id=%d, error=%v", principal.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /hearing-requests - Hearing requests retrieved: user_id=%d, count=%d", principal.UserID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
