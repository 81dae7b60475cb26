package list_current_hearings

import (
	"net/http"

	"github.com/m04kA/SMC-HearingService/internal/api/handlers"
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

// Handle GET /api/v1/hearing-requests/current
// Одобренные слушания, которые идут прямо сейчас
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListCurrent(r.Context())
	if err != nil {
		h.logger.Error("GET /hearing-requests/current - Failed to list current hearings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /hearing-requests/current - Current hearings retrieved: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
