package list_holidays

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-HearingService/internal/api/handlers"
)

const (
	msgInvalidYear = "Año inválido"

	minYear = 1900
	maxYear = 2200
)

type Handler struct {
	source       HolidaySource
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

func NewHandler(source HolidaySource, loc *time.Location, logger Logger) *Handler {
	return &Handler{
		source:       source,
		location:     loc,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Handle GET /api/v1/holidays?year
// Без year - текущий год в часовом поясе расписания
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	year := h.timeProvider.Now().In(h.location).Year()

	raw, err := handlers.QueryInt64(r, "year")
	if err != nil || (raw != nil && (*raw < minYear || *raw > maxYear)) {
		h.logger.Warn("GET /holidays - Invalid year: %q", r.URL.Query().Get("year"))
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}
	if raw != nil {
		year = int(*raw)
	}

	holidays, err := h.source.ListForYear(r.Context(), year)
	if err != nil {
		h.logger.Error("GET /holidays - Failed to list holidays: year=%d, error=%v", year, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainHolidays(year, holidays))
}
