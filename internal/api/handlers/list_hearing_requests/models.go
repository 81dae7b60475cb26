package list_hearing_requests

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-HearingService/internal/api/handlers"
	"github.com/m04kA/SMC-HearingService/internal/domain"
	"github.com/m04kA/SMC-HearingService/internal/service/hearings/models"
)

// ToServiceRequest собирает фильтры из query параметров
// endDate в виде даты включает весь день
func ToServiceRequest(r *http.Request, principal domain.Principal, loc *time.Location) (*models.ListRequest, error) {
	start, err := handlers.QueryTime(r, "startDate", loc)
	if err != nil {
		return nil, err
	}
	end, err := handlers.QueryTime(r, "endDate", loc)
	if err != nil {
		return nil, err
	}
	if end != nil && isDateOnly(r.URL.Query().Get("endDate")) {
		endOfDay := end.AddDate(0, 0, 1).Add(-time.Nanosecond)
		end = &endOfDay
	}

	return &models.ListRequest{
		Principal: principal,
		Status:    handlers.QueryString(r, "status"),
		Type:      handlers.QueryString(r, "type"),
		StartDate: start,
		EndDate:   end,
	}, nil
}

func isDateOnly(raw string) bool {
	return len(raw) == len(domain.DateFormat)
}
