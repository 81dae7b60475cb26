package list_holidays

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-HearingService/internal/domain"
)

// HolidayResponse праздник, спроецированный на запрошенный год
type HolidayResponse struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Recurring   bool   `json:"recurring"`
}

// HolidayListResponse праздники года по возрастанию даты
type HolidayListResponse struct {
	Year     int                `json:"year"`
	Holidays []*HolidayResponse `json:"holidays"`
	Total    int                `json:"total"`
}

// FromDomainHolidays ежегодные праздники получают дату в году year
func FromDomainHolidays(year int, holidays []domain.Holiday) *HolidayListResponse {
	type dated struct {
		at time.Time
		h  domain.Holiday
	}

	items := make([]dated, 0, len(holidays))
	for _, h := range holidays {
		at := h.Date
		if h.Recurring {
			at = time.Date(year, h.Date.Month(), h.Date.Day(), 0, 0, 0, 0, time.UTC)
		}
		items = append(items, dated{at: at, h: h})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].at.Before(items[j].at) })

	resp := &HolidayListResponse{
		Year:     year,
		Holidays: make([]*HolidayResponse, 0, len(items)),
		Total:    len(items),
	}
	for _, it := range items {
		resp.Holidays = append(resp.Holidays, &HolidayResponse{
			Date:        it.at.Format(domain.DateFormat),
			Description: it.h.Description,
			Recurring:   it.h.Recurring,
		})
	}
	return resp
}
