package find_available_rooms

import (
	"time"

	"github.com/m04kA/SMC-HearingService/internal/domain"
)

// Request модель запроса свободных залов
type Request struct {
	LocationID *int64 // nil - все площадки
	Start      time.Time
	End        time.Time
}

// RoomResponse свободный зал
type RoomResponse struct {
	ID           int64    `json:"id"`
	Code         string   `json:"code"`
	Name         string   `json:"name"`
	LocationID   int64    `json:"locationId"`
	LocationName string   `json:"locationName"`
	Modality     string   `json:"modality"`
	Features     []string `json:"features"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Status       string   `json:"status"`
}

// Response список свободных залов
type Response struct {
	Start string          `json:"start"`
	End   string          `json:"end"`
	Rooms []*RoomResponse `json:"rooms"`
	Total int             `json:"total"`
}

func fromDomainRoom(r *domain.Room, status domain.RoomStatus) *RoomResponse {
	features := make([]string, 0, len(r.Features))
	for _, f := range r.Features {
		features = append(features, string(f))
	}

	return &RoomResponse{
		ID:           r.ID,
		Code:         r.Code(),
		Name:         r.Name,
		LocationID:   r.LocationID,
		LocationName: r.LocationName,
		Modality:     string(r.Modality),
		Features:     features,
		StartDate:    r.StartDate.Format(domain.DateTimeFormat),
		EndDate:      r.EndDate.Format(domain.DateTimeFormat),
		Status:       string(status),
	}
}
