package get_room_status

import "time"

// Request модель запроса статуса зала
type Request struct {
	RoomID int64
	Start  time.Time
	End    time.Time
}

// Response вычисленный статус зала на интервал
type Response struct {
	RoomID       int64  `json:"roomId"`
	Name         string `json:"name"`
	LocationID   int64  `json:"locationId"`
	LocationName string `json:"locationName"`
	Start        string `json:"start"`
	End          string `json:"end"`
	Status       string `json:"status"`               // available, occupied, maintenance
	Active       bool   `json:"active"`               // зал активен и его период работы покрывает интервал
	OccupiedBy   *int64 `json:"occupiedBy,omitempty"` // ID слушания, занимающего зал
}
