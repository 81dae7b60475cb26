package get_room_status

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-HearingService/internal/api/handlers"
	"github.com/m04kA/SMC-HearingService/internal/domain"
	getRoomStatus "github.com/m04kA/SMC-HearingService/internal/usecase/get_room_status"
)

// ToUseCaseRequest без start берется текущий момент, без end - start+span
func ToUseCaseRequest(r *http.Request, roomID int64, now time.Time, span time.Duration, loc *time.Location) (*getRoomStatus.Request, error) {
	verr := domain.NewValidationError()

	start, err := handlers.QueryTime(r, "start", loc)
	if err != nil {
		verr.Add("start", msgInvalidDateTime)
	}
	end, err := handlers.QueryTime(r, "end", loc)
	if err != nil {
		verr.Add("end", msgInvalidDateTime)
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	req := &getRoomStatus.Request{RoomID: roomID, Start: now}
	if start != nil {
		req.Start = *start
	}
	req.End = req.Start.Add(span)
	if end != nil {
		req.End = *end
	}
	return req, nil
}
