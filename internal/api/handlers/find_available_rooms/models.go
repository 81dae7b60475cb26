package find_available_rooms

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-HearingService/internal/api/handlers"
	"github.com/m04kA/SMC-HearingService/internal/domain"
	findRooms "github.com/m04kA/SMC-HearingService/internal/usecase/find_available_rooms"
)

// ToUseCaseRequest читает locationId, start, end из query
// Без end окно длится span от start
func ToUseCaseRequest(r *http.Request, span time.Duration, loc *time.Location) (*findRooms.Request, error) {
	verr := domain.NewValidationError()

	locationID, err := handlers.QueryInt64(r, "locationId")
	if err != nil {
		verr.Add("locationId", msgInvalidLocationID)
	}
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

	req := &findRooms.Request{LocationID: locationID}
	if start != nil {
		req.Start = *start
		req.End = start.Add(span)
	}
	if end != nil {
		req.End = *end
	}
	return req, nil
}
