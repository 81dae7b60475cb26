package create_hearing_request

import (
	"time"

	"github.com/m04kA/SMC-HearingService/internal/domain"
)

// Request модель запроса на создание заявки
type Request struct {
	RequestedBy       int64
	Type              domain.HearingType
	HearingDateTime   time.Time
	ClaimAmount       float64
	ClaimDetails      domain.ClaimDetails
	VehicleCount      int
	Address           string
	Department        string
	City              string
	Description       string
	AdditionalDetails *string
	Participants      []domain.Participant
}
