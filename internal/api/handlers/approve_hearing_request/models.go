package approve_hearing_request

import (
	"github.com/m04kA/SMC-HearingService/internal/domain"
	approveHearing "github.com/m04kA/SMC-HearingService/internal/usecase/approve_hearing_request"
)

// ApproveRequest HTTP request model
type ApproveRequest struct {
	LocationID int64 `json:"locationId" validate:"required,gt=0"`
	RoomID     int64 `json:"roomId" validate:"required,gt=0"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ApproveRequest) ToUseCaseRequest(principal domain.Principal, hearingID int64) *approveHearing.Request {
	return &approveHearing.Request{
		Principal:  principal,
		HearingID:  hearingID,
		LocationID: r.LocationID,
		RoomID:     r.RoomID,
	}
}
