package approve_hearing_request

import "github.com/m04kA/SMC-HearingService/internal/domain"

// Request модель запроса на одобрение заявки
type Request struct {
	Principal  domain.Principal
	HearingID  int64
	LocationID int64
	RoomID     int64
}
