package approve_hearing_request

import "github.com/m04kA/SMC-HearingService/internal/domain"

// validateRequest проверяет идентификаторы запроса
func validateRequest(req *Request) error {
	verr := domain.NewValidationError()

	if req.HearingID <= 0 {
		verr.Add("id", "Solicitud inválida")
	}
	if req.LocationID <= 0 {
		verr.Add("locationId", "Seleccione una ubicación")
	}
	if req.RoomID <= 0 {
		verr.Add("roomId", "Seleccione una sala")
	}

	return verr.OrNil()
}
