package find_available_rooms

import (
	"github.com/m04kA/SMC-HearingService/internal/domain"
)

// validateRequest проверяет окно запроса
func validateRequest(req *Request) (domain.Window, error) {
	verr := domain.NewValidationError()

	if req.Start.IsZero() {
		verr.Add("start", "La fecha de inicio es requerida")
	}
	if req.End.IsZero() {
		verr.Add("end", "La fecha de fin es requerida")
	}
	if req.LocationID != nil && *req.LocationID <= 0 {
		verr.Add("locationId", "Ubicación inválida")
	}
	if verr.HasErrors() {
		return domain.Window{}, verr
	}

	window, err := domain.NewWindow(req.Start, req.End)
	if err != nil {
		verr.Add("end", "La fecha de fin debe ser posterior a la de inicio")
		return domain.Window{}, verr
	}

	return window, nil
}
