package create_hearing_request

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HearingService/internal/domain"
)

// scheduleMessages сообщения для нарушений правил расписания
var scheduleMessages = map[error]string{
	domain.ErrWeekend:              "No se pueden programar audiencias en fines de semana",
	domain.ErrHoliday:              "No se pueden programar audiencias en días festivos",
	domain.ErrOutsideBusinessHours: "Las audiencias solo se pueden programar entre las %d:00 y las %d:00",
	domain.ErrTooSoon:              "Las audiencias deben programarse a partir de mañana",
	domain.ErrTooFar:               "Las audiencias no pueden programarse con más de %d meses de anticipación",
}

// validateSchedule проверяет дату слушания по правилам расписания
func validateSchedule(policy domain.SchedulingPolicy, at, now time.Time, holidays []domain.Holiday) *domain.ValidationError {
	verr := domain.NewValidationError()

	err := policy.Check(at, now, holidays)
	if err == nil {
		return verr
	}

	for rule, msg := range scheduleMessages {
		if !errors.Is(err, rule) {
			continue
		}
		switch rule {
		case domain.ErrOutsideBusinessHours:
			msg = fmt.Sprintf(msg, policy.OpenHour, policy.CloseHour)
		case domain.ErrTooFar:
			msg = fmt.Sprintf(msg, policy.MaxAdvanceMonths)
		}
		verr.Add("hearingDateTime", msg)
		return verr
	}

	verr.Add("hearingDateTime", err.Error())
	return verr
}
