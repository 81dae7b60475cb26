package list_holidays

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HearingService/internal/domain"
)

type HolidaySource interface {
	ListForYear(ctx context.Context, year int) ([]domain.Holiday, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
