package create_hearing_request

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HearingService/internal/domain"
)

// HearingRepository интерфейс репозитория заявок
type HearingRepository interface {
	NextCaseSequence(ctx context.Context) (int64, error)
	Create(ctx context.Context, h *domain.HearingRequest) (*domain.HearingRequest, error)
}

// HolidayRepository интерфейс источника праздников
type HolidayRepository interface {
	ListForYear(ctx context.Context, year int) ([]domain.Holiday, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
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
