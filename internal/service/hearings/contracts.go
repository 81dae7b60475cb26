package hearings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HearingService/internal/domain"
)

// HearingRepository интерфейс репозитория заявок
type HearingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.HearingRequest, error)
	List(ctx context.Context, filter domain.HearingFilter) ([]*domain.HearingRequest, error)
	ListInProgress(ctx context.Context, now time.Time, duration time.Duration) ([]*domain.HearingRequest, error)
	UpdateStatus(ctx context.Context, id int64, from []domain.HearingStatus, to domain.HearingStatus, comment *domain.Comment) (bool, error)
	AddComment(ctx context.Context, id int64, comment domain.Comment) error
}

// TransitionRecorder счетчик переходов состояний
type TransitionRecorder interface {
	IncHearingTransition(transition, result string)
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
