package documents

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HearingService/internal/domain"
)

// DocumentRepository интерфейс репозитория документов
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) (*domain.Document, error)
	GetByID(ctx context.Context, id int64) (*domain.Document, error)
	ListByHearing(ctx context.Context, hearingID int64) ([]*domain.Document, error)
	Save(ctx context.Context, doc *domain.Document) (bool, error)
}

// HearingRepository интерфейс репозитория заявок
type HearingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.HearingRequest, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
