package find_available_rooms

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HearingService/internal/domain"
)

// RoomRepository интерфейс репозитория залов
type RoomRepository interface {
	ListActive(ctx context.Context, locationID *int64) ([]*domain.Room, error)
	GetLocation(ctx context.Context, id int64) (*domain.Location, error)
}

// HearingRepository интерфейс репозитория заявок
type HearingRepository interface {
	ListAssignments(ctx context.Context, roomIDs []int64, window domain.Window, duration time.Duration) ([]domain.Assignment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
