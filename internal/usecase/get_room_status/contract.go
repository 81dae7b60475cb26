package get_room_status

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HearingService/internal/domain"
)

// RoomRepository интерфейс репозитория залов
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
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
