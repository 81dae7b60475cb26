package approve_hearing_request

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HearingService/internal/domain"
)

// HearingRepository интерфейс репозитория заявок
type HearingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.HearingRequest, error)
	ListAssignments(ctx context.Context, roomIDs []int64, window domain.Window, duration time.Duration) ([]domain.Assignment, error)
	AssignRoom(ctx context.Context, id, roomID int64, window domain.Window, duration time.Duration) (bool, error)
}

// RoomRepository интерфейс репозитория залов
type RoomRepository interface {
	LockForAssignment(ctx context.Context, id int64) (*domain.Room, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TransitionRecorder счетчик переходов состояний
type TransitionRecorder interface {
	IncHearingTransition(transition, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
