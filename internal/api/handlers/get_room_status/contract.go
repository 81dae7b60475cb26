package get_room_status

import (
	"context"
	"time"

	getRoomStatus "github.com/m04kA/SMC-HearingService/internal/usecase/get_room_status"
)

type GetRoomStatusUseCase interface {
	Execute(ctx context.Context, req *getRoomStatus.Request) (*getRoomStatus.Response, error)
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
