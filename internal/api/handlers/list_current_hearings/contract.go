package list_current_hearings

import (
	"context"

	"github.com/m04kA/SMC-HearingService/internal/service/hearings/models"
)

type HearingService interface {
	ListCurrent(ctx context.Context) (*models.HearingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
