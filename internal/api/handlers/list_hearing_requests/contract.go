package list_hearing_requests

import (
	"context"

	"github.com/m04kA/SMC-HearingService/internal/service/hearings/models"
)

type HearingService interface {
	List(ctx context.Context, req *models.ListRequest) (*models.HearingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
