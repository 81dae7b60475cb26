package cancel_hearing_request

import (
	"context"

	"github.com/m04kA/SMC-HearingService/internal/service/hearings/models"
)

type HearingService interface {
	Cancel(ctx context.Context, req *models.TransitionRequest) (*models.HearingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
