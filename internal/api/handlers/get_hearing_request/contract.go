package get_hearing_request

import (
	"context"

	"github.com/m04kA/SMC-HearingService/internal/domain"
	"github.com/m04kA/SMC-HearingService/internal/service/hearings/models"
)

type HearingService interface {
	GetByID(ctx context.Context, principal domain.Principal, id int64) (*models.HearingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
