package create_hearing_request

import (
	"context"

	"github.com/m04kA/SMC-HearingService/internal/service/hearings/models"
	createHearing "github.com/m04kA/SMC-HearingService/internal/usecase/create_hearing_request"
)

type CreateHearingUseCase interface {
	Execute(ctx context.Context, req *createHearing.Request) (*models.HearingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
