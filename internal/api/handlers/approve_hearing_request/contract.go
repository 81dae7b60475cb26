package approve_hearing_request

import (
	"context"

	"github.com/m04kA/SMC-HearingService/internal/service/hearings/models"
	approveHearing "github.com/m04kA/SMC-HearingService/internal/usecase/approve_hearing_request"
)

type ApproveHearingUseCase interface {
	Execute(ctx context.Context, req *approveHearing.Request) (*models.HearingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
