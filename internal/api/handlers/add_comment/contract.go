package add_comment

import (
	"context"

	"github.com/m04kA/SMC-HearingService/internal/service/hearings/models"
)

type HearingService interface {
	AddComment(ctx context.Context, req *models.AddCommentRequest) (*models.HearingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
