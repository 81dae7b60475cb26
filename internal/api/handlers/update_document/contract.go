package update_document

import (
	"context"

	"github.com/m04kA/SMC-HearingService/internal/service/documents/models"
)

type DocumentService interface {
	Update(ctx context.Context, req *models.UpdateRequest) (*models.DocumentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
