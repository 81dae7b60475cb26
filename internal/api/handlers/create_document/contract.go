package create_document

import (
	"context"

	"github.com/m04kA/SMC-HearingService/internal/service/documents/models"
)

type DocumentService interface {
	Create(ctx context.Context, req *models.CreateRequest) (*models.DocumentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
