package get_document_history

import (
	"context"

	"github.com/m04kA/SMC-HearingService/internal/domain"
	"github.com/m04kA/SMC-HearingService/internal/service/documents/models"
)

type DocumentService interface {
	GetHistory(ctx context.Context, principal domain.Principal, id int64) (*models.HistoryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
