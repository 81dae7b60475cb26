package list_hearing_documents

import (
	"context"

	"github.com/m04kA/SMC-HearingService/internal/domain"
	"github.com/m04kA/SMC-HearingService/internal/service/documents/models"
)

type DocumentService interface {
	ListByHearing(ctx context.Context, principal domain.Principal, hearingID int64) (*models.DocumentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
