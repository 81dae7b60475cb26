package create_document

import (
	"github.com/m04kA/SMC-HearingService/internal/domain"
	"github.com/m04kA/SMC-HearingService/internal/service/documents/models"
)

// CreateDocumentRequest HTTP request model
type CreateDocumentRequest struct {
	HearingID int64  `json:"hearingId" validate:"required,gt=0"`
	Title     string `json:"title"`
	Type      string `json:"type"`
	Content   string `json:"content"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateDocumentRequest) ToServiceRequest(principal domain.Principal) *models.CreateRequest {
	return &models.CreateRequest{
		Principal: principal,
		HearingID: r.HearingID,
		Title:     r.Title,
		Type:      r.Type,
		Content:   r.Content,
	}
}
