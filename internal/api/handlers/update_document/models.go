package update_document

import (
	"github.com/m04kA/SMC-HearingService/internal/domain"
	"github.com/m04kA/SMC-HearingService/internal/service/documents/models"
)

// UpdateDocumentRequest HTTP request model
// Оба поля необязательны: content - новая версия, status=final - финализация
type UpdateDocumentRequest struct {
	Content *string `json:"content,omitempty"`
	Status  *string `json:"status,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateDocumentRequest) ToServiceRequest(principal domain.Principal, documentID int64) *models.UpdateRequest {
	return &models.UpdateRequest{
		Principal:  principal,
		DocumentID: documentID,
		Content:    r.Content,
		Status:     r.Status,
	}
}
