package reject_hearing_request

import (
	"strings"

	"github.com/m04kA/SMC-HearingService/internal/domain"
	"github.com/m04kA/SMC-HearingService/internal/service/hearings/models"
)

// RejectRequest HTTP request model, тело необязательно
type RejectRequest struct {
	Comment *string `json:"comment,omitempty" validate:"omitempty,max=2000"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
// Пустой комментарий не сохраняется
func (r *RejectRequest) ToServiceRequest(principal domain.Principal, hearingID int64) *models.TransitionRequest {
	var comment *string
	if r.Comment != nil && strings.TrimSpace(*r.Comment) != "" {
		text := strings.TrimSpace(*r.Comment)
		comment = &text
	}
	return &models.TransitionRequest{
		Principal: principal,
		HearingID: hearingID,
		Comment:   comment,
	}
}
