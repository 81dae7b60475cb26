package create_hearing_request

import (
	"strings"

	"github.com/m04kA/SMC-HearingService/internal/api/handlers"
	"github.com/m04kA/SMC-HearingService/internal/domain"
	createHearing "github.com/m04kA/SMC-HearingService/internal/usecase/create_hearing_request"
)

// ParticipantRequest участник в форме заявки
type ParticipantRequest struct {
	Name       string `json:"name" validate:"required"`
	DocumentID string `json:"documentId" validate:"required"`
	EntityType string `json:"entityType" validate:"required,oneof=natural juridical"`
	Email      string `json:"email" validate:"required,email"`
	Role       string `json:"role" validate:"required,oneof=convener convened conciliator"`
}

// ClaimDetailsRequest разбивка суммы требования
type ClaimDetailsRequest struct {
	Damages     *float64 `json:"damages,omitempty" validate:"omitempty,gte=0"`
	Deductible  *float64 `json:"deductible,omitempty" validate:"omitempty,gte=0"`
	Subrogation *float64 `json:"subrogation,omitempty" validate:"omitempty,gte=0"`
}

// CreateHearingRequest HTTP request model
// Правила расписания для hearingDateTime проверяет use case
type CreateHearingRequest struct {
	Type              string               `json:"type" validate:"required,oneof=transit other"`
	HearingDateTime   string               `json:"hearingDateTime" validate:"required"` // RFC3339
	ClaimAmount       float64              `json:"claimAmount" validate:"gte=1,lte=999999999"`
	ClaimDetails      ClaimDetailsRequest  `json:"claimDetails"`
	VehicleCount      int                  `json:"vehicleCount" validate:"min=0,max=99"`
	Address           string               `json:"address" validate:"required"`
	Department        string               `json:"department" validate:"required"`
	City              string               `json:"city" validate:"required"`
	Description       string               `json:"description" validate:"required,min=100,max=1000"`
	AdditionalDetails *string              `json:"additionalDetails,omitempty" validate:"omitempty,max=500"`
	Participants      []ParticipantRequest `json:"participants" validate:"required,min=1,dive"`
}

// Normalize убирает пробелы по краям и приводит перечисления к нижнему регистру
// Вызывается до проверки тегов
func (r *CreateHearingRequest) Normalize() {
	r.Type = strings.ToLower(strings.TrimSpace(r.Type))
	r.HearingDateTime = strings.TrimSpace(r.HearingDateTime)
	r.Address = strings.TrimSpace(r.Address)
	r.Department = strings.TrimSpace(r.Department)
	r.City = strings.TrimSpace(r.City)
	r.Description = strings.TrimSpace(r.Description)
	if r.AdditionalDetails != nil {
		details := strings.TrimSpace(*r.AdditionalDetails)
		if details == "" {
			r.AdditionalDetails = nil
		} else {
			r.AdditionalDetails = &details
		}
	}
	for i := range r.Participants {
		p := &r.Participants[i]
		p.Name = strings.TrimSpace(p.Name)
		p.DocumentID = strings.TrimSpace(p.DocumentID)
		p.EntityType = strings.ToLower(strings.TrimSpace(p.EntityType))
		p.Email = strings.TrimSpace(p.Email)
		p.Role = strings.ToLower(strings.TrimSpace(p.Role))
	}
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateHearingRequest) ToUseCaseRequest(requestedBy int64) (*createHearing.Request, error) {
	at, err := handlers.ParseTime(r.HearingDateTime, nil)
	if err != nil {
		verr := domain.NewValidationError()
		verr.Add("hearingDateTime", msgInvalidDateTime)
		return nil, verr
	}

	participants := make([]domain.Participant, 0, len(r.Participants))
	for _, p := range r.Participants {
		participants = append(participants, domain.Participant{
			Name:       p.Name,
			DocumentID: p.DocumentID,
			EntityType: domain.EntityType(p.EntityType),
			Email:      p.Email,
			Role:       domain.ParticipantRole(p.Role),
		})
	}

	return &createHearing.Request{
		RequestedBy:     requestedBy,
		Type:            domain.HearingType(r.Type),
		HearingDateTime: at,
		ClaimAmount:     r.ClaimAmount,
		ClaimDetails: domain.ClaimDetails{
			Damages:     r.ClaimDetails.Damages,
			Deductible:  r.ClaimDetails.Deductible,
			Subrogation: r.ClaimDetails.Subrogation,
		},
		VehicleCount:      r.VehicleCount,
		Address:           r.Address,
		Department:        r.Department,
		City:              r.City,
		Description:       r.Description,
		AdditionalDetails: r.AdditionalDetails,
		Participants:      participants,
	}, nil
}
