package models

import (
	"time"

	"github.com/m04kA/SMC-HearingService/internal/domain"
)

// Response модели

// ParticipantResponse участник слушания
type ParticipantResponse struct {
	Name       string `json:"name"`
	DocumentID string `json:"documentId"`
	EntityType string `json:"entityType"`
	Email      string `json:"email"`
	Role       string `json:"role"`
}

// ClaimDetailsResponse разбивка суммы требования
type ClaimDetailsResponse struct {
	Damages     *float64 `json:"damages,omitempty"`
	Deductible  *float64 `json:"deductible,omitempty"`
	Subrogation *float64 `json:"subrogation,omitempty"`
}

// CommentResponse комментарий заявки
type CommentResponse struct {
	Text      string `json:"text"`
	CreatedBy int64  `json:"createdBy"`
	CreatedAt string `json:"createdAt"`
}

// HearingResponse заявка на слушание
type HearingResponse struct {
	ID                int64                 `json:"id"`
	CaseNumber        string                `json:"caseNumber"`
	Type              string                `json:"type"`
	HearingDateTime   string                `json:"hearingDateTime"`
	HearingEndTime    string                `json:"hearingEndTime"`
	ClaimAmount       float64               `json:"claimAmount"`
	ClaimDetails      ClaimDetailsResponse  `json:"claimDetails"`
	VehicleCount      int                   `json:"vehicleCount"`
	Address           string                `json:"address"`
	Department        string                `json:"department"`
	City              string                `json:"city"`
	Description       string                `json:"description"`
	AdditionalDetails *string               `json:"additionalDetails,omitempty"`
	Participants      []ParticipantResponse `json:"participants"`
	Status            string                `json:"status"`
	AssignedRoomID    *int64                `json:"assignedRoomId,omitempty"`
	RequestedBy       int64                 `json:"requestedBy"`
	Comments          []CommentResponse     `json:"comments"`
	CreatedAt         string                `json:"createdAt"`
	UpdatedAt         string                `json:"updatedAt"`
}

// HearingListResponse список заявок
type HearingListResponse struct {
	Hearings []*HearingResponse `json:"hearings"`
	Total    int                `json:"total"`
}

// FromDomainHearing конвертирует доменную заявку в ответ
// duration - длительность слушания для расчета времени окончания
func FromDomainHearing(h *domain.HearingRequest, duration time.Duration) *HearingResponse {
	participants := make([]ParticipantResponse, 0, len(h.Participants))
	for _, p := range h.Participants {
		participants = append(participants, ParticipantResponse{
			Name:       p.Name,
			DocumentID: p.DocumentID,
			EntityType: string(p.EntityType),
			Email:      p.Email,
			Role:       string(p.Role),
		})
	}

	comments := make([]CommentResponse, 0, len(h.Comments))
	for _, c := range h.Comments {
		comments = append(comments, CommentResponse{
			Text:      c.Text,
			CreatedBy: c.CreatedBy,
			CreatedAt: c.CreatedAt.Format(domain.DateTimeFormat),
		})
	}

	return &HearingResponse{
		ID:              h.ID,
		CaseNumber:      h.CaseNumber,
		Type:            string(h.Type),
		HearingDateTime: h.HearingDateTime.Format(domain.DateTimeFormat),
		HearingEndTime:  h.Window(duration).End.Format(domain.DateTimeFormat),
		ClaimAmount:     h.ClaimAmount,
		ClaimDetails: ClaimDetailsResponse{
			Damages:     h.ClaimDetails.Damages,
			Deductible:  h.ClaimDetails.Deductible,
			Subrogation: h.ClaimDetails.Subrogation,
		},
		VehicleCount:      h.VehicleCount,
		Address:           h.Address,
		Department:        h.Department,
		City:              h.City,
		Description:       h.Description,
		AdditionalDetails: h.AdditionalDetails,
		Participants:      participants,
		Status:            string(h.Status),
		AssignedRoomID:    h.AssignedRoomID,
		RequestedBy:       h.RequestedBy,
		Comments:          comments,
		CreatedAt:         h.CreatedAt.Format(domain.DateTimeFormat),
		UpdatedAt:         h.UpdatedAt.Format(domain.DateTimeFormat),
	}
}

// FromDomainHearingList конвертирует список заявок
func FromDomainHearingList(hearings []*domain.HearingRequest, duration time.Duration) *HearingListResponse {
	resp := &HearingListResponse{
		Hearings: make([]*HearingResponse, 0, len(hearings)),
		Total:    len(hearings),
	}
	for _, h := range hearings {
		resp.Hearings = append(resp.Hearings, FromDomainHearing(h, duration))
	}
	return resp
}

// Request модели

// ListRequest параметры списка заявок
type ListRequest struct {
	Principal domain.Principal
	Status    *string
	Type      *string
	StartDate *time.Time
	EndDate   *time.Time
}

// TransitionRequest запрос на отклонение или отмену заявки
type TransitionRequest struct {
	Principal domain.Principal
	HearingID int64
	Comment   *string
}

// AddCommentRequest запрос на добавление комментария
type AddCommentRequest struct {
	Principal domain.Principal
	HearingID int64
	Text      string
}
