package domain

import (
	"fmt"
	"time"
)

// HearingType тип слушания
type HearingType string

const (
	HearingTypeTransit HearingType = "transit"
	HearingTypeOther   HearingType = "other"
)

// HearingStatus статус заявки на слушание
type HearingStatus string

const (
	StatusPending   HearingStatus = "pending"
	StatusApproved  HearingStatus = "approved"
	StatusRejected  HearingStatus = "rejected"
	StatusCancelled HearingStatus = "cancelled"
)

// ParticipantRole роль участника слушания
type ParticipantRole string

const (
	RoleConvener    ParticipantRole = "convener"
	RoleConvened    ParticipantRole = "convened"
	RoleConciliator ParticipantRole = "conciliator"
)

// EntityType тип лица участника
type EntityType string

const (
	EntityNatural   EntityType = "natural"
	EntityJuridical EntityType = "juridical"
)

// Participant участник слушания (хранится внутри заявки)
type Participant struct {
	Name       string          `json:"name"`
	DocumentID string          `json:"documentId"`
	EntityType EntityType      `json:"entityType"`
	Email      string          `json:"email"`
	Role       ParticipantRole `json:"role"`
}

// ClaimDetails разбивка суммы требования
type ClaimDetails struct {
	Damages     *float64 `json:"damages,omitempty"`
	Deductible  *float64 `json:"deductible,omitempty"`
	Subrogation *float64 `json:"subrogation,omitempty"`
}

// Comment комментарий в ленте заявки, только добавляется
type Comment struct {
	Text      string    `json:"text"`
	CreatedBy int64     `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// HearingRequest заявка на проведение согласительного слушания
type HearingRequest struct {
	ID                int64
	CaseNumber        string
	Type              HearingType
	HearingDateTime   time.Time
	ClaimAmount       float64
	ClaimDetails      ClaimDetails
	VehicleCount      int
	Address           string
	Department        string
	City              string
	Description       string
	AdditionalDetails *string
	Participants      []Participant
	Status            HearingStatus
	AssignedRoomID    *int64
	RequestedBy       int64
	Comments          []Comment

	CreatedAt time.Time
	UpdatedAt time.Time
}

// transitions разрешенные переходы состояний
var transitions = map[HearingStatus][]HearingStatus{
	StatusPending:  {StatusApproved, StatusRejected, StatusCancelled},
	StatusApproved: {StatusCancelled},
}

// CanTransition проверяет, разрешен ли переход from -> to
func CanTransition(from, to HearingStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// CheckTransition возвращает ErrInvalidTransition для запрещенного перехода
func CheckTransition(from, to HearingStatus) error {
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}

// IsTerminal rejected и cancelled - конечные состояния
func (s HearingStatus) IsTerminal() bool {
	return s == StatusRejected || s == StatusCancelled
}

// Valid проверяет, что статус известен
func (s HearingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// Valid проверяет, что тип слушания известен
func (t HearingType) Valid() bool {
	return t == HearingTypeTransit || t == HearingTypeOther
}

// Window интервал, в течение которого слушание занимает зал
func (h *HearingRequest) Window(duration time.Duration) Window {
	return WindowFrom(h.HearingDateTime, duration)
}

// IsOwnedBy проверяет, что заявку подал пользователь userID
func (h *HearingRequest) IsOwnedBy(userID int64) bool {
	return h.RequestedBy == userID
}

// Conciliator возвращает первого участника с ролью conciliator
func (h *HearingRequest) Conciliator() (Participant, bool) {
	for _, p := range h.Participants {
		if p.Role == RoleConciliator {
			return p, true
		}
	}
	return Participant{}, false
}

// FormatCaseNumber формирует номер дела CASO-<seq>-<year>
func FormatCaseNumber(seq int64, year int) string {
	return fmt.Sprintf("%s-%d-%d", CaseNumberPrefix, seq, year)
}

// HearingFilter фильтр списка заявок
type HearingFilter struct {
	RequestedBy *int64         // nil - все заявки (только для администратора)
	Status      *HearingStatus // опционально
	Type        *HearingType   // опционально
	StartDate   *time.Time     // hearing_date_time >= StartDate
	EndDate     *time.Time     // hearing_date_time <= EndDate
}
