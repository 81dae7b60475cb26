package domain

import "time"

// Ограничения полей заявки
const (
	MinDescriptionLength       = 100
	MaxDescriptionLength       = 1000
	MaxAdditionalDetailsLength = 500
	MaxCommentLength           = 2000
	MinClaimAmount             = 1
	MaxClaimAmount             = 999999999
	MaxVehicleCount            = 99
	MaxDocumentTitleLength     = 200
)

// Правила расписания по умолчанию
const (
	DefaultOpenHour         = 9
	DefaultCloseHour        = 17
	DefaultMaxAdvanceMonths = 12
	DefaultHearingDuration  = 2 * time.Hour
)

// Форматы даты и времени
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = time.RFC3339
)

// CaseNumberPrefix префикс номера дела: CASO-<seq>-<year>
const CaseNumberPrefix = "CASO"
