package domain

import "errors"

var (
	// ErrInvalidTransition переход состояния заявки не разрешен из текущего статуса
	ErrInvalidTransition = errors.New("domain: invalid status transition")

	// ErrDocumentFinalized документ финализирован, содержимое и история неизменяемы
	ErrDocumentFinalized = errors.New("domain: document is finalized")
)
