package domain

import (
	"sort"
	"strings"
)

// ValidationError ошибка валидации входных данных с ошибками по полям
type ValidationError struct {
	FieldErrors map[string]string
}

// NewValidationError пустая ошибка валидации
func NewValidationError() *ValidationError {
	return &ValidationError{FieldErrors: make(map[string]string)}
}

// Add добавляет ошибку поля; первая ошибка поля сохраняется
func (e *ValidationError) Add(field, message string) {
	if e.FieldErrors == nil {
		e.FieldErrors = make(map[string]string)
	}
	if _, exists := e.FieldErrors[field]; exists {
		return
	}
	e.FieldErrors[field] = message
}

// HasErrors есть ли хотя бы одна ошибка
func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.FieldErrors) > 0
}

// OrNil возвращает nil, если ошибок нет
func (e *ValidationError) OrNil() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	if !e.HasErrors() {
		return "validation failed"
	}

	fields := make([]string, 0, len(e.FieldErrors))
	for f := range e.FieldErrors {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e.FieldErrors[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
