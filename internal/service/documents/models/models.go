package models

import (
	"github.com/m04kA/SMC-HearingService/internal/domain"
)

// Request модели

// CreateRequest запрос на создание документа
type CreateRequest struct {
	Principal domain.Principal
	HearingID int64
	Title     string
	Type      string
	Content   string
}

// UpdateRequest запрос на изменение документа: новое содержимое и/или финализация
type UpdateRequest struct {
	Principal  domain.Principal
	DocumentID int64
	Content    *string
	Status     *string
}

// Response модели

// SnapshotResponse версия документа из истории
type SnapshotResponse struct {
	Content    string `json:"content"`
	ModifiedBy int64  `json:"modifiedBy"`
	ModifiedAt string `json:"modifiedAt"`
	Version    int    `json:"version"`
}

// DocumentResponse документ слушания
type DocumentResponse struct {
	ID             int64  `json:"id"`
	HearingID      int64  `json:"hearingId"`
	Title          string `json:"title"`
	Type           string `json:"type"`
	Content        string `json:"content"`
	Version        int    `json:"version"`
	Status         string `json:"status"`
	CreatedBy      int64  `json:"createdBy"`
	LastModifiedBy int64  `json:"lastModifiedBy"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

// DocumentListResponse документы заявки
type DocumentListResponse struct {
	Documents []*DocumentResponse `json:"documents"`
	Total     int                 `json:"total"`
}

// HistoryResponse история версий, старые первыми
type HistoryResponse struct {
	DocumentID     int64              `json:"documentId"`
	CurrentVersion int                `json:"currentVersion"`
	History        []SnapshotResponse `json:"history"`
}

// FromDomainDocument конвертирует документ в ответ
func FromDomainDocument(d *domain.Document) *DocumentResponse {
	return &DocumentResponse{
		ID:             d.ID,
		HearingID:      d.HearingID,
		Title:          d.Title,
		Type:           string(d.Type),
		Content:        d.Content,
		Version:        d.Version,
		Status:         string(d.Status),
		CreatedBy:      d.CreatedBy,
		LastModifiedBy: d.LastModifiedBy,
		CreatedAt:      d.CreatedAt.Format(domain.DateTimeFormat),
		UpdatedAt:      d.UpdatedAt.Format(domain.DateTimeFormat),
	}
}

// FromDomainDocumentList конвертирует список документов
func FromDomainDocumentList(docs []*domain.Document) *DocumentListResponse {
	resp := &DocumentListResponse{
		Documents: make([]*DocumentResponse, 0, len(docs)),
		Total:     len(docs),
	}
	for _, d := range docs {
		resp.Documents = append(resp.Documents, FromDomainDocument(d))
	}
	return resp
}

// FromDomainHistory конвертирует историю документа
func FromDomainHistory(d *domain.Document) *HistoryResponse {
	history := make([]SnapshotResponse, 0, len(d.History))
	for _, s := range d.History {
		history = append(history, SnapshotResponse{
			Content:    s.Content,
			ModifiedBy: s.ModifiedBy,
			ModifiedAt: s.ModifiedAt.Format(domain.DateTimeFormat),
			Version:    s.Version,
		})
	}

	return &HistoryResponse{
		DocumentID:     d.ID,
		CurrentVersion: d.Version,
		History:        history,
	}
}
