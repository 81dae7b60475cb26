package domain

import "time"

// DocumentType тип документа слушания
type DocumentType string

const (
	DocumentRecord   DocumentType = "record"
	DocumentTemplate DocumentType = "template"
	DocumentGeneric  DocumentType = "document"
)

// Valid проверяет, что тип документа известен
func (t DocumentType) Valid() bool {
	switch t {
	case DocumentRecord, DocumentTemplate, DocumentGeneric:
		return true
	}
	return false
}

// DocumentStatus статус документа
type DocumentStatus string

const (
	DocumentDraft DocumentStatus = "draft"
	DocumentFinal DocumentStatus = "final"
)

// Snapshot неизменяемое состояние документа до правки
type Snapshot struct {
	Content    string    `json:"content"`
	ModifiedBy int64     `json:"modifiedBy"`
	ModifiedAt time.Time `json:"modifiedAt"`
	Version    int       `json:"version"`
}

// Document документ, привязанный к заявке, с историей версий
type Document struct {
	ID             int64
	HearingID      int64
	Title          string
	Type           DocumentType
	Content        string
	Version        int
	Status         DocumentStatus
	CreatedBy      int64
	LastModifiedBy int64
	History        []Snapshot // только добавляется, старые записи первыми
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewDocument черновик первой версии
func NewDocument(hearingID int64, title string, docType DocumentType, content string, creator int64, now time.Time) *Document {
	return &Document{
		HearingID:      hearingID,
		Title:          title,
		Type:           docType,
		Content:        content,
		Version:        1,
		Status:         DocumentDraft,
		CreatedBy:      creator,
		LastModifiedBy: creator,
		History:        []Snapshot{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// IsFinal документ финализирован
func (d *Document) IsFinal() bool {
	return d.Status == DocumentFinal
}

// Edit сохраняет текущее состояние в историю и заменяет содержимое
// Версия увеличивается ровно на 1, в историю добавляется ровно одна запись
func (d *Document) Edit(content string, editor int64, now time.Time) error {
	if d.IsFinal() {
		return ErrDocumentFinalized
	}

	history := make([]Snapshot, len(d.History), len(d.History)+1)
	copy(history, d.History)
	d.History = append(history, Snapshot{
		Content:    d.Content,
		ModifiedBy: d.LastModifiedBy,
		ModifiedAt: d.UpdatedAt,
		Version:    d.Version,
	})

	d.Content = content
	d.LastModifiedBy = editor
	d.Version++
	d.UpdatedAt = now

	return nil
}

// Finalize фиксирует документ; повторная финализация ничего не меняет
// Возвращает true, если статус изменился
func (d *Document) Finalize(editor int64, now time.Time) bool {
	if d.IsFinal() {
		return false
	}
	d.Status = DocumentFinal
	d.LastModifiedBy = editor
	d.UpdatedAt = now
	return true
}
