package document

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HearingService/internal/domain"
	"github.com/m04kA/SMC-HearingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HearingService/pkg/pgerrors"
	"github.com/m04kA/SMC-HearingService/pkg/psqlbuilder"
)

const table = "documents"

var columns = []string{
	"id",
	"hearing_id",
	"title",
	"type",
	"content",
	"version",
	"status",
	"created_by",
	"last_modified_by",
	"history",
	"created_at",
	"updated_at",
}

// Repository репозиторий документов слушаний
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория документов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новый документ
func (r *Repository) Create(ctx context.Context, doc *domain.Document) (*domain.Document, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	history, err := encodeHistory(doc.History)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - %v", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"hearing_id",
			"title",
			"type",
			"content",
			"version",
			"status",
			"created_by",
			"last_modified_by",
			"history",
			"created_at",
			"updated_at",
		).
		Values(
			doc.HearingID,
			doc.Title,
			doc.Type,
			doc.Content,
			doc.Version,
			doc.Status,
			doc.CreatedBy,
			doc.LastModifiedBy,
			history,
			doc.CreatedAt,
			doc.UpdatedAt,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&doc.ID); err != nil {
		if pgerrors.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: hearing %d", ErrHearingNotFound, doc.HearingID)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return doc, nil
}

// GetByID получает документ по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Document, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	doc, err := scanDocument(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan document: %v", ErrScanRow, err)
	}

	return doc, nil
}

// ListByHearing документы заявки, последние измененные первыми
func (r *Repository) ListByHearing(ctx context.Context, hearingID int64) ([]*domain.Document, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"hearing_id": hearingID}).
		OrderBy("updated_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByHearing - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByHearing - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	docs := make([]*domain.Document, 0)
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByHearing - scan row: %v", ErrScanRow, err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByHearing - rows error: %v", ErrScanRow, err)
	}

	return docs, nil
}

// Save записывает изменяемые поля документа
// Запись проходит, только если сохраненный документ еще черновик
// Возвращает false, если документ уже финализирован
func (r *Repository) Save(ctx context.Context, doc *domain.Document) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	history, err := encodeHistory(doc.History)
	if err != nil {
		return false, fmt.Errorf("%w: Save - %v", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Update(table).
		Set("content", doc.Content).
		Set("version", doc.Version).
		Set("status", doc.Status).
		Set("last_modified_by", doc.LastModifiedBy).
		Set("history", squirrel.Expr("?::jsonb", history)).
		Set("updated_at", doc.UpdatedAt).
		Where(squirrel.Eq{"id": doc.ID, "status": domain.DocumentDraft}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: Save - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: Save - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: Save - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}

func encodeHistory(history []domain.Snapshot) (string, error) {
	if history == nil {
		history = []domain.Snapshot{}
	}
	b, err := json.Marshal(history)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDocument(row rowScanner) (*domain.Document, error) {
	var (
		doc     domain.Document
		history []byte
	)

	err := row.Scan(
		&doc.ID,
		&doc.HearingID,
		&doc.Title,
		&doc.Type,
		&doc.Content,
		&doc.Version,
		&doc.Status,
		&doc.CreatedBy,
		&doc.LastModifiedBy,
		&history,
		&doc.CreatedAt,
		&doc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(history, &doc.History); err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	if doc.History == nil {
		doc.History = []domain.Snapshot{}
	}

	return &doc, nil
}
