package hearing

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HearingService/internal/domain"
	"github.com/m04kA/SMC-HearingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HearingService/pkg/pgerrors"
	"github.com/m04kA/SMC-HearingService/pkg/psqlbuilder"
)

const table = "hearing_requests"

var columns = []string{
	"id",
	"case_number",
	"type",
	"hearing_date_time",
	"claim_amount",
	"claim_details",
	"vehicle_count",
	"address",
	"department",
	"city",
	"description",
	"additional_details",
	"participants",
	"status",
	"assigned_room_id",
	"requested_by",
	"comments",
	"created_at",
	"updated_at",
}

// overlapCondition занятые залом одобренные слушания, пересекающиеся с окном
// Параметры: room_id, status, exclude id, window end, window start - duration
const overlapCondition = `NOT EXISTS (
	SELECT 1 FROM hearing_requests h
	WHERE h.assigned_room_id = ?
	  AND h.status = ?
	  AND h.id <> ?
	  AND h.hearing_date_time < ?
	  AND h.hearing_date_time > ?
)`

// Repository репозиторий заявок на слушания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// NextCaseSequence возвращает следующий номер из последовательности номеров дел
func (r *Repository) NextCaseSequence(ctx context.Context) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var seq int64
	if err := executor.QueryRowContext(ctx, "SELECT nextval('hearing_case_seq')").Scan(&seq); err != nil {
		return 0, fmt.Errorf("%w: NextCaseSequence - nextval: %v", ErrExecQuery, err)
	}

	return seq, nil
}

// Create сохраняет новую заявку
func (r *Repository) Create(ctx context.Context, h *domain.HearingRequest) (*domain.HearingRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	claimDetails, err := json.Marshal(h.ClaimDetails)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - claim_details: %v", ErrEncode, err)
	}
	participants, err := json.Marshal(h.Participants)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - participants: %v", ErrEncode, err)
	}
	comments := h.Comments
	if comments == nil {
		comments = []domain.Comment{}
	}
	commentsJSON, err := json.Marshal(comments)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - comments: %v", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"case_number",
			"type",
			"hearing_date_time",
			"claim_amount",
			"claim_details",
			"vehicle_count",
			"address",
			"department",
			"city",
			"description",
			"additional_details",
			"participants",
			"status",
			"requested_by",
			"comments",
		).
		Values(
			h.CaseNumber,
			h.Type,
			h.HearingDateTime,
			h.ClaimAmount,
			string(claimDetails),
			h.VehicleCount,
			h.Address,
			h.Department,
			h.City,
			h.Description,
			h.AdditionalDetails,
			string(participants),
			h.Status,
			h.RequestedBy,
			string(commentsJSON),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		if pgerrors.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", ErrCaseNumberTaken, h.CaseNumber)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	h.Comments = comments

	return h, nil
}

// GetByID получает заявку по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.HearingRequest, error) {
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

	h, err := scanHearing(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHearingNotFound
	}
	if pgerrors.IsSerializationFailure(err) {
		return nil, fmt.Errorf("%w: GetByID - hearing %d: %v", ErrSerialization, id, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan hearing: %v", ErrScanRow, err)
	}

	return h, nil
}

// List возвращает заявки по фильтру, отсортированные по времени слушания
func (r *Repository) List(ctx context.Context, filter domain.HearingFilter) ([]*domain.HearingRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).From(table)

	if filter.RequestedBy != nil {
		builder = builder.Where(squirrel.Eq{"requested_by": *filter.RequestedBy})
	}
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.Type != nil {
		builder = builder.Where(squirrel.Eq{"type": *filter.Type})
	}
	if filter.StartDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"hearing_date_time": *filter.StartDate})
	}
	if filter.EndDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"hearing_date_time": *filter.EndDate})
	}

	query, args, err := builder.OrderBy("hearing_date_time ASC", "id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanHearings(rows)
}

// ListInProgress одобренные слушания, идущие в момент now
func (r *Repository) ListInProgress(ctx context.Context, now time.Time, duration time.Duration) ([]*domain.HearingRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"status": domain.StatusApproved}).
		Where(squirrel.LtOrEq{"hearing_date_time": now}).
		Where(squirrel.Gt{"hearing_date_time": now.Add(-duration)}).
		OrderBy("hearing_date_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListInProgress - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListInProgress - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanHearings(rows)
}

// ListAssignments одобренные слушания в залах roomIDs, чьи окна пересекаются с window
// Пустой roomIDs - все залы
func (r *Repository) ListAssignments(ctx context.Context, roomIDs []int64, window domain.Window, duration time.Duration) ([]domain.Assignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select("id", "assigned_room_id", "hearing_date_time").
		From(table).
		Where(squirrel.Eq{"status": domain.StatusApproved}).
		Where(squirrel.NotEq{"assigned_room_id": nil}).
		Where(squirrel.Lt{"hearing_date_time": window.End}).
		Where(squirrel.Gt{"hearing_date_time": window.Start.Add(-duration)})
	if len(roomIDs) > 0 {
		builder = builder.Where(squirrel.Eq{"assigned_room_id": roomIDs})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAssignments - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		if pgerrors.IsSerializationFailure(err) {
			return nil, fmt.Errorf("%w: ListAssignments: %v", ErrSerialization, err)
		}
		return nil, fmt.Errorf("%w: ListAssignments - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	assignments := make([]domain.Assignment, 0)
	for rows.Next() {
		var (
			a     domain.Assignment
			start time.Time
		)
		if err := rows.Scan(&a.HearingID, &a.RoomID, &start); err != nil {
			return nil, fmt.Errorf("%w: ListAssignments - scan row: %v", ErrScanRow, err)
		}
		a.Window = domain.WindowFrom(start, duration)
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAssignments - rows error: %v", ErrScanRow, err)
	}

	return assignments, nil
}

// AssignRoom одобряет заявку и привязывает зал одним условным UPDATE
// Строка меняется, только если заявка в статусе pending и зал свободен на окно
// window - окно самой заявки, duration - длительность любого слушания
// Возвращает false, если условие не выполнилось
func (r *Repository) AssignRoom(ctx context.Context, id, roomID int64, window domain.Window, duration time.Duration) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", domain.StatusApproved).
		Set("assigned_room_id", roomID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.StatusPending}).
		Where(overlapCondition, roomID, domain.StatusApproved, id, window.End, window.Start.Add(-duration)).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: AssignRoom - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if pgerrors.IsSerializationFailure(err) {
			return false, fmt.Errorf("%w: AssignRoom - hearing %d room %d: %v", ErrSerialization, id, roomID, err)
		}
		return false, fmt.Errorf("%w: AssignRoom - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: AssignRoom - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}

// UpdateStatus переводит заявку в статус to, только если текущий статус входит в from
// При переходе в cancelled привязка зала снимается в том же UPDATE
// Непустой comment добавляется в ленту комментариев
// Возвращает false, если условие по статусу не выполнилось
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from []domain.HearingStatus, to domain.HearingStatus, comment *domain.Comment) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Update(table).
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": from})

	if to == domain.StatusCancelled || to == domain.StatusRejected {
		builder = builder.Set("assigned_room_id", squirrel.Expr("NULL"))
	}

	if comment != nil {
		appended, err := json.Marshal([]domain.Comment{*comment})
		if err != nil {
			return false, fmt.Errorf("%w: UpdateStatus - comment: %v", ErrEncode, err)
		}
		builder = builder.Set("comments", squirrel.Expr("comments || ?::jsonb", string(appended)))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}

// AddComment добавляет комментарий в конец ленты
func (r *Repository) AddComment(ctx context.Context, id int64, comment domain.Comment) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	appended, err := json.Marshal([]domain.Comment{comment})
	if err != nil {
		return fmt.Errorf("%w: AddComment - comment: %v", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Update(table).
		Set("comments", squirrel.Expr("comments || ?::jsonb", string(appended))).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: AddComment - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: AddComment - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: AddComment - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrHearingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanHearing(row rowScanner) (*domain.HearingRequest, error) {
	var (
		h                                    domain.HearingRequest
		claimDetails, participants, comments []byte
		additionalDetails                    sql.NullString
		assignedRoomID                       sql.NullInt64
	)

	err := row.Scan(
		&h.ID,
		&h.CaseNumber,
		&h.Type,
		&h.HearingDateTime,
		&h.ClaimAmount,
		&claimDetails,
		&h.VehicleCount,
		&h.Address,
		&h.Department,
		&h.City,
		&h.Description,
		&additionalDetails,
		&participants,
		&h.Status,
		&assignedRoomID,
		&h.RequestedBy,
		&comments,
		&h.CreatedAt,
		&h.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if additionalDetails.Valid {
		h.AdditionalDetails = &additionalDetails.String
	}
	if assignedRoomID.Valid {
		h.AssignedRoomID = &assignedRoomID.Int64
	}
	if err := json.Unmarshal(claimDetails, &h.ClaimDetails); err != nil {
		return nil, fmt.Errorf("claim_details: %w", err)
	}
	if err := json.Unmarshal(participants, &h.Participants); err != nil {
		return nil, fmt.Errorf("participants: %w", err)
	}
	if err := json.Unmarshal(comments, &h.Comments); err != nil {
		return nil, fmt.Errorf("comments: %w", err)
	}

	return &h, nil
}

func scanHearings(rows *sql.Rows) ([]*domain.HearingRequest, error) {
	hearings := make([]*domain.HearingRequest, 0)

	for rows.Next() {
		h, err := scanHearing(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanHearings - scan row: %v", ErrScanRow, err)
		}
		hearings = append(hearings, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanHearings - rows error: %v", ErrScanRow, err)
	}

	return hearings, nil
}
