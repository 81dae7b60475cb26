package room

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-HearingService/internal/domain"
	"github.com/m04kA/SMC-HearingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HearingService/pkg/pgerrors"
	"github.com/m04kA/SMC-HearingService/pkg/psqlbuilder"
)

var roomColumns = []string{
	"r.id",
	"r.location_id",
	"l.name",
	"l.prefix",
	"r.name",
	"r.modality",
	"r.start_date",
	"r.end_date",
	"r.status",
	"r.features",
	"r.active",
	"r.created_at",
	"r.updated_at",
}

// Repository репозиторий залов и площадок
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория залов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func (r *Repository) selectRooms() squirrel.SelectBuilder {
	return psqlbuilder.Select(roomColumns...).
		From("rooms r").
		Join("locations l ON l.id = r.location_id")
}

// GetByID получает зал по ID вместе с названием площадки
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectRooms().
		Where(squirrel.Eq{"r.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	room, err := scanRoom(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan room: %v", ErrScanRow, err)
	}

	return room, nil
}

// LockForAssignment получает зал и блокирует его строку до конца транзакции
// Конкурентные одобрения в один зал выполняются последовательно
// Вне транзакции работает как GetByID
func (r *Repository) LockForAssignment(ctx context.Context, id int64) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := r.selectRooms().Where(squirrel.Eq{"r.id": id})
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE OF r")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: LockForAssignment - build select query: %v", ErrBuildQuery, err)
	}

	room, err := scanRoom(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoomNotFound
	}
	if pgerrors.IsSerializationFailure(err) {
		return nil, fmt.Errorf("%w: LockForAssignment - room %d: %v", ErrSerialization, id, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: LockForAssignment - scan room: %v", ErrScanRow, err)
	}

	return room, nil
}

// ListActive активные залы площадки (или всех площадок, если locationID == nil)
// Сортировка: название зала, затем название площадки
func (r *Repository) ListActive(ctx context.Context, locationID *int64) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := r.selectRooms().
		Where(squirrel.Eq{"r.active": true})
	if locationID != nil {
		builder = builder.Where(squirrel.Eq{"r.location_id": *locationID})
	}

	query, args, err := builder.OrderBy("r.name ASC", "l.name ASC", "r.id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rooms := make([]*domain.Room, 0)
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan row: %v", ErrScanRow, err)
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %v", ErrScanRow, err)
	}

	return rooms, nil
}

// GetLocation получает площадку по ID
func (r *Repository) GetLocation(ctx context.Context, id int64) (*domain.Location, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"prefix",
		"address",
		"city",
		"department",
		"active",
		"created_at",
		"updated_at",
	).
		From("locations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetLocation - build select query: %v", ErrBuildQuery, err)
	}

	var loc domain.Location
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&loc.ID,
		&loc.Name,
		&loc.Prefix,
		&loc.Address,
		&loc.City,
		&loc.Department,
		&loc.Active,
		&loc.CreatedAt,
		&loc.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrLocationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetLocation - scan location: %v", ErrScanRow, err)
	}

	return &loc, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRoom(row rowScanner) (*domain.Room, error) {
	var (
		room     domain.Room
		features pq.StringArray
	)

	err := row.Scan(
		&room.ID,
		&room.LocationID,
		&room.LocationName,
		&room.LocationPrefix,
		&room.Name,
		&room.Modality,
		&room.StartDate,
		&room.EndDate,
		&room.ManualStatus,
		&features,
		&room.Active,
		&room.CreatedAt,
		&room.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	room.Features = make([]domain.Feature, 0, len(features))
	for _, f := range features {
		room.Features = append(room.Features, domain.Feature(f))
	}

	return &room, nil
}
