package holiday

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HearingService/internal/domain"
	"github.com/m04kA/SMC-HearingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HearingService/pkg/psqlbuilder"
)

// Repository репозиторий праздничных дней (только чтение)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория праздников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListForYear праздники, действующие в году year: даты этого года и все повторяющиеся
func (r *Repository) ListForYear(ctx context.Context, year int) ([]domain.Holiday, error) {
	return r.list(ctx, squirrel.Or{
		squirrel.Eq{"recurring": true},
		squirrel.Expr("EXTRACT(YEAR FROM date) = ?", year),
	})
}

// ListAll все праздники
func (r *Repository) ListAll(ctx context.Context) ([]domain.Holiday, error) {
	return r.list(ctx, nil)
}

func (r *Repository) list(ctx context.Context, where squirrel.Sqlizer) ([]domain.Holiday, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select("id", "date", "description", "recurring").
		From("holidays").
		OrderBy("date ASC")
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: list - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	holidays := make([]domain.Holiday, 0)
	for rows.Next() {
		var h domain.Holiday
		if err := rows.Scan(&h.ID, &h.Date, &h.Description, &h.Recurring); err != nil {
			return nil, fmt.Errorf("%w: list - scan row: %v", ErrScanRow, err)
		}
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list - rows error: %v", ErrScanRow, err)
	}

	return holidays, nil
}
