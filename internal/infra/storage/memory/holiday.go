package memory

import (
	"context"
	"sort"

	"github.com/m04kA/SMC-HearingService/internal/domain"
)

// HolidayRepository праздничные дни в памяти
type HolidayRepository struct {
	store *Store
}

// NewHolidayRepository создает репозиторий праздников над store
func NewHolidayRepository(store *Store) *HolidayRepository {
	return &HolidayRepository{store: store}
}

// ListForYear даты года year и все повторяющиеся праздники
func (r *HolidayRepository) ListForYear(ctx context.Context, year int) ([]domain.Holiday, error) {
	defer r.store.enter(ctx)()

	result := make([]domain.Holiday, 0)
	for _, h := range r.store.holidays {
		if h.Recurring || h.Date.Year() == year {
			result = append(result, h)
		}
	}
	sortHolidays(result)
	return result, nil
}

func (r *HolidayRepository) ListAll(ctx context.Context) ([]domain.Holiday, error) {
	defer r.store.enter(ctx)()

	result := append([]domain.Holiday{}, r.store.holidays...)
	sortHolidays(result)
	return result, nil
}

func sortHolidays(holidays []domain.Holiday) {
	sort.Slice(holidays, func(i, j int) bool { return holidays[i].Date.Before(holidays[j].Date) })
}
