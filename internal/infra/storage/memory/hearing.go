package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-HearingService/internal/domain"
	hearingRepo "github.com/m04kA/SMC-HearingService/internal/infra/storage/hearing"
)

// HearingRepository заявки на слушания в памяти
// Возвращает те же ошибки, что и репозиторий PostgreSQL
type HearingRepository struct {
	store *Store
}

// NewHearingRepository создает репозиторий заявок над store
func NewHearingRepository(store *Store) *HearingRepository {
	return &HearingRepository{store: store}
}

func (r *HearingRepository) NextCaseSequence(ctx context.Context) (int64, error) {
	defer r.store.enter(ctx)()
	r.store.caseSeq++
	return r.store.caseSeq, nil
}

func (r *HearingRepository) Create(ctx context.Context, h *domain.HearingRequest) (*domain.HearingRequest, error) {
	defer r.store.enter(ctx)()

	for _, existing := range r.store.hearings {
		if existing.CaseNumber == h.CaseNumber {
			return nil, fmt.Errorf("%w: %s", hearingRepo.ErrCaseNumberTaken, h.CaseNumber)
		}
	}

	stored := cloneHearing(h)
	stored.ID = r.store.nextHearingID
	r.store.nextHearingID++
	stored.CreatedAt = r.store.now()
	stored.UpdatedAt = stored.CreatedAt
	if stored.Comments == nil {
		stored.Comments = []domain.Comment{}
	}
	r.store.hearings[stored.ID] = stored

	return cloneHearing(stored), nil
}

func (r *HearingRepository) GetByID(ctx context.Context, id int64) (*domain.HearingRequest, error) {
	defer r.store.enter(ctx)()

	h, ok := r.store.hearings[id]
	if !ok {
		return nil, hearingRepo.ErrHearingNotFound
	}
	return cloneHearing(h), nil
}

func (r *HearingRepository) List(ctx context.Context, filter domain.HearingFilter) ([]*domain.HearingRequest, error) {
	defer r.store.enter(ctx)()

	result := make([]*domain.HearingRequest, 0)
	for _, h := range r.store.hearings {
		if filter.RequestedBy != nil && h.RequestedBy != *filter.RequestedBy {
			continue
		}
		if filter.Status != nil && h.Status != *filter.Status {
			continue
		}
		if filter.Type != nil && h.Type != *filter.Type {
			continue
		}
		if filter.StartDate != nil && h.HearingDateTime.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && h.HearingDateTime.After(*filter.EndDate) {
			continue
		}
		result = append(result, cloneHearing(h))
	}

	sortByDateTime(result)
	return result, nil
}

func (r *HearingRepository) ListInProgress(ctx context.Context, now time.Time, duration time.Duration) ([]*domain.HearingRequest, error) {
	defer r.store.enter(ctx)()

	result := make([]*domain.HearingRequest, 0)
	for _, h := range r.store.hearings {
		if h.Status == domain.StatusApproved && h.Window(duration).Contains(now) {
			result = append(result, cloneHearing(h))
		}
	}

	sortByDateTime(result)
	return result, nil
}

func (r *HearingRepository) ListAssignments(ctx context.Context, roomIDs []int64, window domain.Window, duration time.Duration) ([]domain.Assignment, error) {
	defer r.store.enter(ctx)()

	rooms := make(map[int64]struct{}, len(roomIDs))
	for _, id := range roomIDs {
		rooms[id] = struct{}{}
	}

	assignments := make([]domain.Assignment, 0)
	for _, h := range r.store.hearings {
		if h.Status != domain.StatusApproved || h.AssignedRoomID == nil {
			continue
		}
		if _, ok := rooms[*h.AssignedRoomID]; len(rooms) > 0 && !ok {
			continue
		}
		hw := h.Window(duration)
		if !hw.Overlaps(window) {
			continue
		}
		assignments = append(assignments, domain.Assignment{
			HearingID: h.ID,
			RoomID:    *h.AssignedRoomID,
			Window:    hw,
		})
	}

	sort.Slice(assignments, func(i, j int) bool { return assignments[i].HearingID < assignments[j].HearingID })
	return assignments, nil
}

// AssignRoom те же условия, что и у условного UPDATE в PostgreSQL:
// заявка pending и в зале нет пересекающегося одобренного слушания
func (r *HearingRepository) AssignRoom(ctx context.Context, id, roomID int64, window domain.Window, duration time.Duration) (bool, error) {
	defer r.store.enter(ctx)()

	h, ok := r.store.hearings[id]
	if !ok || h.Status != domain.StatusPending {
		return false, nil
	}

	for _, other := range r.store.hearings {
		if other.ID == id || other.Status != domain.StatusApproved || other.AssignedRoomID == nil {
			continue
		}
		if *other.AssignedRoomID == roomID && other.Window(duration).Overlaps(window) {
			return false, nil
		}
	}

	updated := cloneHearing(h)
	updated.Status = domain.StatusApproved
	updated.AssignedRoomID = &roomID
	updated.UpdatedAt = r.store.now()
	r.store.hearings[id] = updated

	return true, nil
}

func (r *HearingRepository) UpdateStatus(ctx context.Context, id int64, from []domain.HearingStatus, to domain.HearingStatus, comment *domain.Comment) (bool, error) {
	defer r.store.enter(ctx)()

	h, ok := r.store.hearings[id]
	if !ok || !statusIn(h.Status, from) {
		return false, nil
	}

	updated := cloneHearing(h)
	updated.Status = to
	updated.UpdatedAt = r.store.now()
	if to == domain.StatusCancelled || to == domain.StatusRejected {
		updated.AssignedRoomID = nil
	}
	if comment != nil {
		updated.Comments = append(updated.Comments, *comment)
	}
	r.store.hearings[id] = updated

	return true, nil
}

func (r *HearingRepository) AddComment(ctx context.Context, id int64, comment domain.Comment) error {
	defer r.store.enter(ctx)()

	h, ok := r.store.hearings[id]
	if !ok {
		return hearingRepo.ErrHearingNotFound
	}

	updated := cloneHearing(h)
	updated.Comments = append(updated.Comments, comment)
	updated.UpdatedAt = r.store.now()
	r.store.hearings[id] = updated

	return nil
}

func statusIn(status domain.HearingStatus, set []domain.HearingStatus) bool {
	for _, s := range set {
		if s == status {
			return true
		}
	}
	return false
}

func sortByDateTime(hearings []*domain.HearingRequest) {
	sort.Slice(hearings, func(i, j int) bool {
		if !hearings[i].HearingDateTime.Equal(hearings[j].HearingDateTime) {
			return hearings[i].HearingDateTime.Before(hearings[j].HearingDateTime)
		}
		return hearings[i].ID < hearings[j].ID
	})
}
