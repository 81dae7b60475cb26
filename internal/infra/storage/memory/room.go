package memory

import (
	"context"
	"sort"

	"github.com/m04kA/SMC-HearingService/internal/domain"
	roomRepo "github.com/m04kA/SMC-HearingService/internal/infra/storage/room"
)

// RoomRepository залы и площадки в памяти (только чтение)
type RoomRepository struct {
	store *Store
}

// NewRoomRepository создает репозиторий залов над store
func NewRoomRepository(store *Store) *RoomRepository {
	return &RoomRepository{store: store}
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	defer r.store.enter(ctx)()

	room, ok := r.store.rooms[id]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	return cloneRoom(room), nil
}

// LockForAssignment внутри транзакции хранилище уже заблокировано целиком
func (r *RoomRepository) LockForAssignment(ctx context.Context, id int64) (*domain.Room, error) {
	return r.GetByID(ctx, id)
}

func (r *RoomRepository) ListActive(ctx context.Context, locationID *int64) ([]*domain.Room, error) {
	defer r.store.enter(ctx)()

	rooms := make([]*domain.Room, 0)
	for _, room := range r.store.rooms {
		if !room.Active {
			continue
		}
		if locationID != nil && room.LocationID != *locationID {
			continue
		}
		rooms = append(rooms, cloneRoom(room))
	}

	sort.Slice(rooms, func(i, j int) bool {
		if rooms[i].Name != rooms[j].Name {
			return rooms[i].Name < rooms[j].Name
		}
		if rooms[i].LocationName != rooms[j].LocationName {
			return rooms[i].LocationName < rooms[j].LocationName
		}
		return rooms[i].ID < rooms[j].ID
	})
	return rooms, nil
}

func (r *RoomRepository) GetLocation(ctx context.Context, id int64) (*domain.Location, error) {
	defer r.store.enter(ctx)()

	loc, ok := r.store.locations[id]
	if !ok {
		return nil, roomRepo.ErrLocationNotFound
	}
	c := *loc
	return &c, nil
}
