package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-HearingService/internal/domain"
)

// FirstCaseSequence первый номер в последовательности номеров дел
const FirstCaseSequence = 1001

// Store хранилище в памяти для локального запуска и тестов
// Все таблицы защищены одним мьютексом; транзакция держит его целиком,
// поэтому транзакции выполняются строго последовательно
type Store struct {
	mu sync.Mutex

	hearings  map[int64]*domain.HearingRequest
	rooms     map[int64]*domain.Room
	locations map[int64]*domain.Location
	documents map[int64]*domain.Document
	holidays  []domain.Holiday

	caseSeq       int64
	nextHearingID int64
	nextDocID     int64

	now func() time.Time
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{
		hearings:      make(map[int64]*domain.HearingRequest),
		rooms:         make(map[int64]*domain.Room),
		locations:     make(map[int64]*domain.Location),
		documents:     make(map[int64]*domain.Document),
		caseSeq:       FirstCaseSequence - 1,
		nextHearingID: 1,
		nextDocID:     1,
		now:           time.Now,
	}
}

// AddLocation добавляет площадку (ID задается вызывающим)
func (s *Store) AddLocation(loc domain.Location) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locations[loc.ID] = &loc
}

// AddRoom добавляет зал; имя и префикс площадки подставляются, если она уже добавлена
func (s *Store) AddRoom(room domain.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if loc, ok := s.locations[room.LocationID]; ok {
		if room.LocationName == "" {
			room.LocationName = loc.Name
		}
		if room.LocationPrefix == "" {
			room.LocationPrefix = loc.Prefix
		}
	}
	s.rooms[room.ID] = cloneRoom(&room)
}

// AddHoliday добавляет праздничный день
func (s *Store) AddHoliday(h domain.Holiday) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if h.ID == 0 {
		h.ID = int64(len(s.holidays) + 1)
	}
	s.holidays = append(s.holidays, h)
}

type txKey struct{}

func (s *Store) inTx(ctx context.Context) bool {
	owner, _ := ctx.Value(txKey{}).(*Store)
	return owner == s
}

// enter захватывает мьютекс, если вызов не внутри транзакции этого хранилища
func (s *Store) enter(ctx context.Context) func() {
	if s.inTx(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

type snapshot struct {
	hearings      map[int64]*domain.HearingRequest
	documents     map[int64]*domain.Document
	nextHearingID int64
	nextDocID     int64
}

// Записи в таблицах не меняются на месте, а заменяются копиями,
// поэтому для отката достаточно копии карт
func (s *Store) snapshot() snapshot {
	snap := snapshot{
		hearings:      make(map[int64]*domain.HearingRequest, len(s.hearings)),
		documents:     make(map[int64]*domain.Document, len(s.documents)),
		nextHearingID: s.nextHearingID,
		nextDocID:     s.nextDocID,
	}
	for id, h := range s.hearings {
		snap.hearings[id] = h
	}
	for id, d := range s.documents {
		snap.documents[id] = d
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.hearings = snap.hearings
	s.documents = snap.documents
	// последовательность номеров дел, как и в PostgreSQL, не откатывается
	s.nextHearingID = snap.nextHearingID
	s.nextDocID = snap.nextDocID
}

// TxManager менеджер транзакций над Store
// Вложенный вызов переиспользует внешнюю транзакцию; при ошибке изменения откатываются
type TxManager struct {
	store *Store
}

// NewTxManager создает менеджер транзакций
func NewTxManager(store *Store) *TxManager {
	return &TxManager{store: store}
}

// Do выполняет fn в транзакции
func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

// DoSerializable выполняет fn в транзакции; транзакции хранилища всегда последовательны
func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

// DoReadOnly выполняет fn в транзакции
func (m *TxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) run(ctx context.Context, fn func(ctx context.Context) error) error {
	s := m.store
	if s.inTx(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()
	defer func() {
		if p := recover(); p != nil {
			s.restore(snap)
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, s)); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

func cloneHearing(h *domain.HearingRequest) *domain.HearingRequest {
	c := *h
	c.Participants = append([]domain.Participant(nil), h.Participants...)
	c.Comments = append([]domain.Comment(nil), h.Comments...)
	if h.AssignedRoomID != nil {
		id := *h.AssignedRoomID
		c.AssignedRoomID = &id
	}
	if h.AdditionalDetails != nil {
		details := *h.AdditionalDetails
		c.AdditionalDetails = &details
	}
	return &c
}

func cloneRoom(r *domain.Room) *domain.Room {
	c := *r
	c.Features = append([]domain.Feature(nil), r.Features...)
	return &c
}

func cloneDocument(d *domain.Document) *domain.Document {
	c := *d
	c.History = append([]domain.Snapshot{}, d.History...)
	return &c
}
