package testfixtures

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-HearingService/internal/domain"
	"github.com/m04kA/SMC-HearingService/internal/infra/storage/memory"
)

// Bogota часовой пояс площадок (UTC-5, без перехода на летнее время)
var Bogota = time.FixedZone("America/Bogota", -5*60*60)

// ID пользователей и объектов, которые заводит NewStore
const (
	AdminID       int64 = 1
	ConciliatorID int64 = 2
	OwnerID       int64 = 10
	OtherUserID   int64 = 11

	CentroID int64 = 1
	NorteID  int64 = 2

	CentroSala1  int64 = 10
	CentroSala2  int64 = 11
	CentroTaller int64 = 12 // на обслуживании
	NorteSala1   int64 = 20
)

// ReferenceTime пятница 3 января 2025, 12:00 по Боготе
func ReferenceTime() time.Time {
	return time.Date(2025, time.January, 3, 12, 0, 0, 0, Bogota)
}

// At момент в часовом поясе Боготы
func At(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, Bogota)
}

// Policy правила расписания по умолчанию в часовом поясе Боготы
func Policy() domain.SchedulingPolicy {
	return domain.DefaultSchedulingPolicy(Bogota)
}

// Admin администратор
func Admin() domain.Principal {
	return domain.Principal{UserID: AdminID, Roles: domain.NewRoleSet("ADMIN")}
}

// Conciliator примиритель, может писать документы
func Conciliator() domain.Principal {
	return domain.Principal{UserID: ConciliatorID, Roles: domain.NewRoleSet("CONCILIATOR")}
}

// Owner заявитель без особых ролей
func Owner() domain.Principal {
	return domain.Principal{UserID: OwnerID, Roles: domain.NewRoleSet("REQUESTS")}
}

// OtherUser пользователь, которому заявка не принадлежит
func OtherUser() domain.Principal {
	return domain.Principal{UserID: OtherUserID, Roles: domain.NewRoleSet("RECEPTIONIST")}
}

// NewStore хранилище с двумя площадками, четырьмя залами и праздниками
// Залы работают весь 2025 год
func NewStore() *memory.Store {
	return NewStoreWithPeriod(At(2025, time.January, 1, 0, 0), At(2026, time.January, 1, 0, 0))
}

// NewStoreWithPeriod то же, что NewStore, но залы работают в [from, to)
func NewStoreWithPeriod(from, to time.Time) *memory.Store {
	store := memory.NewStore()

	store.AddLocation(domain.Location{ID: CentroID, Name: "Sede Centro", Prefix: "CEN", City: "Bogotá", Active: true})
	store.AddLocation(domain.Location{ID: NorteID, Name: "Sede Norte", Prefix: "NOR", City: "Bogotá", Active: true})

	rooms := []domain.Room{
		{ID: CentroSala1, LocationID: CentroID, Name: "Sala 1", Modality: domain.ModalityInPerson},
		{ID: CentroSala2, LocationID: CentroID, Name: "Sala 2", Modality: domain.ModalityVirtual,
			Features: []domain.Feature{domain.FeatureVideoconference}},
		{ID: CentroTaller, LocationID: CentroID, Name: "Taller", Modality: domain.ModalityInPerson,
			ManualStatus: domain.RoomMaintenance},
		{ID: NorteSala1, LocationID: NorteID, Name: "Sala 1", Modality: domain.ModalityInPerson},
	}
	for _, r := range rooms {
		r.StartDate = from
		r.EndDate = to
		r.Active = true
		if r.ManualStatus == "" {
			r.ManualStatus = domain.RoomAvailable
		}
		store.AddRoom(r)
	}

	store.AddHoliday(domain.Holiday{Date: time.Date(2025, time.March, 24, 0, 0, 0, 0, time.UTC), Description: "San José"})
	store.AddHoliday(domain.Holiday{Date: time.Date(2000, time.August, 7, 0, 0, 0, 0, time.UTC), Description: "Batalla de Boyacá", Recurring: true})

	return store
}

// Description описание заявки допустимой длины
func Description() string {
	return strings.Repeat("Choque simple entre dos vehículos particulares. ", 3)
}

// Participants один созывающий и один созываемый
func Participants() []domain.Participant {
	return []domain.Participant{
		{Name: "Ana Gómez", DocumentID: "1020304050", EntityType: domain.EntityNatural, Email: "ana@example.com", Role: domain.RoleConvener},
		{Name: "Seguros Andinos S.A.", DocumentID: "900123456", EntityType: domain.EntityJuridical, Email: "legal@andinos.example.com", Role: domain.RoleConvened},
	}
}

// PendingHearing заявка владельца OwnerID в статусе pending на момент at
func PendingHearing(caseNumber string, at time.Time) *domain.HearingRequest {
	return &domain.HearingRequest{
		CaseNumber:      caseNumber,
		Type:            domain.HearingTypeTransit,
		HearingDateTime: at.UTC(),
		ClaimAmount:     1500000,
		VehicleCount:    2,
		Address:         "Calle 26 # 68-35",
		Department:      "Cundinamarca",
		City:            "Bogotá",
		Description:     Description(),
		Participants:    Participants(),
		Status:          domain.StatusPending,
		RequestedBy:     OwnerID,
		Comments:        []domain.Comment{},
	}
}
