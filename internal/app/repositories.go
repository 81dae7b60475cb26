package app

import (
	"context"

	documentRepo "github.com/m04kA/SMC-HearingService/internal/infra/storage/document"
	hearingRepo "github.com/m04kA/SMC-HearingService/internal/infra/storage/hearing"
	holidayRepo "github.com/m04kA/SMC-HearingService/internal/infra/storage/holiday"
	"github.com/m04kA/SMC-HearingService/internal/infra/storage/memory"
	roomRepo "github.com/m04kA/SMC-HearingService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HearingService/internal/service/documents"
	"github.com/m04kA/SMC-HearingService/internal/service/hearings"
	approveHearing "github.com/m04kA/SMC-HearingService/internal/usecase/approve_hearing_request"
	createHearing "github.com/m04kA/SMC-HearingService/internal/usecase/create_hearing_request"
	findRooms "github.com/m04kA/SMC-HearingService/internal/usecase/find_available_rooms"
	getRoomStatus "github.com/m04kA/SMC-HearingService/internal/usecase/get_room_status"
	"github.com/m04kA/SMC-HearingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HearingService/pkg/txmanager"
)

// HearingRepository все операции с заявками, которые нужны use case и сервисам
type HearingRepository interface {
	createHearing.HearingRepository
	approveHearing.HearingRepository
	findRooms.HearingRepository
	hearings.HearingRepository
}

// RoomRepository операции с залами и площадками
type RoomRepository interface {
	approveHearing.RoomRepository
	findRooms.RoomRepository
	getRoomStatus.RoomRepository
}

// TransactionManager транзакции всех уровней изоляции
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Repositories хранилище сервиса: PostgreSQL или память
type Repositories struct {
	Hearings  HearingRepository
	Rooms     RoomRepository
	Documents documents.DocumentRepository
	Holidays  holidayRepo.Source
	TxManager TransactionManager

	// Ping проверка хранилища для /health, nil - всегда доступно
	Ping func(ctx context.Context) error
}

// PostgresRepositories репозитории поверх обертки с метриками
func PostgresRepositories(db *dbmetrics.DB) Repositories {
	return Repositories{
		Hearings:  hearingRepo.NewRepository(db),
		Rooms:     roomRepo.NewRepository(db),
		Documents: documentRepo.NewRepository(db),
		Holidays:  holidayRepo.NewRepository(db),
		TxManager: txmanager.NewTransactionManager(db),
		Ping:      db.PingContext,
	}
}

// MemoryRepositories репозитории в памяти процесса
func MemoryRepositories(store *memory.Store) Repositories {
	return Repositories{
		Hearings:  memory.NewHearingRepository(store),
		Rooms:     memory.NewRoomRepository(store),
		Documents: memory.NewDocumentRepository(store),
		Holidays:  memory.NewHolidayRepository(store),
		TxManager: memory.NewTxManager(store),
	}
}
