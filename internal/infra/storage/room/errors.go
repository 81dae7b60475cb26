package room

import "errors"

var (
	// ErrRoomNotFound возвращается, когда зал не найден
	ErrRoomNotFound = errors.New("room.repository: room not found")

	// ErrLocationNotFound возвращается, когда площадка не найдена
	ErrLocationNotFound = errors.New("room.repository: location not found")

	// ErrSerialization возвращается, когда БД отменила транзакцию из-за конкурентного изменения
	ErrSerialization = errors.New("room.repository: concurrent update detected")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("room.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("room.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("room.repository: failed to scan row")
)
