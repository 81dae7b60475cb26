package hearing

import "errors"

var (
	// ErrHearingNotFound возвращается, когда заявка не найдена
	ErrHearingNotFound = errors.New("hearing.repository: hearing request not found")

	// ErrCaseNumberTaken возвращается при нарушении уникальности номера дела
	ErrCaseNumberTaken = errors.New("hearing.repository: case number already exists")

	// ErrSerialization возвращается, когда БД отменила транзакцию из-за конкурентного изменения
	ErrSerialization = errors.New("hearing.repository: concurrent update detected")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("hearing.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("hearing.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("hearing.repository: failed to scan row")

	// ErrEncode возвращается при ошибке сериализации JSONB полей
	ErrEncode = errors.New("hearing.repository: failed to encode jsonb column")
)
