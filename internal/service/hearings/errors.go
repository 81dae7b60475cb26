package hearings

import "errors"

var (
	// ErrHearingNotFound возвращается, когда заявка не найдена
	ErrHearingNotFound = errors.New("hearings: hearing request not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав на операцию
	ErrAccessDenied = errors.New("hearings: access denied")

	// ErrInvalidTransition возвращается, когда переход недопустим из текущего статуса
	ErrInvalidTransition = errors.New("hearings: invalid status transition")

	// ErrInvalidInput возвращается при некорректных параметрах запроса
	ErrInvalidInput = errors.New("hearings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("hearings: internal error")
)
