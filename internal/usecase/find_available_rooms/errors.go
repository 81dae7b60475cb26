package find_available_rooms

import "errors"

var (
	// ErrLocationNotFound возвращается, когда площадка не найдена
	ErrLocationNotFound = errors.New("find_available_rooms: location not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("find_available_rooms: internal error")
)
