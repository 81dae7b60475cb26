package approve_hearing_request

import "errors"

var (
	// ErrHearingNotFound возвращается, когда заявка не найдена
	ErrHearingNotFound = errors.New("approve_hearing_request: hearing request not found")

	// ErrRoomNotFound возвращается, когда зал не найден
	ErrRoomNotFound = errors.New("approve_hearing_request: room not found")

	// ErrRoomNotInLocation возвращается, когда зал не принадлежит указанной площадке
	ErrRoomNotInLocation = errors.New("approve_hearing_request: room does not belong to location")

	// ErrRoomUnavailable возвращается, когда зал на обслуживании или не работает в это время
	ErrRoomUnavailable = errors.New("approve_hearing_request: room is not available for the hearing window")

	// ErrInvalidTransition возвращается, когда заявка уже не в статусе pending
	ErrInvalidTransition = errors.New("approve_hearing_request: invalid status transition")

	// ErrConflict возвращается, когда зал занят другим слушанием (в том числе проигранная гонка)
	// Администратор должен заново запросить свободные залы
	ErrConflict = errors.New("approve_hearing_request: room already assigned for the window")

	// ErrAccessDenied возвращается, когда пользователь не администратор
	ErrAccessDenied = errors.New("approve_hearing_request: access denied")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("approve_hearing_request: internal error")
)
