package create_hearing_request

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_hearing_request: internal error")
)
