package documents

import "errors"

var (
	// ErrDocumentNotFound возвращается, когда документ не найден
	ErrDocumentNotFound = errors.New("documents: document not found")

	// ErrHearingNotFound возвращается, когда заявка документа не найдена
	ErrHearingNotFound = errors.New("documents: hearing request not found")

	// ErrHearingNotApproved возвращается при создании документа для неодобренной заявки
	ErrHearingNotApproved = errors.New("documents: hearing request is not approved")

	// ErrImmutable возвращается при попытке изменить финализированный документ
	ErrImmutable = errors.New("documents: document is final and cannot be modified")

	// ErrAccessDenied возвращается, когда у пользователя нет прав на операцию
	ErrAccessDenied = errors.New("documents: access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("documents: internal error")
)
