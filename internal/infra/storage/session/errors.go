package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессии нет или её срок истёк
	ErrSessionNotFound = errors.New("session.store: session not found")

	// ErrRevisionConflict возвращается, когда сессию успели изменить параллельно
	ErrRevisionConflict = errors.New("session.store: revision conflict")

	// ErrEncode возвращается при ошибке сериализации состояния
	ErrEncode = errors.New("session.store: failed to encode state")

	// ErrDecode возвращается при ошибке десериализации состояния
	ErrDecode = errors.New("session.store: failed to decode state")

	// ErrStorage возвращается при ошибке работы с хранилищем
	ErrStorage = errors.New("session.store: storage error")
)
