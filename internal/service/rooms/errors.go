package rooms

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("rooms: room not found")

	// ErrInvalidRange возвращается при некорректном периоде календаря
	ErrInvalidRange = errors.New("rooms: invalid date range")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("rooms: internal error")
)
