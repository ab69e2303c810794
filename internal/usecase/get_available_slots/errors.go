package get_available_slots

import "errors"

var (
	// ErrPackageNotFound возвращается, когда пакет не найден или неактивен
	ErrPackageNotFound = errors.New("get_available_slots: package not found")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("get_available_slots: invalid date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает горизонт бронирования
	ErrDateTooFarInFuture = errors.New("get_available_slots: date is too far in the future")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrStoreUnavailable возвращается при недоступности хранилища
	// Вызывающая сторона предлагает повтор, не теряя выбранную дату
	ErrStoreUnavailable = errors.New("get_available_slots: store unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
