package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// Текст ошибки называет поле, не прошедшее валидацию
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrPackageNotFound возвращается, когда пакет не найден или неактивен
	ErrPackageNotFound = errors.New("create_booking: package not found")

	// ErrSlotConflict возвращается, когда слот уже занят неотменённым бронированием
	ErrSlotConflict = errors.New("create_booking: time slot is already booked")

	// ErrInvalidDate возвращается при дате бронирования в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает горизонт бронирования
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrSlotInPast возвращается, когда момент слота уже наступил
	ErrSlotInPast = errors.New("create_booking: time slot is in the past")

	// ErrStoreUnavailable возвращается при недоступности хранилища
	// Бронирование НИКОГДА не подтверждается без записанной в хранилище строки
	ErrStoreUnavailable = errors.New("create_booking: store unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
