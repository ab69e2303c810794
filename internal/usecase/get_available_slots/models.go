package get_available_slots

import (
	"time"

	"github.com/elitejetskis/EJS-BookingService/internal/domain"
)

// Request модель запроса на получение сетки слотов
type Request struct {
	PackageID string    // ID пакета тура
	Date      time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа с классифицированной сеткой слотов
type Response struct {
	PackageID string
	Date      time.Time
	Slots     []domain.Slot
}

// Window рабочее окно сетки слотов
type Window struct {
	OpenTime           string // "08:00", первый слот дня
	CloseTime          string // "17:00", последний слот дня (включительно)
	SlotStepMinutes    int    // шаг сетки
	AdvanceBookingDays int    // горизонт бронирования, 0 - без ограничений
}
