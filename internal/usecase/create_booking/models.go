package create_booking

import (
	"time"

	"github.com/elitejetskis/EJS-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	PackageID string           // ID пакета тура
	Date      time.Time        // Дата бронирования (без времени)
	StartTime types.TimeString // Время начала слота (например, "10:00")

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	NumParticipants     int
	EmergencyContact    *string // Опционально
	SpecialRequirements *string // Опционально

	TotalPrice float64 // AED
	PromoCode  *string // Сохраняется, скидка не рассчитывается
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID               int64
	BookingReference string // Уникальный клиентский номер - единственный внешний идентификатор
	PackageID        string
	PackageName      string
	DurationMinutes  int
	BookingDate      time.Time
	StartTime        types.TimeString

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	NumParticipants     int
	EmergencyContact    *string
	SpecialRequirements *string

	TotalPrice float64
	PromoCode  *string

	Status        string
	PaymentStatus string
	PaymentMethod string

	CreatedAt time.Time
	UpdatedAt time.Time
}
