package domain

import (
	"time"

	"github.com/elitejetskis/EJS-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// PaymentMethod represents how the booking is paid
// Оплата, согласованная через WhatsApp (перевод или наличные на месте),
// фиксируется как "cash"
type PaymentMethod string

const (
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodCash PaymentMethod = "cash"
)

// Booking represents a tour reservation for a single slot
type Booking struct {
	ID               int64
	BookingReference string // Уникальный клиентский номер бронирования (EJ-YYYYMMDD-XXXXXX)
	PackageID        string
	BookingDate      time.Time        // Календарная дата без времени
	BookingTime      types.TimeString // Время начала слота, минутная гранулярность

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	NumParticipants     int
	EmergencyContact    *string
	SpecialRequirements *string

	TotalPrice float64 // AED
	PromoCode  *string // Сохраняется как есть, скидка не рассчитывается

	Status        BookingStatus
	PaymentStatus PaymentStatus
	PaymentMethod PaymentMethod

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesSlot returns true if the booking blocks its (package, date, time) slot
// Слот занят любым бронированием кроме отменённого
func (b *Booking) OccupiesSlot() bool {
	return b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}
