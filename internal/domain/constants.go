package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default booking window values
// Рабочее окно одной точки проката: слоты с 08:00 до 17:00 включительно, шаг 30 минут
const (
	DefaultOpenTime           = "08:00"
	DefaultCloseTime          = "17:00"
	DefaultSlotStepMinutes    = 30
	DefaultAdvanceBookingDays = 60
)

// Business validation constants
const (
	MinParticipants              = 1
	MaxCustomerNameLength        = 200
	MaxSpecialRequirementsLength = 500
	MaxCancellationReasonLength  = 500
)

// BookingReferencePrefix префикс клиентских номеров бронирований
const BookingReferencePrefix = "EJ"
