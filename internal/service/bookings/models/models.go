package models

import (
	"time"

	"github.com/elitejetskis/EJS-BookingService/internal/domain"
)

// BookingResponse модель бронирования для внешних потребителей сервиса
type BookingResponse struct {
	ID               int64
	BookingReference string
	PackageID        string
	BookingDate      time.Time
	BookingTime      string

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

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	CancellationReason string
}

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                  b.ID,
		BookingReference:    b.BookingReference,
		PackageID:           b.PackageID,
		BookingDate:         b.BookingDate,
		BookingTime:         b.BookingTime.String(),
		CustomerName:        b.CustomerName,
		CustomerEmail:       b.CustomerEmail,
		CustomerPhone:       b.CustomerPhone,
		NumParticipants:     b.NumParticipants,
		EmergencyContact:    b.EmergencyContact,
		SpecialRequirements: b.SpecialRequirements,
		TotalPrice:          b.TotalPrice,
		PromoCode:           b.PromoCode,
		Status:              string(b.Status),
		PaymentStatus:       string(b.PaymentStatus),
		PaymentMethod:       string(b.PaymentMethod),
		CancellationReason:  b.CancellationReason,
		CancelledAt:         b.CancelledAt,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
}
