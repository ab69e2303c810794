package get_booking

import (
	"time"

	"github.com/elitejetskis/EJS-BookingService/internal/domain"
	"github.com/elitejetskis/EJS-BookingService/internal/service/bookings/models"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	BookingReference string `json:"booking_reference"`
	PackageID        string `json:"packageId"`
	BookingDate      string `json:"bookingDate"`
	BookingTime      string `json:"bookingTime"`

	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`

	NumParticipants     int     `json:"numParticipants"`
	EmergencyContact    *string `json:"emergencyContact,omitempty"`
	SpecialRequirements *string `json:"specialRequirements,omitempty"`

	TotalPrice float64 `json:"totalPrice"`
	PromoCode  *string `json:"promoCode,omitempty"`

	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
	PaymentMethod string `json:"paymentMethod"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(b *models.BookingResponse) *BookingResponse {
	resp := &BookingResponse{
		BookingReference:    b.BookingReference,
		PackageID:           b.PackageID,
		BookingDate:         b.BookingDate.Format(domain.DateFormat),
		BookingTime:         b.BookingTime,
		CustomerName:        b.CustomerName,
		CustomerEmail:       b.CustomerEmail,
		CustomerPhone:       b.CustomerPhone,
		NumParticipants:     b.NumParticipants,
		EmergencyContact:    b.EmergencyContact,
		SpecialRequirements: b.SpecialRequirements,
		TotalPrice:          b.TotalPrice,
		PromoCode:           b.PromoCode,
		Status:              b.Status,
		PaymentStatus:       b.PaymentStatus,
		PaymentMethod:       b.PaymentMethod,
		CancellationReason:  b.CancellationReason,
		CreatedAt:           b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           b.UpdatedAt.Format(time.RFC3339),
	}

	if b.CancelledAt != nil {
		cancelledAt := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}
