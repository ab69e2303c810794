package cancel_booking

import (
	"github.com/elitejetskis/EJS-BookingService/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest() *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		CancellationReason: r.CancellationReason,
	}
}

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	BookingReference string `json:"booking_reference"`
	Status           string `json:"status"`
}
