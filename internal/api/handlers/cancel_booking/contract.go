package cancel_booking

import (
	"context"

	"github.com/elitejetskis/EJS-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	Cancel(ctx context.Context, reference string, req *models.CancelBookingRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
