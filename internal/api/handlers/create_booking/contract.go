package create_booking

import (
	"context"
	"time"

	createBooking "github.com/elitejetskis/EJS-BookingService/internal/usecase/create_booking"
)

type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

// Notifier собирает текст и ссылки передачи бронирования в WhatsApp
type Notifier interface {
	ConfirmationMessage(b *createBooking.Response, createdAt time.Time) string
	HandoffURL(message string) string
	CalendarURL(b *createBooking.Response) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
