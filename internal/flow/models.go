package flow

import (
	"context"
	"time"

	"github.com/elitejetskis/EJS-BookingService/internal/domain"
	createBooking "github.com/elitejetskis/EJS-BookingService/internal/usecase/create_booking"
	"github.com/elitejetskis/EJS-BookingService/pkg/types"
)

// Step шаг потока бронирования
type Step string

const (
	StepPackageSelection    Step = "package-selection"
	StepDateTimeSelection   Step = "datetime-selection"
	StepCustomerDetails     Step = "customer-details"
	StepSummaryConfirmation Step = "summary-confirmation"
	StepConfirmed           Step = "confirmed"
)

// CustomerDetails данные клиента, вводимые на шаге customer-details
type CustomerDetails struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	NumParticipants     int
	EmergencyContact    *string
	SpecialRequirements *string

	AcceptedTerms bool
}

// Draft черновик бронирования, собираемый по шагам потока
// Машина - единственный владелец черновика; снаружи доступна только копия
type Draft struct {
	Package   *domain.Package
	Date      time.Time
	StartTime types.TimeString

	Details   CustomerDetails
	PromoCode *string
}

// ReservationWriter интерфейс создания бронирования (usecase create_booking)
type ReservationWriter interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
