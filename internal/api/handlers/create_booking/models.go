package create_booking

import (
	"time"

	"github.com/elitejetskis/EJS-BookingService/internal/domain"
	createBooking "github.com/elitejetskis/EJS-BookingService/internal/usecase/create_booking"
	"github.com/elitejetskis/EJS-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	PackageID   string `json:"packageId"`
	BookingDate string `json:"bookingDate"` // "2026-09-15"
	BookingTime string `json:"bookingTime"` // "10:00"

	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`

	NumParticipants     int     `json:"numParticipants"`
	EmergencyContact    *string `json:"emergencyContact,omitempty"`
	SpecialRequirements *string `json:"specialRequirements,omitempty"`

	TotalPrice float64 `json:"totalPrice"`
	PromoCode  *string `json:"promoCode,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	BookingReference string `json:"booking_reference"`

	PackageID       string `json:"packageId"`
	PackageName     string `json:"packageName"`
	DurationMinutes int    `json:"durationMinutes"`
	BookingDate     string `json:"bookingDate"`
	BookingTime     string `json:"bookingTime"`

	CustomerName    string `json:"customerName"`
	NumParticipants int    `json:"numParticipants"`

	TotalPrice    float64 `json:"totalPrice"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`
	PaymentMethod string  `json:"paymentMethod"`

	WhatsAppURL string `json:"whatsappUrl"`
	CalendarURL string `json:"calendarUrl,omitempty"`

	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.BookingTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		PackageID:           r.PackageID,
		Date:                bookingDate,
		StartTime:           startTime,
		CustomerName:        r.CustomerName,
		CustomerEmail:       r.CustomerEmail,
		CustomerPhone:       r.CustomerPhone,
		NumParticipants:     r.NumParticipants,
		EmergencyContact:    r.EmergencyContact,
		SpecialRequirements: r.SpecialRequirements,
		TotalPrice:          r.TotalPrice,
		PromoCode:           r.PromoCode,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response, whatsappURL, calendarURL string) *BookingResponse {
	return &BookingResponse{
		BookingReference: resp.BookingReference,
		PackageID:        resp.PackageID,
		PackageName:      resp.PackageName,
		DurationMinutes:  resp.DurationMinutes,
		BookingDate:      resp.BookingDate.Format(domain.DateFormat),
		BookingTime:      resp.StartTime.String(),
		CustomerName:     resp.CustomerName,
		NumParticipants:  resp.NumParticipants,
		TotalPrice:       resp.TotalPrice,
		Status:           resp.Status,
		PaymentStatus:    resp.PaymentStatus,
		PaymentMethod:    resp.PaymentMethod,
		WhatsAppURL:      whatsappURL,
		CalendarURL:      calendarURL,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
	}
}
