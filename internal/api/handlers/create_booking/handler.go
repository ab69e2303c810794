package create_booking

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/elitejetskis/EJS-BookingService/internal/api/handlers"
	"github.com/elitejetskis/EJS-BookingService/internal/domain"
	createBooking "github.com/elitejetskis/EJS-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid booking date format, expected YYYY-MM-DD"
	msgInvalidTime        = "invalid booking time format, expected HH:MM"
	msgSlotConflict       = "This time slot is already booked."
	msgPackageNotFound    = "package not found"
	msgInvalidBookingDate = "booking date cannot be in the past"
	msgDateTooFar         = "booking date is too far in the future"
	msgSlotInPast         = "selected time slot has already passed"
	msgStoreUnavailable   = "booking could not be saved, please try again"
)

type Handler struct {
	useCase  CreateBookingUseCase
	notifier Notifier
	logger   Logger
}

func NewHandler(useCase CreateBookingUseCase, notifier Notifier, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		notifier: notifier,
		logger:   logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		// Определяем, что именно не распарсилось - дата или время
		if _, dateErr := time.Parse(domain.DateFormat, req.BookingDate); dateErr != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
		} else {
			handlers.RespondBadRequest(w, msgInvalidTime)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: package_id=%s, date=%s, time=%s",
				req.PackageID, req.BookingDate, req.BookingTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, createBooking.ErrPackageNotFound):
			h.logger.Warn("POST /bookings - Package not found: package_id=%s", req.PackageID)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			handlers.RespondBadRequest(w, validationMessage(err))

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Date in the past: package_id=%s, date=%s", req.PackageID, req.BookingDate)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			h.logger.Warn("POST /bookings - Date too far in future: package_id=%s, date=%s", req.PackageID, req.BookingDate)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrSlotInPast):
			h.logger.Warn("POST /bookings - Slot in the past: package_id=%s, date=%s, time=%s",
				req.PackageID, req.BookingDate, req.BookingTime)
			handlers.RespondBadRequest(w, msgSlotInPast)

		case errors.Is(err, createBooking.ErrStoreUnavailable):
			h.logger.Error("POST /bookings - Store unavailable: package_id=%s, error=%v", req.PackageID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgStoreUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: package_id=%s, error=%v", req.PackageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Ссылки передачи в WhatsApp и календарь собираются после успешной записи
	// и никак не влияют на судьбу бронирования
	message := h.notifier.ConfirmationMessage(result, result.CreatedAt)
	whatsappURL := h.notifier.HandoffURL(message)

	calendarURL, err := h.notifier.CalendarURL(result)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to build calendar link: reference=%s, error=%v",
			result.BookingReference, err)
		calendarURL = ""
	}

	h.logger.Info("POST /bookings - Booking created successfully: reference=%s, package_id=%s",
		result.BookingReference, result.PackageID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, whatsappURL, calendarURL))
}

// validationMessage возвращает текст ошибки валидации без префикса пакета
func validationMessage(err error) string {
	msg := err.Error()
	const prefix = "create_booking: invalid input data: "
	return strings.TrimPrefix(msg, prefix)
}
