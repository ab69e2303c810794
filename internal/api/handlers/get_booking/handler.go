package get_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/elitejetskis/EJS-BookingService/internal/api/handlers"
	"github.com/elitejetskis/EJS-BookingService/internal/service/bookings"
)

const (
	msgBookingNotFound = "booking not found"
	msgInvalidInput    = "booking reference is required"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{reference}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	booking, err := h.service.GetByReference(r.Context(), reference)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/%s - Booking not found", reference)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings/%s - Invalid input: %v", reference, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /bookings/%s - Failed: %v", reference, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/%s - Booking returned", reference)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(booking))
}
