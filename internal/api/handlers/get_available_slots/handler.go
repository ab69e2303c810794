package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/elitejetskis/EJS-BookingService/internal/api/handlers"
	"github.com/elitejetskis/EJS-BookingService/internal/domain"
	getAvailableSlots "github.com/elitejetskis/EJS-BookingService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate      = "date query parameter is required"
	msgInvalidDate      = "invalid date format, expected YYYY-MM-DD"
	msgPackageNotFound  = "package not found"
	msgDateInPast       = "date cannot be in the past"
	msgDateTooFar       = "date is too far in the future"
	msgStoreUnavailable = "availability is temporarily unavailable, please try again"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/packages/{packageId}/available-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	packageID := mux.Vars(r)["packageId"]

	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		h.logger.Warn("GET /packages/%s/available-slots - Missing date parameter", packageID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /packages/%s/available-slots - Invalid date %q: %v", packageID, rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		PackageID: packageID,
		Date:      date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrPackageNotFound):
			h.logger.Warn("GET /packages/%s/available-slots - Package not found", packageID)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /packages/%s/available-slots - Date in the past: %s", packageID, rawDate)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			h.logger.Warn("GET /packages/%s/available-slots - Date too far in future: %s", packageID, rawDate)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /packages/%s/available-slots - Invalid input: %v", packageID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrStoreUnavailable):
			// Клиент повторяет запрос, не теряя выбранную дату
			h.logger.Error("GET /packages/%s/available-slots - Store unavailable: %v", packageID, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /packages/%s/available-slots - Failed: %v", packageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /packages/%s/available-slots - Returned %d slots for %s",
		packageID, len(result.Slots), rawDate)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
