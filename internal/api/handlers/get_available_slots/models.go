package get_available_slots

import (
	"github.com/elitejetskis/EJS-BookingService/internal/domain"
	getAvailableSlots "github.com/elitejetskis/EJS-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse слот сетки в HTTP ответе
type SlotResponse struct {
	StartTime       string `json:"startTime"` // "10:00"
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"` // available | booked | past
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	PackageID string         `json:"packageId"`
	Date      string         `json:"date"`
	Slots     []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
			Status:          string(slot.Status),
		})
	}

	return &AvailableSlotsResponse{
		PackageID: resp.PackageID,
		Date:      resp.Date.Format(domain.DateFormat),
		Slots:     slots,
	}
}
