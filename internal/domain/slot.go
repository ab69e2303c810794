package domain

import "github.com/elitejetskis/EJS-BookingService/pkg/types"

// SlotStatus классификация слота для UI выбора времени
type SlotStatus string

const (
	// SlotAvailable слот в будущем и не занят активным бронированием
	SlotAvailable SlotStatus = "available"
	// SlotBooked слот в будущем, но занят активным бронированием
	SlotBooked SlotStatus = "booked"
	// SlotPast момент слота уже наступил - не выбирается независимо от занятости
	SlotPast SlotStatus = "past"
)

// Slot represents one candidate start time of the daily booking grid
type Slot struct {
	StartTime       types.TimeString
	DurationMinutes int
	Status          SlotStatus
}

// IsSelectable returns true if the slot can be picked for a new booking
func (s *Slot) IsSelectable() bool {
	return s.Status == SlotAvailable
}
