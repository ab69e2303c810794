package get_available_slots

import (
	"time"

	"github.com/elitejetskis/EJS-BookingService/internal/domain"
	"github.com/elitejetskis/EJS-BookingService/pkg/types"
)

// generateTimeGrid генерирует все кандидатные времена начала за день
// Сетка статична: от открытия до закрытия (включительно) с фиксированным шагом.
// Занятость и прошедшее время здесь не учитываются - это делает classifySlots.
func generateTimeGrid(window Window) ([]types.TimeString, error) {
	openTime, err := types.NewTimeStringFromString(window.OpenTime)
	if err != nil {
		return nil, err
	}

	closeTime, err := types.NewTimeStringFromString(window.CloseTime)
	if err != nil {
		return nil, err
	}

	grid := make([]types.TimeString, 0)
	current := openTime

	for !current.IsAfter(closeTime) {
		grid = append(grid, current)

		next, err := current.AddMinutes(window.SlotStepMinutes)
		if err != nil {
			// Вышли за пределы суток - сетка закончилась
			break
		}
		current = next
	}

	return grid, nil
}

// classifySlots классифицирует каждое кандидатное время как past / booked / available
//
// Порядок проверок фиксирован: "прошедшее" перекрывает "занятое" -
// слот с наступившим моментом не выбирается независимо от занятости.
func classifySlots(
	grid []types.TimeString,
	durationMinutes int,
	bookedTimes []types.TimeString,
	date time.Time,
	now time.Time,
) []domain.Slot {
	booked := make(map[types.TimeString]struct{}, len(bookedTimes))
	for _, t := range bookedTimes {
		booked[t] = struct{}{}
	}

	sameDay := isSameDay(date, now)
	currentTime := types.NewTimeString(now)

	slots := make([]domain.Slot, len(grid))
	for i, start := range grid {
		status := domain.SlotAvailable

		switch {
		case sameDay && !start.IsAfter(currentTime):
			status = domain.SlotPast
		case isBooked(booked, start):
			status = domain.SlotBooked
		}

		slots[i] = domain.Slot{
			StartTime:       start,
			DurationMinutes: durationMinutes,
			Status:          status,
		}
	}

	return slots
}

func isBooked(booked map[types.TimeString]struct{}, start types.TimeString) bool {
	_, ok := booked[start]
	return ok
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
