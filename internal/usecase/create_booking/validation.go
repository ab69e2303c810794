package create_booking

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/elitejetskis/EJS-BookingService/pkg/types"
)

var (
	// emailPattern стандартный паттерн адреса: непустая локальная часть,
	// @, непустой домен с точкой
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// phonePattern телефон ОАЭ: опциональный код страны (+971 / 00971 / 0)
	// и ровно 9 цифр, пробелы игнорируются
	phonePattern = regexp.MustCompile(`^(\+971|00971|0)?[0-9]{9}$`)
)

// validateRequest валидирует входные данные запроса
// Валидация выполняется ДО любого обращения к хранилищу
func validateRequest(req *Request) error {
	if req.PackageID == "" {
		return fmt.Errorf("%w: packageId is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: bookingDate is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: bookingTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid bookingTime format: %v", ErrInvalidInput, err)
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}

	if req.CustomerEmail == "" {
		return fmt.Errorf("%w: customerEmail is required", ErrInvalidInput)
	}
	if !emailPattern.MatchString(req.CustomerEmail) {
		return fmt.Errorf("%w: customerEmail is not a valid email address", ErrInvalidInput)
	}

	if req.CustomerPhone == "" {
		return fmt.Errorf("%w: customerPhone is required", ErrInvalidInput)
	}
	if !validatePhone(req.CustomerPhone) {
		return fmt.Errorf("%w: customerPhone is not a valid UAE phone number", ErrInvalidInput)
	}

	if req.NumParticipants < 1 {
		return fmt.Errorf("%w: numParticipants must be at least 1", ErrInvalidInput)
	}

	return nil
}

// validatePhone проверяет телефон ОАЭ, предварительно убрав пробелы
func validatePhone(phone string) bool {
	stripped := strings.ReplaceAll(phone, " ", "")
	return phonePattern.MatchString(stripped)
}

// validateParticipants проверяет верхнюю границу участников по вместимости пакета
// Клиентский UI и сервер применяют одну и ту же границу
func validateParticipants(numParticipants, maxParticipants int) error {
	if maxParticipants > 0 && numParticipants > maxParticipants {
		return fmt.Errorf("%w: numParticipants exceeds package limit of %d", ErrInvalidInput, maxParticipants)
	}
	return nil
}

// validateDate проверяет, что дата подходит для бронирования
func validateDate(bookingDate time.Time, now time.Time, advanceBookingDays int) error {
	if isDateInPast(bookingDate, now) {
		return ErrInvalidDate
	}

	// Если advanceBookingDays = 0, нет ограничений на дату
	if advanceBookingDays == 0 {
		return nil
	}

	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, advanceBookingDays)

	bookingDateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, bookingDate.Location())

	if bookingDateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}

// validateSlotNotPast проверяет, что момент слота еще не наступил
// Для сегодняшней даты слот со временем, равным или раньше текущего, не принимается
func validateSlotNotPast(bookingDate time.Time, startTime types.TimeString, now time.Time) error {
	if !isSameDay(bookingDate, now) {
		return nil
	}

	currentTime := types.NewTimeString(now)
	if !startTime.IsAfter(currentTime) {
		return ErrSlotInPast
	}

	return nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
