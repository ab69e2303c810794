package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/elitejetskis/EJS-BookingService/internal/domain"
	catalogRepo "github.com/elitejetskis/EJS-BookingService/internal/infra/storage/catalog"
)

// UseCase use case для получения сетки слотов с классификацией доступности
type UseCase struct {
	bookingRepo  BookingRepository
	catalogRepo  CatalogRepository
	window       Window
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	window Window,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		window:       window,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения сетки слотов
// Каждый кандидатный слот классифицируется как past / booked / available
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: package=%s, date=%s",
		req.PackageID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация даты
	if err := validateDate(req.Date, now, uc.window.AdvanceBookingDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем пакет - слоты выдаются только для активных пакетов
	pkg, err := uc.catalogRepo.GetActiveByID(ctx, req.PackageID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrPackageNotFound) {
			uc.logger.Warn("GetAvailableSlots: package id=%s not found", req.PackageID)
			return nil, ErrPackageNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get package id=%s: %v", req.PackageID, err)
		return nil, fmt.Errorf("%w: failed to get package: %v", ErrStoreUnavailable, err)
	}

	// 5. Генерируем статичную сетку кандидатных времен
	grid, err := generateTimeGrid(uc.window)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time grid: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time grid: %v", ErrInternal, err)
	}

	// 6. Получаем занятые времена (только неотменённые бронирования)
	bookedTimes, err := uc.bookingRepo.GetBookedTimes(ctx, req.PackageID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get booked times: %v", err)
		return nil, fmt.Errorf("%w: failed to get booked times: %v", ErrStoreUnavailable, err)
	}

	// 7. Классифицируем каждый слот
	slots := classifySlots(grid, pkg.DurationMinutes, bookedTimes, req.Date, now)

	uc.logger.Info("GetAvailableSlots: classified %d slots for package=%s, date=%s (%d booked)",
		len(slots), req.PackageID, req.Date.Format(domain.DateFormat), len(bookedTimes))

	return &Response{
		PackageID: req.PackageID,
		Date:      req.Date,
		Slots:     slots,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.PackageID == "" {
		return fmt.Errorf("%w: packageId is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата подходит для запроса слотов
func validateDate(requestDate time.Time, now time.Time, advanceBookingDays int) error {
	if isDateInPast(requestDate, now) {
		return ErrInvalidDate
	}

	if advanceBookingDays == 0 {
		return nil
	}

	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, advanceBookingDays)

	requestDateOnly := time.Date(requestDate.Year(), requestDate.Month(), requestDate.Day(), 0, 0, 0, 0, requestDate.Location())

	if requestDateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only view %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}
