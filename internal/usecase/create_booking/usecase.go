package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/elitejetskis/EJS-BookingService/internal/domain"
	bookingRepo "github.com/elitejetskis/EJS-BookingService/internal/infra/storage/booking"
	catalogRepo "github.com/elitejetskis/EJS-BookingService/internal/infra/storage/catalog"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo        BookingRepository
	catalogRepo        CatalogRepository
	txManager          TransactionManager
	advanceBookingDays int
	timeProvider       TimeProvider
	logger             Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	txManager TransactionManager,
	advanceBookingDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:        bookingRepo,
		catalogRepo:        catalogRepo,
		txManager:          txManager,
		advanceBookingDays: advanceBookingDays,
		timeProvider:       &RealTimeProvider{},
		logger:             logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Протокол записи: проверка занятости слота и вставка выполняются в одной
// сериализуемой транзакции с блокировкой найденных строк (FOR UPDATE).
// Два конкурирующих клиента на один слот сериализуются хранилищем:
// первый вставляет строку, второй получает ErrSlotConflict.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: package=%s, date=%s, time=%s, participants=%d",
		req.PackageID, req.Date.Format(domain.DateFormat), req.StartTime, req.NumParticipants)

	// 1. Валидация входных данных - без обращения к хранилищу
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация даты и момента слота
	if err := validateDate(req.Date, now, uc.advanceBookingDays); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}
	if err := validateSlotNotPast(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateBooking: slot time validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем пакет - бронируются только активные пакеты
	pkg, err := uc.catalogRepo.GetActiveByID(ctx, req.PackageID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrPackageNotFound) {
			uc.logger.Warn("CreateBooking: package id=%s not found", req.PackageID)
			return nil, ErrPackageNotFound
		}
		uc.logger.Error("CreateBooking: failed to get package id=%s: %v", req.PackageID, err)
		return nil, fmt.Errorf("%w: failed to get package: %v", ErrStoreUnavailable, err)
	}

	// 5. Верхняя граница участников - по вместимости пакета
	if err := validateParticipants(req.NumParticipants, pkg.MaxParticipants); err != nil {
		uc.logger.Warn("CreateBooking: participants validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 6. Дубликат-проверка и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Ищем неотменённое бронирование на этот слот с блокировкой
		existing, err := uc.bookingRepo.FindActiveBySlot(txCtx, req.PackageID, req.Date, req.StartTime)
		if err != nil && !errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Error("CreateBooking: duplicate check failed: %v", err)
			return fmt.Errorf("%w: duplicate check failed: %v", ErrStoreUnavailable, err)
		}

		if existing != nil {
			uc.logger.Warn("CreateBooking: slot conflict, package=%s date=%s time=%s taken by reference=%s",
				req.PackageID, req.Date.Format(domain.DateFormat), req.StartTime, existing.BookingReference)
			return ErrSlotConflict
		}

		// 6.2. Слот свободен - создаем бронирование
		booking := &domain.Booking{
			BookingReference:    newBookingReference(now),
			PackageID:           req.PackageID,
			BookingDate:         req.Date,
			BookingTime:         req.StartTime,
			CustomerName:        req.CustomerName,
			CustomerEmail:       req.CustomerEmail,
			CustomerPhone:       req.CustomerPhone,
			NumParticipants:     req.NumParticipants,
			EmergencyContact:    req.EmergencyContact,
			SpecialRequirements: req.SpecialRequirements,
			TotalPrice:          req.TotalPrice,
			PromoCode:           req.PromoCode,
			Status:              domain.StatusConfirmed,
			PaymentStatus:       domain.PaymentPending,
			PaymentMethod:       domain.PaymentMethodCash,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrStoreUnavailable, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking reference=%s id=%d",
		result.BookingReference, result.ID)

	return &Response{
		ID:                  result.ID,
		BookingReference:    result.BookingReference,
		PackageID:           result.PackageID,
		PackageName:         pkg.Name,
		DurationMinutes:     pkg.DurationMinutes,
		BookingDate:         result.BookingDate,
		StartTime:           result.BookingTime,
		CustomerName:        result.CustomerName,
		CustomerEmail:       result.CustomerEmail,
		CustomerPhone:       result.CustomerPhone,
		NumParticipants:     result.NumParticipants,
		EmergencyContact:    result.EmergencyContact,
		SpecialRequirements: result.SpecialRequirements,
		TotalPrice:          result.TotalPrice,
		PromoCode:           result.PromoCode,
		Status:              string(result.Status),
		PaymentStatus:       string(result.PaymentStatus),
		PaymentMethod:       string(result.PaymentMethod),
		CreatedAt:           result.CreatedAt,
		UpdatedAt:           result.UpdatedAt,
	}, nil
}
