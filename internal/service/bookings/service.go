package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/elitejetskis/EJS-BookingService/internal/domain"
	bookingRepo "github.com/elitejetskis/EJS-BookingService/internal/infra/storage/booking"
	"github.com/elitejetskis/EJS-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с существующими бронированиями
// Создание бронирований идет через usecase create_booking; здесь только
// чтение по номеру и отмена (административный путь)
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByReference получает бронирование по клиентскому номеру
func (s *Service) GetByReference(ctx context.Context, reference string) (*models.BookingResponse, error) {
	s.logger.Info("GetByReference: fetching booking reference=%s", reference)

	if strings.TrimSpace(reference) == "" {
		return nil, fmt.Errorf("%w: booking reference is required", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByReference: booking reference=%s not found", reference)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByReference: repository error for reference=%s: %v", reference, err)
		return nil, fmt.Errorf("%w: GetByReference - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// Cancel отменяет бронирование по клиентскому номеру
// Отмена освобождает слот: после неё тот же (package, date, time)
// может быть забронирован заново
func (s *Service) Cancel(ctx context.Context, reference string, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking reference=%s", reference)

	if strings.TrimSpace(reference) == "" {
		return fmt.Errorf("%w: booking reference is required", ErrInvalidInput)
	}
	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason is too long", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking reference=%s not found", reference)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for reference=%s: %v", reference, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking reference=%s cannot be cancelled, status=%s", reference, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, reference, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for reference=%s: %v", reference, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking reference=%s", reference)
	return nil
}
