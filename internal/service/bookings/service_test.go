package bookings

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elitejetskis/EJS-BookingService/internal/domain"
	bookingRepo "github.com/elitejetskis/EJS-BookingService/internal/infra/storage/booking"
	"github.com/elitejetskis/EJS-BookingService/internal/service/bookings/models"
)

// --- фейки ---

type fakeBookingRepo struct {
	booking *domain.Booking
	getErr  error

	cancelErr    error
	cancelCalls  int
	cancelReason string
}

func (f *fakeBookingRepo) GetByReference(_ context.Context, _ string) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, _ string, reason string) error {
	f.cancelCalls++
	f.cancelReason = reason
	return f.cancelErr
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func confirmedBooking() *domain.Booking {
	return &domain.Booking{
		ID:               7,
		BookingReference: "EJ-20260914-AABBCCDD",
		PackageID:        "sunset-cruise",
		BookingDate:      time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
		BookingTime:      "10:00",
		CustomerName:     "Sara Haddad",
		Status:           domain.StatusConfirmed,
		PaymentStatus:    domain.PaymentPending,
		PaymentMethod:    domain.PaymentMethodCash,
	}
}

// --- тесты ---

func TestGetByReference_Success(t *testing.T) {
	svc := NewService(&fakeBookingRepo{booking: confirmedBooking()}, noopLogger{})

	resp, err := svc.GetByReference(context.Background(), "EJ-20260914-AABBCCDD")
	require.NoError(t, err)

	assert.Equal(t, "EJ-20260914-AABBCCDD", resp.BookingReference)
	assert.Equal(t, "10:00", resp.BookingTime)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
}

func TestGetByReference_NotFound(t *testing.T) {
	svc := NewService(&fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}, noopLogger{})

	_, err := svc.GetByReference(context.Background(), "EJ-20260914-FFFFFFFF")
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByReference_EmptyReference(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, noopLogger{})

	_, err := svc.GetByReference(context.Background(), "   ")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel_Success(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	svc := NewService(repo, noopLogger{})

	err := svc.Cancel(context.Background(), "EJ-20260914-AABBCCDD",
		&models.CancelBookingRequest{CancellationReason: "weather"})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.cancelCalls)
	assert.Equal(t, "weather", repo.cancelReason)
}

func TestCancel_PendingBookingAllowed(t *testing.T) {
	booking := confirmedBooking()
	booking.Status = domain.StatusPending
	repo := &fakeBookingRepo{booking: booking}
	svc := NewService(repo, noopLogger{})

	err := svc.Cancel(context.Background(), booking.BookingReference, &models.CancelBookingRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.cancelCalls)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	booking := confirmedBooking()
	booking.Status = domain.StatusCancelled
	repo := &fakeBookingRepo{booking: booking}
	svc := NewService(repo, noopLogger{})

	err := svc.Cancel(context.Background(), booking.BookingReference, &models.CancelBookingRequest{})
	require.ErrorIs(t, err, ErrCannotCancel)
	assert.Equal(t, 0, repo.cancelCalls)
}

func TestCancel_CompletedBooking(t *testing.T) {
	booking := confirmedBooking()
	booking.Status = domain.StatusCompleted
	repo := &fakeBookingRepo{booking: booking}
	svc := NewService(repo, noopLogger{})

	err := svc.Cancel(context.Background(), booking.BookingReference, &models.CancelBookingRequest{})
	require.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_NotFound(t *testing.T) {
	svc := NewService(&fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}, noopLogger{})

	err := svc.Cancel(context.Background(), "EJ-20260914-FFFFFFFF", &models.CancelBookingRequest{})
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_ReasonTooLong(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	svc := NewService(repo, noopLogger{})

	err := svc.Cancel(context.Background(), "EJ-20260914-AABBCCDD", &models.CancelBookingRequest{
		CancellationReason: strings.Repeat("x", domain.MaxCancellationReasonLength+1),
	})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 0, repo.cancelCalls)
}

func TestCancel_RepositoryError(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking(), cancelErr: errors.New("connection refused")}
	svc := NewService(repo, noopLogger{})

	err := svc.Cancel(context.Background(), "EJ-20260914-AABBCCDD", &models.CancelBookingRequest{})
	require.ErrorIs(t, err, ErrInternal)
}
