package create_booking

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elitejetskis/EJS-BookingService/internal/domain"
	bookingRepo "github.com/elitejetskis/EJS-BookingService/internal/infra/storage/booking"
	catalogRepo "github.com/elitejetskis/EJS-BookingService/internal/infra/storage/catalog"
	"github.com/elitejetskis/EJS-BookingService/pkg/ptr"
	"github.com/elitejetskis/EJS-BookingService/pkg/types"
)

// --- фейки ---

type fakeBookingRepo struct {
	findResult *domain.Booking
	findErr    error
	findCalls  int

	createErr   error
	createCalls int
	created     *domain.Booking
}

func (f *fakeBookingRepo) FindActiveBySlot(_ context.Context, _ string, _ time.Time, _ types.TimeString) (*domain.Booking, error) {
	f.findCalls++
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findResult, nil
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}

	created := *booking
	created.ID = 42
	created.CreatedAt = time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC)
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
}

type fakeCatalogRepo struct {
	pkg   *domain.Package
	err   error
	calls int
}

func (f *fakeCatalogRepo) GetActiveByID(_ context.Context, _ string) (*domain.Package, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.pkg, nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// --- вспомогательные данные ---

var testNow = time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC)

func testPackage() *domain.Package {
	return &domain.Package{
		ID:              "sunset-cruise",
		Name:            "Sunset Cruise",
		DurationMinutes: 60,
		PriceAED:        650,
		MaxParticipants: 2,
		IsActive:        true,
	}
}

func validRequest() *Request {
	return &Request{
		PackageID:       "sunset-cruise",
		Date:            time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		CustomerName:    "Sara Haddad",
		CustomerEmail:   "sara@example.com",
		CustomerPhone:   "+971501234567",
		NumParticipants: 2,
		TotalPrice:      650,
	}
}

func newTestUseCase(bookings *fakeBookingRepo, catalog *fakeCatalogRepo, tx *fakeTxManager) *UseCase {
	uc := NewUseCase(bookings, catalog, tx, 60, noopLogger{})
	uc.timeProvider = &fixedTime{now: testNow}
	return uc
}

// --- тесты ---

func TestExecute_Success(t *testing.T) {
	bookings := &fakeBookingRepo{findErr: bookingRepo.ErrBookingNotFound}
	catalog := &fakeCatalogRepo{pkg: testPackage()}
	tx := &fakeTxManager{}
	uc := newTestUseCase(bookings, catalog, tx)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Regexp(t, regexp.MustCompile(`^EJ-20260914-[0-9A-F]{8}$`), resp.BookingReference)
	assert.Equal(t, "Sunset Cruise", resp.PackageName)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, string(domain.PaymentPending), resp.PaymentStatus)
	assert.Equal(t, string(domain.PaymentMethodCash), resp.PaymentMethod)

	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, 1, bookings.findCalls)
	assert.Equal(t, 1, bookings.createCalls)
}

func TestExecute_SlotConflict(t *testing.T) {
	existing := &domain.Booking{
		BookingReference: "EJ-20260913-AABBCCDD",
		Status:           domain.StatusConfirmed,
	}
	bookings := &fakeBookingRepo{findResult: existing}
	catalog := &fakeCatalogRepo{pkg: testPackage()}
	uc := newTestUseCase(bookings, catalog, &fakeTxManager{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrSlotConflict)
	assert.Nil(t, resp)

	// Вставка не выполняется - слот уже занят
	assert.Equal(t, 0, bookings.createCalls)
}

func TestExecute_ValidationRejectsWithoutStoreAccess(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"missing package", func(r *Request) { r.PackageID = "" }},
		{"missing name", func(r *Request) { r.CustomerName = "   " }},
		{"missing email", func(r *Request) { r.CustomerEmail = "" }},
		{"invalid email", func(r *Request) { r.CustomerEmail = "not-an-email" }},
		{"email without domain dot", func(r *Request) { r.CustomerEmail = "sara@host" }},
		{"missing phone", func(r *Request) { r.CustomerPhone = "" }},
		{"invalid phone", func(r *Request) { r.CustomerPhone = "12345" }},
		{"phone with letters", func(r *Request) { r.CustomerPhone = "+9715O1234567" }},
		{"zero participants", func(r *Request) { r.NumParticipants = 0 }},
		{"negative participants", func(r *Request) { r.NumParticipants = -3 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookings := &fakeBookingRepo{}
			catalog := &fakeCatalogRepo{pkg: testPackage()}
			uc := newTestUseCase(bookings, catalog, &fakeTxManager{})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidInput)

			// Невалидный запрос отклоняется без единого похода в хранилище
			assert.Equal(t, 0, catalog.calls)
			assert.Equal(t, 0, bookings.findCalls)
			assert.Equal(t, 0, bookings.createCalls)
		})
	}
}

func TestExecute_PhoneWithSpacesAccepted(t *testing.T) {
	bookings := &fakeBookingRepo{findErr: bookingRepo.ErrBookingNotFound}
	catalog := &fakeCatalogRepo{pkg: testPackage()}
	uc := newTestUseCase(bookings, catalog, &fakeTxManager{})

	req := validRequest()
	req.CustomerPhone = "+971 50 123 4567"

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestExecute_ParticipantsExceedPackageLimit(t *testing.T) {
	bookings := &fakeBookingRepo{}
	catalog := &fakeCatalogRepo{pkg: testPackage()} // MaxParticipants = 2
	uc := newTestUseCase(bookings, catalog, &fakeTxManager{})

	req := validRequest()
	req.NumParticipants = 3

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 0, bookings.createCalls)
}

func TestExecute_DateInPast(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogRepo{pkg: testPackage()}, &fakeTxManager{})

	req := validRequest()
	req.Date = testNow.AddDate(0, 0, -1)

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_DateTooFarInFuture(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogRepo{pkg: testPackage()}, &fakeTxManager{})

	req := validRequest()
	req.Date = testNow.AddDate(0, 0, 61)

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestExecute_SlotInPastToday(t *testing.T) {
	bookings := &fakeBookingRepo{}
	uc := newTestUseCase(bookings, &fakeCatalogRepo{pkg: testPackage()}, &fakeTxManager{})

	req := validRequest()
	req.Date = testNow // сегодня, now = 12:00
	req.StartTime = "11:30"

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrSlotInPast)
	assert.Equal(t, 0, bookings.findCalls)
}

func TestExecute_SlotEqualToNowRejected(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogRepo{pkg: testPackage()}, &fakeTxManager{})

	req := validRequest()
	req.Date = testNow
	req.StartTime = "12:00"

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrSlotInPast)
}

func TestExecute_PackageNotFound(t *testing.T) {
	catalog := &fakeCatalogRepo{err: catalogRepo.ErrPackageNotFound}
	bookings := &fakeBookingRepo{}
	uc := newTestUseCase(bookings, catalog, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrPackageNotFound)
	assert.Equal(t, 0, bookings.createCalls)
}

func TestExecute_StoreUnavailableOnCreate(t *testing.T) {
	bookings := &fakeBookingRepo{
		findErr:   bookingRepo.ErrBookingNotFound,
		createErr: errors.New("connection refused"),
	}
	uc := newTestUseCase(bookings, &fakeCatalogRepo{pkg: testPackage()}, &fakeTxManager{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrStoreUnavailable)

	// Никакого ответа с номером без записанной строки
	assert.Nil(t, resp)
}

func TestExecute_StoreUnavailableOnDuplicateCheck(t *testing.T) {
	bookings := &fakeBookingRepo{findErr: errors.New("connection refused")}
	uc := newTestUseCase(bookings, &fakeCatalogRepo{pkg: testPackage()}, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Equal(t, 0, bookings.createCalls)
}

func TestExecute_OptionalFieldsPersisted(t *testing.T) {
	bookings := &fakeBookingRepo{findErr: bookingRepo.ErrBookingNotFound}
	uc := newTestUseCase(bookings, &fakeCatalogRepo{pkg: testPackage()}, &fakeTxManager{})

	req := validRequest()
	req.EmergencyContact = ptr.Ptr("+971509876543")
	req.SpecialRequirements = ptr.Ptr("Birthday surprise")
	req.PromoCode = ptr.Ptr("SUMMER10")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, bookings.created)
	assert.Equal(t, "+971509876543", *bookings.created.EmergencyContact)
	assert.Equal(t, "Birthday surprise", *bookings.created.SpecialRequirements)
	assert.Equal(t, "SUMMER10", *resp.PromoCode)
}

func TestNewBookingReference_Format(t *testing.T) {
	ref := newBookingReference(testNow)
	assert.Regexp(t, regexp.MustCompile(`^EJ-20260914-[0-9A-F]{8}$`), ref)
}

func TestNewBookingReference_Uniqueness(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		ref := newBookingReference(testNow)
		_, dup := seen[ref]
		require.False(t, dup, "duplicate reference generated: %s", ref)
		seen[ref] = struct{}{}
	}
}
