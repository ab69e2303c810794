package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/elitejetskis/EJS-BookingService/internal/domain"
	"github.com/elitejetskis/EJS-BookingService/pkg/dbmetrics"
	"github.com/elitejetskis/EJS-BookingService/pkg/psqlbuilder"
	"github.com/elitejetskis/EJS-BookingService/pkg/types"
)

// bookingColumns полный список колонок таблицы bookings
var bookingColumns = []string{
	"id",
	"booking_reference",
	"package_id",
	"booking_date",
	"booking_time",
	"customer_name",
	"customer_email",
	"customer_phone",
	"num_participants",
	"emergency_contact",
	"special_requirements",
	"total_price",
	"promo_code",
	"status",
	"payment_status",
	"payment_method",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Проверка занятости слота и вставка должны выполняться в одной сериализуемой
// транзакции - иначе между ними остается окно гонки двух одновременных клиентов.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"booking_reference",
			"package_id",
			"booking_date",
			"booking_time",
			"customer_name",
			"customer_email",
			"customer_phone",
			"num_participants",
			"emergency_contact",
			"special_requirements",
			"total_price",
			"promo_code",
			"status",
			"payment_status",
			"payment_method",
		).
		Values(
			booking.BookingReference,
			booking.PackageID,
			booking.BookingDate,
			booking.BookingTime,
			booking.CustomerName,
			booking.CustomerEmail,
			booking.CustomerPhone,
			booking.NumParticipants,
			booking.EmergencyContact,
			booking.SpecialRequirements,
			booking.TotalPrice,
			booking.PromoCode,
			booking.Status,
			booking.PaymentStatus,
			booking.PaymentMethod,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// FindActiveBySlot ищет неотменённое бронирование, занимающее слот (package, date, time)
// Это дубликат-проверка протокола записи: не более одной строки со status != cancelled
// на тройку слота. Внутри транзакции найденная строка блокируется через FOR UPDATE,
// чтобы конкурирующая вставка дождалась исхода текущей.
// Возвращает ErrBookingNotFound, если слот свободен.
func (r *Repository) FindActiveBySlot(ctx context.Context, packageID string, date time.Time, startTime types.TimeString) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"package_id": packageID}).
		Where(squirrel.Eq{"booking_date": date}).
		Where(squirrel.Eq{"booking_time": startTime}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		Limit(1)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveBySlot - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveBySlot - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetBookedTimes возвращает времена начала всех неотменённых бронирований
// пакета на указанную дату. Времена нормализованы до минутной гранулярности.
func (r *Repository) GetBookedTimes(ctx context.Context, packageID string, date time.Time) ([]types.TimeString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("booking_time").
		From("bookings").
		Where(squirrel.Eq{"package_id": packageID}).
		Where(squirrel.Eq{"booking_date": date}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		OrderBy("booking_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedTimes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	times := make([]types.TimeString, 0)
	for rows.Next() {
		// Postgres отдает TIME как "HH:MM:SS" - отбрасываем секунды
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("%w: GetBookedTimes - scan booking_time: %v", ErrScanRow, err)
		}

		normalized, err := types.NewTimeStringFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: GetBookedTimes - normalize booking_time %q: %v", ErrScanRow, raw, err)
		}
		times = append(times, normalized)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBookedTimes - rows error: %v", ErrScanRow, err)
	}

	return times, nil
}

// GetByReference получает бронирование по клиентскому номеру
func (r *Repository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"booking_reference": reference}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByReference - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReference - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// Cancel отменяет бронирование с указанием причины
// Отмена освобождает слот (package, date, time) для повторного бронирования
func (r *Repository) Cancel(ctx context.Context, reference string, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"booking_reference": reference}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку результата в бронирование
func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var rawTime string
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.BookingReference,
		&booking.PackageID,
		&booking.BookingDate,
		&rawTime,
		&booking.CustomerName,
		&booking.CustomerEmail,
		&booking.CustomerPhone,
		&booking.NumParticipants,
		&booking.EmergencyContact,
		&booking.SpecialRequirements,
		&booking.TotalPrice,
		&booking.PromoCode,
		&booking.Status,
		&booking.PaymentStatus,
		&booking.PaymentMethod,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	normalized, err := types.NewTimeStringFromString(rawTime)
	if err != nil {
		return nil, err
	}

	booking.BookingTime = normalized
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}
