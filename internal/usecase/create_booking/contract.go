package create_booking

import (
	"context"
	"time"

	"github.com/elitejetskis/EJS-BookingService/internal/domain"
	"github.com/elitejetskis/EJS-BookingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	FindActiveBySlot(ctx context.Context, packageID string, date time.Time, startTime types.TimeString) (*domain.Booking, error)
}

// CatalogRepository интерфейс репозитория каталога туров
type CatalogRepository interface {
	GetActiveByID(ctx context.Context, id string) (*domain.Package, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
