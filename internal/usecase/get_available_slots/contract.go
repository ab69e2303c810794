package get_available_slots

import (
	"context"
	"time"

	"github.com/elitejetskis/EJS-BookingService/internal/domain"
	"github.com/elitejetskis/EJS-BookingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetBookedTimes возвращает времена начала неотменённых бронирований
	// пакета на дату, нормализованные до минут
	GetBookedTimes(ctx context.Context, packageID string, date time.Time) ([]types.TimeString, error)
}

// CatalogRepository интерфейс репозитория каталога туров
type CatalogRepository interface {
	GetActiveByID(ctx context.Context, id string) (*domain.Package, error)
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
