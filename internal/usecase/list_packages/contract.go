package list_packages

import (
	"context"

	"github.com/elitejetskis/EJS-BookingService/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога туров
type CatalogRepository interface {
	ListActive(ctx context.Context) ([]*domain.Package, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
