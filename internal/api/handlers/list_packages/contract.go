package list_packages

import (
	"context"

	"github.com/elitejetskis/EJS-BookingService/internal/domain"
)

type ListPackagesUseCase interface {
	Execute(ctx context.Context) ([]*domain.Package, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
