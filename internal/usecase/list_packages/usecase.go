package list_packages

import (
	"context"
	"fmt"

	"github.com/elitejetskis/EJS-BookingService/internal/domain"
)

// UseCase use case чтения каталога активных туров
type UseCase struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalogRepo CatalogRepository, logger Logger) *UseCase {
	return &UseCase{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// Execute возвращает активные пакеты, упорядоченные для отображения
// Пустой каталог трактуется как недоступность: предлагать нечего,
// и тихо фабриковать пакеты вместо данных хранилища нельзя
func (uc *UseCase) Execute(ctx context.Context) ([]*domain.Package, error) {
	packages, err := uc.catalogRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Error("ListPackages: failed to list active packages: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	if len(packages) == 0 {
		uc.logger.Warn("ListPackages: no active packages in catalog")
		return nil, ErrCatalogUnavailable
	}

	uc.logger.Info("ListPackages: fetched %d active packages", len(packages))
	return packages, nil
}
