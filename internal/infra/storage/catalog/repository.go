package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/elitejetskis/EJS-BookingService/internal/domain"
	"github.com/elitejetskis/EJS-BookingService/pkg/dbmetrics"
	"github.com/elitejetskis/EJS-BookingService/pkg/psqlbuilder"
)

var packageColumns = []string{
	"id",
	"name",
	"duration_minutes",
	"price_aed",
	"description",
	"image_url",
	"max_participants",
	"is_active",
	"display_order",
	"created_at",
}

// Repository репозиторий каталога туров (только чтение)
// Каталог наполняется внешним административным процессом
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActive возвращает активные пакеты в порядке display_order
func (r *Repository) ListActive(ctx context.Context) ([]*domain.Package, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(packageColumns...).
		From("packages").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("display_order ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	packages := make([]*domain.Package, 0)
	for rows.Next() {
		pkg, err := scanPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan package: %v", ErrScanRow, err)
		}
		packages = append(packages, pkg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %v", ErrScanRow, err)
	}

	return packages, nil
}

// GetActiveByID получает активный пакет по идентификатору
// Возвращает ErrPackageNotFound для несуществующих и деактивированных пакетов -
// новые бронирования принимаются только на активные пакеты
func (r *Repository) GetActiveByID(ctx context.Context, id string) (*domain.Package, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(packageColumns...).
		From("packages").
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"is_active": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("%w: GetActiveByID - rows error: %v", ErrScanRow, err)
		}
		return nil, ErrPackageNotFound
	}

	pkg, err := scanPackage(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByID - scan package: %v", ErrScanRow, err)
	}

	return pkg, nil
}

func scanPackage(rows *sql.Rows) (*domain.Package, error) {
	var pkg domain.Package
	var createdAt sql.NullTime

	err := rows.Scan(
		&pkg.ID,
		&pkg.Name,
		&pkg.DurationMinutes,
		&pkg.PriceAED,
		&pkg.Description,
		&pkg.ImageURL,
		&pkg.MaxParticipants,
		&pkg.IsActive,
		&pkg.DisplayOrder,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	pkg.CreatedAt = createdAt.Time

	return &pkg, nil
}
