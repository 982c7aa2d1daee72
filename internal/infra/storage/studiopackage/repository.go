package studiopackage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/dbmetrics"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/psqlbuilder"
)

var packageColumns = []string{
	"id",
	"name",
	"description",
	"price",
	"active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с пакетами фотосессий
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пакетов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый пакет
func (r *Repository) Create(ctx context.Context, pkg *domain.StudioPackage) (*domain.StudioPackage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("packages").
		Columns("id", "name", "description", "price", "active").
		Values(pkg.ID, pkg.Name, pkg.Description, pkg.Price, pkg.Active).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	pkg.CreatedAt = createdAt.Time
	pkg.UpdatedAt = updatedAt.Time

	return pkg, nil
}

// GetByID получает пакет по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.StudioPackage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(packageColumns...).
		From("packages").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var pkg domain.StudioPackage
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&pkg.ID,
		&pkg.Name,
		&pkg.Description,
		&pkg.Price,
		&pkg.Active,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPackageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan package: %v", ErrScanRow, err)
	}

	pkg.CreatedAt = createdAt.Time
	pkg.UpdatedAt = updatedAt.Time

	return &pkg, nil
}

// List получает список пакетов
// При activeOnly = true возвращаются только активные пакеты
func (r *Repository) List(ctx context.Context, activeOnly bool) ([]*domain.StudioPackage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(packageColumns...).
		From("packages").
		OrderBy("price ASC")

	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	packages := make([]*domain.StudioPackage, 0)
	for rows.Next() {
		var pkg domain.StudioPackage
		var createdAt, updatedAt sql.NullTime

		err = rows.Scan(
			&pkg.ID,
			&pkg.Name,
			&pkg.Description,
			&pkg.Price,
			&pkg.Active,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		pkg.CreatedAt = createdAt.Time
		pkg.UpdatedAt = updatedAt.Time
		packages = append(packages, &pkg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return packages, nil
}

// Update обновляет пакет
func (r *Repository) Update(ctx context.Context, pkg *domain.StudioPackage) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("packages").
		Set("name", pkg.Name).
		Set("description", pkg.Description).
		Set("price", pkg.Price).
		Set("active", pkg.Active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": pkg.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPackageNotFound
	}

	return nil
}

// Delete удаляет пакет
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("packages").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPackageNotFound
	}

	return nil
}
