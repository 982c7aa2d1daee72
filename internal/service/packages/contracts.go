package packages

import (
	"context"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// PackageRepository интерфейс репозитория пакетов
type PackageRepository interface {
	Create(ctx context.Context, pkg *domain.StudioPackage) (*domain.StudioPackage, error)
	GetByID(ctx context.Context, id string) (*domain.StudioPackage, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.StudioPackage, error)
	Update(ctx context.Context, pkg *domain.StudioPackage) error
	Delete(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
