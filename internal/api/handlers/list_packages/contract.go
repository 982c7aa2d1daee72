package list_packages

import (
	"context"

	"github.com/m04kA/PhotoStudio-BookingService/internal/service/packages/models"
)

type PackageService interface {
	List(ctx context.Context, activeOnly bool) (*models.PackageListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
