package create_package

import (
	"context"

	"github.com/m04kA/PhotoStudio-BookingService/internal/service/packages/models"
)

type PackageService interface {
	Create(ctx context.Context, req *models.CreatePackageRequest) (*models.PackageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
