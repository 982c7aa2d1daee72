package update_package

import (
	"context"

	"github.com/m04kA/PhotoStudio-BookingService/internal/service/packages/models"
)

type PackageService interface {
	Update(ctx context.Context, id string, req *models.UpdatePackageRequest) (*models.PackageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
