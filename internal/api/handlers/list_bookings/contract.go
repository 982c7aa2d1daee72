package list_bookings

import (
	"context"

	"github.com/m04kA/PhotoStudio-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	ListForAdmin(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
