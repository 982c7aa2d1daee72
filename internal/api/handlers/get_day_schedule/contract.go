package get_day_schedule

import (
	"context"

	daySchedule "github.com/m04kA/PhotoStudio-BookingService/internal/usecase/get_day_schedule"
)

type GetDayScheduleUseCase interface {
	Execute(ctx context.Context, req *daySchedule.Request) (*daySchedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
