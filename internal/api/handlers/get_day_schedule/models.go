package get_day_schedule

import (
	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	daySchedule "github.com/m04kA/PhotoStudio-BookingService/internal/usecase/get_day_schedule"
)

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	Date  string      `json:"date"` // "2026-03-15"
	Slots []SlotEntry `json:"slots"`
}

// SlotEntry слот сетки с состоянием
type SlotEntry struct {
	Time  string `json:"time"`  // "10:00"
	State string `json:"state"` // available | booked | selected
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(result *daySchedule.Response) *ScheduleResponse {
	slots := make([]SlotEntry, 0, len(result.Entries))
	for _, entry := range result.Entries {
		slots = append(slots, SlotEntry{
			Time:  entry.Time.String(),
			State: entry.State,
		})
	}

	return &ScheduleResponse{
		Date:  result.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}
