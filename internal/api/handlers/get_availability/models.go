package get_availability

import (
	"sort"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// AvailabilityResponse HTTP response model
// Ключи bookedSlots - даты месяца, значения - занятые слоты по возрастанию
type AvailabilityResponse struct {
	Month       string              `json:"month"` // "2026-03"
	BookedSlots map[string][]string `json:"bookedSlots"`
}

// FromOccupancy конвертирует снимок занятости в response
func FromOccupancy(month string, occupancy domain.Occupancy) *AvailabilityResponse {
	booked := make(map[string][]string, len(occupancy))
	for dateKey, slots := range occupancy {
		times := make([]string, 0, len(slots))
		for slot := range slots {
			times = append(times, slot.String())
		}
		sort.Strings(times)
		booked[dateKey] = times
	}

	return &AvailabilityResponse{
		Month:       month,
		BookedSlots: booked,
	}
}
