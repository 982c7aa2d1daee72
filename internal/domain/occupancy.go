package domain

import (
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/pkg/types"
)

// Occupancy снимок занятости: дата (YYYY-MM-DD) -> множество занятых слотов
// Производное read-only представление, всегда строится заново из хранилища
type Occupancy map[string]map[types.TimeString]struct{}

// NewOccupancy создает пустой снимок занятости
func NewOccupancy() Occupancy {
	return make(Occupancy)
}

// Add помечает слот занятым
func (o Occupancy) Add(dateKey string, slot types.TimeString) {
	if _, ok := o[dateKey]; !ok {
		o[dateKey] = make(map[types.TimeString]struct{})
	}
	o[dateKey][slot] = struct{}{}
}

// IsBooked возвращает true, если слот занят
func (o Occupancy) IsBooked(date time.Time, slot types.TimeString) bool {
	slots, ok := o[date.Format(DateFormat)]
	if !ok {
		return false
	}
	_, booked := slots[slot]
	return booked
}

// DayHasBookings возвращает true, если на дату есть хотя бы одно занятое время
// Используется для маркера дня в календаре
func (o Occupancy) DayHasBookings(date time.Time) bool {
	slots, ok := o[date.Format(DateFormat)]
	return ok && len(slots) > 0
}

// SlotsFor возвращает занятые слоты даты в произвольном порядке
func (o Occupancy) SlotsFor(date time.Time) []types.TimeString {
	slots, ok := o[date.Format(DateFormat)]
	if !ok {
		return nil
	}

	result := make([]types.TimeString, 0, len(slots))
	for slot := range slots {
		result = append(result, slot)
	}
	return result
}
