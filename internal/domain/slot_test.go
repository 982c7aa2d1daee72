package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/PhotoStudio-BookingService/pkg/types"
)

func TestSlotCatalog_GenerateDefaultGrid(t *testing.T) {
	catalog := NewSlotCatalog(9, 19, 60)
	slots := catalog.Generate()

	// Рабочий день студии: 10 часовых слотов с 09:00 по 18:00
	assert.Len(t, slots, 10)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("18:00"), slots[9])

	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].IsBefore(slots[i]))
	}
}

func TestSlotCatalog_ZeroValuesFallBackToDefaults(t *testing.T) {
	catalog := NewSlotCatalog(0, 0, 0)

	assert.Equal(t, DefaultSlotStartHour, catalog.StartHour)
	assert.Equal(t, DefaultSlotEndHour, catalog.EndHour)
	assert.Equal(t, DefaultSlotStepMinutes, catalog.StepMinutes)
	assert.Equal(t, 10, catalog.Size())
}

func TestSlotCatalog_HalfHourStep(t *testing.T) {
	catalog := NewSlotCatalog(10, 12, 30)
	slots := catalog.Generate()

	assert.Equal(t, []types.TimeString{"10:00", "10:30", "11:00", "11:30"}, slots)
}

func TestSlotCatalog_DropsSlotCrossingClose(t *testing.T) {
	// Слот 11:40 закончился бы в 12:30, после закрытия - в каталог не попадает
	catalog := NewSlotCatalog(10, 12, 50)
	slots := catalog.Generate()

	assert.Equal(t, []types.TimeString{"10:00", "10:50"}, slots)
	for _, slot := range slots {
		end, err := slot.AddMinutes(50)
		assert.NoError(t, err)
		assert.False(t, end.IsAfter(types.TimeString("12:00")))
	}
}

func TestSlotCatalog_Contains(t *testing.T) {
	catalog := NewSlotCatalog(9, 19, 60)

	assert.True(t, catalog.Contains("09:00"))
	assert.True(t, catalog.Contains("18:00"))
	assert.False(t, catalog.Contains("19:00"))
	assert.False(t, catalog.Contains("09:30"))
	assert.False(t, catalog.Contains("08:00"))
}

func TestBooking_StatusPredicates(t *testing.T) {
	booking := &Booking{Status: StatusPending}
	assert.True(t, booking.IsOccupying())
	assert.True(t, booking.CanBeRejected())
	assert.False(t, booking.IsPaid())

	booking.Status = StatusPaid
	assert.True(t, booking.IsOccupying())
	assert.True(t, booking.CanBeRejected())
	assert.True(t, booking.IsPaid())

	booking.Status = StatusRejected
	assert.False(t, booking.IsOccupying())
	assert.False(t, booking.CanBeRejected())
}

func TestGeoPoint_IsValid(t *testing.T) {
	assert.True(t, GeoPoint{Lat: 55.75, Lng: 37.62}.IsValid())
	assert.True(t, GeoPoint{Lat: -90, Lng: 180}.IsValid())
	assert.False(t, GeoPoint{Lat: 90.1, Lng: 0}.IsValid())
	assert.False(t, GeoPoint{Lat: 0, Lng: -180.5}.IsValid())
}
