package domain

import (
	"fmt"

	"github.com/m04kA/PhotoStudio-BookingService/pkg/types"
)

// SlotState состояние слота в дневной сетке
type SlotState string

const (
	SlotAvailable SlotState = "available"
	SlotBooked    SlotState = "booked"
	SlotSelected  SlotState = "selected"
)

// ScheduleEntry один слот дневной сетки с его состоянием
type ScheduleEntry struct {
	Slot  types.TimeString
	State SlotState
}

// SlotCatalog фиксированный каталог слотов рабочего дня студии
// Слоты генерируются от StartHour до EndHour (исключительно) с шагом StepMinutes
type SlotCatalog struct {
	StartHour   int
	EndHour     int
	StepMinutes int
}

// NewSlotCatalog создает каталог, подставляя дефолты вместо нулевых значений
func NewSlotCatalog(startHour, endHour, stepMinutes int) SlotCatalog {
	c := SlotCatalog{StartHour: startHour, EndHour: endHour, StepMinutes: stepMinutes}
	if c.StepMinutes <= 0 {
		c.StepMinutes = DefaultSlotStepMinutes
	}
	if c.EndHour <= c.StartHour {
		c.StartHour = DefaultSlotStartHour
		c.EndHour = DefaultSlotEndHour
	}
	return c
}

// Generate возвращает упорядоченный список слотов каталога
// Слот, конец которого выходит за EndHour, в каталог не попадает
func (c SlotCatalog) Generate() []types.TimeString {
	open := types.TimeString(fmt.Sprintf("%02d:00", c.StartHour))
	close := types.TimeString(fmt.Sprintf("%02d:00", c.EndHour))

	slots := make([]types.TimeString, 0)
	current := open

	for current.IsBefore(close) {
		slotEnd, err := current.AddMinutes(c.StepMinutes)
		if err != nil {
			break
		}
		if slotEnd.IsAfter(close) {
			break
		}

		slots = append(slots, current)
		current = slotEnd
	}

	return slots
}

// Contains возвращает true, если слот входит в каталог
func (c SlotCatalog) Contains(slot types.TimeString) bool {
	for _, s := range c.Generate() {
		if s == slot {
			return true
		}
	}
	return false
}

// Size возвращает количество слотов в каталоге
func (c SlotCatalog) Size() int {
	return len(c.Generate())
}
