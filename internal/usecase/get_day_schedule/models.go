package get_day_schedule

import (
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/pkg/types"
)

// Request модель запроса расписания дня
type Request struct {
	Date     time.Time         // Дата, на которую запрашивается расписание
	Selected *types.TimeString // Предварительно выбранный пользователем слот (опционально)
}

// Response модель ответа с полной сеткой слотов дня
// Сетка всегда содержит все слоты каталога, включая занятые
type Response struct {
	Date    time.Time
	Entries []Entry
}

// Entry слот сетки с его состоянием
type Entry struct {
	Time  types.TimeString // Время начала слота
	State string           // available | booked | selected
}
