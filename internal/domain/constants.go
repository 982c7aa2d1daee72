package domain

// Default slot catalog values
// Десять часовых слотов с 09:00 по 18:00 включительно
const (
	DefaultSlotStartHour   = 9
	DefaultSlotEndHour     = 19
	DefaultSlotStepMinutes = 60
)

// Default booking policy values
const (
	// DefaultPendingTTLMinutes сколько минут pending-бронирование удерживает слот
	DefaultPendingTTLMinutes = 30
)

// Business validation constants
const (
	MaxFullNameLength = 200
	MaxEmailLength    = 254
	MaxMobileLength   = 20
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// OccupyingStatuses статусы, при которых бронирование удерживает слот
// Используется при загрузке занятости и в частичном уникальном индексе БД
var OccupyingStatuses = []BookingStatus{
	StatusPending,
	StatusPaid,
}
