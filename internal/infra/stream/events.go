package stream

// Типы событий жизненного цикла бронирования
const (
	EventBookingConfirmed = "booking.confirmed"
	EventBookingRejected  = "booking.rejected"
	EventBookingExpired   = "booking.expired"
)

// BookingEvent событие жизненного цикла бронирования, уходит в kafka
// Воркер уведомлений читает топик и рассылает письма
type BookingEvent struct {
	Type      string `json:"type"`
	BookingID string `json:"booking_id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	PackageID string `json:"package_id"`
	Reason    string `json:"reason,omitempty"`
}
