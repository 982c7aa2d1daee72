package domain

import (
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	// StatusPending бронирование создано, оплата еще не подтверждена
	StatusPending BookingStatus = "pending"
	// StatusPaid оплата подтверждена проверкой подписи шлюза
	StatusPaid BookingStatus = "paid"
	// StatusRejected бронирование снято администратором или по таймауту оплаты
	StatusRejected BookingStatus = "rejected"
)

// Booking represents a studio session reservation
type Booking struct {
	ID          string // UUID, присваивается при создании
	UserRef     string // Идентификатор клиента из внешнего identity-провайдера
	PackageID   string
	BookingDate time.Time
	StartTime   types.TimeString
	Status      BookingStatus

	// Контактные данные клиента
	FullName string
	Email    string
	Mobile   string
	Location GeoPoint

	// Платежные реквизиты, заполняются только после верификации
	RazorpayOrderID   *string
	RazorpayPaymentID *string
	RazorpaySignature *string

	RejectionReason *string
	RejectedAt      *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOccupying returns true if the booking holds its slot
func (b *Booking) IsOccupying() bool {
	return b.Status == StatusPending || b.Status == StatusPaid
}

// IsPaid returns true if the payment has been verified
func (b *Booking) IsPaid() bool {
	return b.Status == StatusPaid
}

// CanBeRejected returns true if the booking can be rejected by an admin
func (b *Booking) CanBeRejected() bool {
	return b.Status != StatusRejected
}

// AdminBookingsFilter фильтр для выборки бронирований администратором
type AdminBookingsFilter struct {
	StartDate *time.Time     // Начало периода (опционально)
	EndDate   *time.Time     // Конец периода (опционально)
	Status    *BookingStatus // Фильтр по статусу (опционально)
}

// GeoPoint структурированная точка съемки
// Свободный текст координат не принимается - значение валидируется на границе
type GeoPoint struct {
	Lat float64
	Lng float64
}

// IsValid returns true if the point lies within valid WGS84 bounds
func (p GeoPoint) IsValid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}
