package models

import (
	"errors"
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserRef string  `json:"userRef"`
	Status  *string `json:"status,omitempty"`
}

// ListBookingsRequest запрос администратора на список бронирований
type ListBookingsRequest struct {
	StartDate *time.Time `json:"startDate,omitempty"` // Начало периода (опционально)
	EndDate   *time.Time `json:"endDate,omitempty"`   // Конец периода (опционально)
	Status    *string    `json:"status,omitempty"`    // Фильтр по статусу (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.AdminBookingsFilter, error) {
	filter := domain.AdminBookingsFilter{
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// RejectBookingRequest запрос на снятие бронирования
type RejectBookingRequest struct {
	Reason string `json:"reason"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              string   `json:"id"`
	UserRef         string   `json:"userRef"`
	PackageID       string   `json:"packageId"`
	BookingDate     string   `json:"bookingDate"` // "2026-03-15"
	StartTime       string   `json:"startTime"`   // "10:00"
	Status          string   `json:"status"`
	FullName        string   `json:"fullName"`
	Email           string   `json:"email"`
	Mobile          string   `json:"mobile"`
	Location        GeoPoint `json:"location"`
	RazorpayOrderID *string  `json:"razorpayOrderId,omitempty"`
	RejectionReason *string  `json:"rejectionReason,omitempty"`
	CreatedAt       string   `json:"createdAt"`
	UpdatedAt       string   `json:"updatedAt"`
}

// GeoPoint точка съемки в ответе API
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// FromDomainBooking конвертирует domain бронирование в response
func FromDomainBooking(booking *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:              booking.ID,
		UserRef:         booking.UserRef,
		PackageID:       booking.PackageID,
		BookingDate:     booking.BookingDate.Format(domain.DateFormat),
		StartTime:       booking.StartTime.String(),
		Status:          string(booking.Status),
		FullName:        booking.FullName,
		Email:           booking.Email,
		Mobile:          booking.Mobile,
		Location:        GeoPoint{Lat: booking.Location.Lat, Lng: booking.Location.Lng},
		RazorpayOrderID: booking.RazorpayOrderID,
		RejectionReason: booking.RejectionReason,
		CreatedAt:       booking.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       booking.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookings конвертирует список domain бронирований в response
func FromDomainBookings(bookings []*domain.Booking) *BookingListResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		result = append(result, FromDomainBooking(booking))
	}
	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}

// ToDomainBookingStatus конвертирует строку в domain статус
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(status) {
	case domain.StatusPending, domain.StatusPaid, domain.StatusRejected:
		return domain.BookingStatus(status), nil
	default:
		return "", ErrInvalidStatus
	}
}
