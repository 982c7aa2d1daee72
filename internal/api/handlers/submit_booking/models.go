package submit_booking

import (
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	submitBooking "github.com/m04kA/PhotoStudio-BookingService/internal/usecase/submit_booking"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/types"
)

// SubmitBookingRequest HTTP request model
type SubmitBookingRequest struct {
	PackageID   string   `json:"packageId"`
	BookingDate string   `json:"bookingDate"` // "2026-03-15"
	StartTime   string   `json:"startTime"`   // "10:00"
	FullName    string   `json:"fullName"`
	Email       string   `json:"email"`
	Mobile      string   `json:"mobile"`
	Location    GeoPoint `json:"location"`
}

// GeoPoint точка съемки
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// BookingResponse HTTP response model
// Поля ордера нужны клиенту для открытия платежной формы
type BookingResponse struct {
	BookingID   string `json:"bookingId"`
	Status      string `json:"status"`
	OrderID     string `json:"orderId"`
	AmountPaise int64  `json:"amountPaise"`
	Currency    string `json:"currency"`
	BookingDate string `json:"bookingDate"`
	StartTime   string `json:"startTime"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SubmitBookingRequest) ToUseCaseRequest(userRef string) (*submitBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &submitBooking.Request{
		UserRef:   userRef,
		PackageID: r.PackageID,
		Date:      bookingDate,
		StartTime: startTime,
		FullName:  r.FullName,
		Email:     r.Email,
		Mobile:    r.Mobile,
		Location:  domain.GeoPoint{Lat: r.Location.Lat, Lng: r.Location.Lng},
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(result *submitBooking.Response) *BookingResponse {
	return &BookingResponse{
		BookingID:   result.BookingID,
		Status:      result.Status,
		OrderID:     result.OrderID,
		AmountPaise: result.AmountPaise,
		Currency:    result.Currency,
		BookingDate: result.Date.Format(domain.DateFormat),
		StartTime:   result.StartTime.String(),
	}
}
