package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/PhotoStudio-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/PhotoStudio-BookingService/internal/infra/stream"
	"github.com/m04kA/PhotoStudio-BookingService/internal/service/bookings/models"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/types"
)

// Mock структуры

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByUserRef(ctx context.Context, userRef string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	args := m.Called(ctx, userRef, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetWithFilter(ctx context.Context, filter domain.AdminBookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) Reject(ctx context.Context, id string, reason string) error {
	args := m.Called(ctx, id, reason)
	return args.Error(0)
}

type MockAvailability struct {
	mock.Mock
}

func (m *MockAvailability) Invalidate(ctx context.Context, date time.Time) {
	m.Called(ctx, date)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event stream.BookingEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// Вспомогательные функции

func paidBooking() *domain.Booking {
	return &domain.Booking{
		ID:          "booking-1",
		UserRef:     "user-1",
		PackageID:   "pkg-1",
		BookingDate: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		StartTime:   types.TimeString("10:00"),
		Status:      domain.StatusPaid,
		Email:       "anna@example.com",
		FullName:    "Анна Смирнова",
	}
}

// Тесты

func TestGetByID_OwnerSeesOwnBooking(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := NewService(repo, new(MockAvailability), nil, nopLogger{})

	repo.On("GetByID", mock.Anything, "booking-1").Return(paidBooking(), nil)

	result, err := svc.GetByID(context.Background(), "booking-1", "user-1", false)

	assert.NoError(t, err)
	assert.Equal(t, "booking-1", result.ID)
}

func TestGetByID_ForeignBookingDenied(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := NewService(repo, new(MockAvailability), nil, nopLogger{})

	repo.On("GetByID", mock.Anything, "booking-1").Return(paidBooking(), nil)

	result, err := svc.GetByID(context.Background(), "booking-1", "user-2", false)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_AdminSeesAnyBooking(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := NewService(repo, new(MockAvailability), nil, nopLogger{})

	repo.On("GetByID", mock.Anything, "booking-1").Return(paidBooking(), nil)

	result, err := svc.GetByID(context.Background(), "booking-1", "", true)

	assert.NoError(t, err)
	assert.Equal(t, "booking-1", result.ID)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := NewService(repo, new(MockAvailability), nil, nopLogger{})

	repo.On("GetByID", mock.Anything, "missing").Return(nil, bookingRepo.ErrBookingNotFound)

	result, err := svc.GetByID(context.Background(), "missing", "user-1", false)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings_InvalidStatus(t *testing.T) {
	svc := NewService(new(MockBookingRepository), new(MockAvailability), nil, nopLogger{})

	status := "refunded"
	result, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserRef: "user-1",
		Status:  &status,
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestReject_FreesSlotAndPublishes(t *testing.T) {
	repo := new(MockBookingRepository)
	availabilityMock := new(MockAvailability)
	events := new(MockEventPublisher)
	svc := NewService(repo, availabilityMock, events, nopLogger{})

	booking := paidBooking()
	repo.On("GetByID", mock.Anything, "booking-1").Return(booking, nil)
	repo.On("Reject", mock.Anything, "booking-1", "перенос съемки").Return(nil)
	availabilityMock.On("Invalidate", mock.Anything, booking.BookingDate).Return()
	events.On("Publish", mock.Anything, mock.MatchedBy(func(e stream.BookingEvent) bool {
		return e.Type == stream.EventBookingRejected && e.Reason == "перенос съемки"
	})).Return(nil)

	result, err := svc.Reject(context.Background(), "booking-1", "перенос съемки")

	assert.NoError(t, err)
	assert.Equal(t, "rejected", result.Status)
	repo.AssertExpectations(t)
	availabilityMock.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestReject_AlreadyRejected(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := NewService(repo, new(MockAvailability), nil, nopLogger{})

	booking := paidBooking()
	booking.Status = domain.StatusRejected
	repo.On("GetByID", mock.Anything, "booking-1").Return(booking, nil)

	result, err := svc.Reject(context.Background(), "booking-1", "причина")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrCannotReject)
	repo.AssertNotCalled(t, "Reject", mock.Anything, mock.Anything, mock.Anything)
}
