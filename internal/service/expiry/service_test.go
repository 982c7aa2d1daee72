package expiry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	"github.com/m04kA/PhotoStudio-BookingService/internal/infra/stream"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/types"
)

// Mock структуры

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) ExpirePendingBefore(ctx context.Context, deadline time.Time, reason string) ([]*domain.Booking, error) {
	args := m.Called(ctx, deadline, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
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

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// Тесты

func TestSweep_ExpiresStalePending(t *testing.T) {
	repo := new(MockBookingRepository)
	availabilityMock := new(MockAvailability)
	events := new(MockEventPublisher)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := NewService(repo, availabilityMock, events, 30*time.Minute, nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: now}

	date1 := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	date2 := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)

	expired := []*domain.Booking{
		{ID: "b1", BookingDate: date1, StartTime: types.TimeString("10:00"), Email: "a@example.com"},
		{ID: "b2", BookingDate: date2, StartTime: types.TimeString("11:00"), Email: "b@example.com"},
	}

	repo.On("ExpirePendingBefore", mock.Anything, now.Add(-30*time.Minute), expireReason).
		Return(expired, nil)
	// Обе даты в одном месяце: кеш сбрасывается один раз
	availabilityMock.On("Invalidate", mock.Anything, date1).Return().Once()
	events.On("Publish", mock.Anything, mock.MatchedBy(func(e stream.BookingEvent) bool {
		return e.Type == stream.EventBookingExpired
	})).Return(nil).Twice()

	svc.Sweep(context.Background())

	repo.AssertExpectations(t)
	availabilityMock.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestSweep_NothingToExpire(t *testing.T) {
	repo := new(MockBookingRepository)
	availabilityMock := new(MockAvailability)

	svc := NewService(repo, availabilityMock, nil, 30*time.Minute, nopLogger{})

	repo.On("ExpirePendingBefore", mock.Anything, mock.Anything, expireReason).
		Return([]*domain.Booking{}, nil)

	svc.Sweep(context.Background())

	availabilityMock.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}

func TestSweep_RepositoryErrorDoesNotPanic(t *testing.T) {
	repo := new(MockBookingRepository)

	svc := NewService(repo, new(MockAvailability), nil, 30*time.Minute, nopLogger{})

	repo.On("ExpirePendingBefore", mock.Anything, mock.Anything, expireReason).
		Return(nil, errors.New("connection refused"))

	svc.Sweep(context.Background())
}
