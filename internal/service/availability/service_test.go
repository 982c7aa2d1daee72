package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/types"
)

// Mock структуры

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByDateRange(ctx context.Context, start, end time.Time, statuses []domain.BookingStatus) ([]*domain.Booking, error) {
	args := m.Called(ctx, start, end, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

type MockOccupancyCache struct {
	mock.Mock
}

func (m *MockOccupancyCache) Get(ctx context.Context, monthKey string) (domain.Occupancy, error) {
	args := m.Called(ctx, monthKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Occupancy), args.Error(1)
}

func (m *MockOccupancyCache) Set(ctx context.Context, monthKey string, occupancy domain.Occupancy) error {
	args := m.Called(ctx, monthKey, occupancy)
	return args.Error(0)
}

func (m *MockOccupancyCache) Invalidate(ctx context.Context, monthKey string) error {
	args := m.Called(ctx, monthKey)
	return args.Error(0)
}

func (m *MockOccupancyCache) PublishInvalidation(ctx context.Context, monthKey string) error {
	args := m.Called(ctx, monthKey)
	return args.Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// Вспомогательные функции

func mustTime(t *testing.T, value string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(value)
	assert.NoError(t, err)
	return ts
}

func booking(t *testing.T, date string, startTime string, status domain.BookingStatus) *domain.Booking {
	t.Helper()
	parsed, err := time.Parse(domain.DateFormat, date)
	assert.NoError(t, err)
	return &domain.Booking{
		ID:          date + "-" + startTime,
		BookingDate: parsed,
		StartTime:   mustTime(t, startTime),
		Status:      status,
	}
}

// Тесты

func TestLoadMonth_GroupsByDate(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := NewService(repo, nil, nopLogger{})

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	repo.On("GetByDateRange", mock.Anything, start, end, domain.OccupyingStatuses).
		Return([]*domain.Booking{
			booking(t, "2026-03-15", "10:00", domain.StatusPaid),
			booking(t, "2026-03-15", "14:00", domain.StatusPending),
			booking(t, "2026-03-20", "09:00", domain.StatusPaid),
		}, nil)

	occupancy, err := svc.LoadMonth(context.Background(), 2026, time.March)

	assert.NoError(t, err)
	assert.True(t, occupancy.IsBooked(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), mustTime(t, "10:00")))
	assert.True(t, occupancy.IsBooked(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), mustTime(t, "14:00")))
	assert.True(t, occupancy.IsBooked(time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC), mustTime(t, "09:00")))
	assert.False(t, occupancy.IsBooked(time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC), mustTime(t, "10:00")))
}

func TestLoadMonth_FetchErrorNotMasked(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := NewService(repo, nil, nopLogger{})

	repo.On("GetByDateRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	// Ошибка хранилища не подменяется пустым снимком
	occupancy, err := svc.LoadMonth(context.Background(), 2026, time.March)

	assert.Nil(t, occupancy)
	assert.ErrorIs(t, err, ErrAvailabilityFetch)
}

func TestLoadMonth_SkipsMalformedRows(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := NewService(repo, nil, nopLogger{})

	broken := &domain.Booking{
		ID:          "broken",
		BookingDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:      domain.StatusPaid,
	}

	repo.On("GetByDateRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*domain.Booking{
			broken,
			booking(t, "2026-03-15", "10:00", domain.StatusPaid),
		}, nil)

	occupancy, err := svc.LoadMonth(context.Background(), 2026, time.March)

	assert.NoError(t, err)
	assert.False(t, occupancy.DayHasBookings(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)))
	assert.True(t, occupancy.DayHasBookings(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)))
}

func TestLoadMonth_CacheHitSkipsStorage(t *testing.T) {
	repo := new(MockBookingRepository)
	cacheMock := new(MockOccupancyCache)
	svc := NewService(repo, cacheMock, nopLogger{})

	cached := domain.NewOccupancy()
	cached.Add("2026-03-15", mustTime(t, "10:00"))
	cacheMock.On("Get", mock.Anything, "2026-03").Return(cached, nil)

	occupancy, err := svc.LoadMonth(context.Background(), 2026, time.March)

	assert.NoError(t, err)
	assert.True(t, occupancy.IsBooked(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), mustTime(t, "10:00")))
	repo.AssertNotCalled(t, "GetByDateRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLoadMonth_CacheMissFallsThrough(t *testing.T) {
	repo := new(MockBookingRepository)
	cacheMock := new(MockOccupancyCache)
	svc := NewService(repo, cacheMock, nopLogger{})

	cacheMock.On("Get", mock.Anything, "2026-03").Return(nil, errors.New("cache: key not found"))
	repo.On("GetByDateRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*domain.Booking{booking(t, "2026-03-15", "10:00", domain.StatusPaid)}, nil)
	cacheMock.On("Set", mock.Anything, "2026-03", mock.Anything).Return(nil)

	occupancy, err := svc.LoadMonth(context.Background(), 2026, time.March)

	assert.NoError(t, err)
	assert.True(t, occupancy.DayHasBookings(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)))
	cacheMock.AssertExpectations(t)
}

func TestLoadDay_QueriesSingleDay(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := NewService(repo, nil, nopLogger{})

	day := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	repo.On("GetByDateRange", mock.Anything, day, day, domain.OccupyingStatuses).
		Return([]*domain.Booking{booking(t, "2026-03-15", "10:00", domain.StatusPending)}, nil)

	occupancy, err := svc.LoadDay(context.Background(), day)

	assert.NoError(t, err)
	assert.True(t, occupancy.IsBooked(day, mustTime(t, "10:00")))
	repo.AssertExpectations(t)
}

func TestInvalidate_DropsCacheAndPublishes(t *testing.T) {
	cacheMock := new(MockOccupancyCache)
	svc := NewService(new(MockBookingRepository), cacheMock, nopLogger{})

	cacheMock.On("Invalidate", mock.Anything, "2026-03").Return(nil)
	cacheMock.On("PublishInvalidation", mock.Anything, "2026-03").Return(nil)

	svc.Invalidate(context.Background(), time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))

	cacheMock.AssertExpectations(t)
}
