package get_day_schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	"github.com/m04kA/PhotoStudio-BookingService/internal/service/availability"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/types"
)

// Mock структуры

type MockAvailabilityService struct {
	mock.Mock
}

func (m *MockAvailabilityService) LoadDay(ctx context.Context, date time.Time) (domain.Occupancy, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Occupancy), args.Error(1)
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

func newTestUseCase(svc *MockAvailabilityService) *UseCase {
	uc := NewUseCase(svc, domain.NewSlotCatalog(9, 19, 60), nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

// Тесты

func TestGetDaySchedule_FullGrid(t *testing.T) {
	svc := new(MockAvailabilityService)
	uc := newTestUseCase(svc)

	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	occupancy := domain.NewOccupancy()
	occupancy.Add("2026-03-15", mustTime(t, "10:00"))
	occupancy.Add("2026-03-15", mustTime(t, "14:00"))
	svc.On("LoadDay", mock.Anything, date).Return(occupancy, nil)

	result, err := uc.Execute(context.Background(), &Request{Date: date})

	assert.NoError(t, err)
	// Сетка всегда полная: занятые слоты остаются в ней с пометкой booked
	assert.Len(t, result.Entries, 10)
	assert.Equal(t, "09:00", result.Entries[0].Time.String())
	assert.Equal(t, "18:00", result.Entries[9].Time.String())

	states := make(map[string]string, len(result.Entries))
	for _, entry := range result.Entries {
		states[entry.Time.String()] = entry.State
	}
	assert.Equal(t, "booked", states["10:00"])
	assert.Equal(t, "booked", states["14:00"])
	assert.Equal(t, "available", states["09:00"])
	assert.Equal(t, "available", states["18:00"])
}

func TestGetDaySchedule_SelectedSlot(t *testing.T) {
	svc := new(MockAvailabilityService)
	uc := newTestUseCase(svc)

	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	svc.On("LoadDay", mock.Anything, date).Return(domain.NewOccupancy(), nil)

	selected := mustTime(t, "11:00")
	result, err := uc.Execute(context.Background(), &Request{Date: date, Selected: &selected})

	assert.NoError(t, err)
	for _, entry := range result.Entries {
		if entry.Time == selected {
			assert.Equal(t, "selected", entry.State)
		} else {
			assert.Equal(t, "available", entry.State)
		}
	}
}

func TestGetDaySchedule_BookedBeatsSelected(t *testing.T) {
	svc := new(MockAvailabilityService)
	uc := newTestUseCase(svc)

	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	selected := mustTime(t, "10:00")

	occupancy := domain.NewOccupancy()
	occupancy.Add("2026-03-15", selected)
	svc.On("LoadDay", mock.Anything, date).Return(occupancy, nil)

	result, err := uc.Execute(context.Background(), &Request{Date: date, Selected: &selected})

	assert.NoError(t, err)
	for _, entry := range result.Entries {
		if entry.Time == selected {
			// Занятость важнее пользовательского выбора
			assert.Equal(t, "booked", entry.State)
		}
	}
}

func TestGetDaySchedule_AvailabilityFetchFails(t *testing.T) {
	svc := new(MockAvailabilityService)
	uc := newTestUseCase(svc)

	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	svc.On("LoadDay", mock.Anything, date).
		Return(nil, availability.ErrAvailabilityFetch)

	// Недоступность занятости не превращается в пустую сетку
	result, err := uc.Execute(context.Background(), &Request{Date: date})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrAvailabilityFetch)
}

func TestGetDaySchedule_UnknownAvailabilityError(t *testing.T) {
	svc := new(MockAvailabilityService)
	uc := newTestUseCase(svc)

	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	svc.On("LoadDay", mock.Anything, date).Return(nil, errors.New("boom"))

	result, err := uc.Execute(context.Background(), &Request{Date: date})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetDaySchedule_PastDate(t *testing.T) {
	svc := new(MockAvailabilityService)
	uc := newTestUseCase(svc)

	result, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC),
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidDate)
	svc.AssertNotCalled(t, "LoadDay", mock.Anything, mock.Anything)
}

func TestGetDaySchedule_ZeroDate(t *testing.T) {
	uc := newTestUseCase(new(MockAvailabilityService))

	result, err := uc.Execute(context.Background(), &Request{})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
