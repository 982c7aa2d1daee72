package submit_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/PhotoStudio-BookingService/internal/infra/storage/booking"
	packageRepo "github.com/m04kA/PhotoStudio-BookingService/internal/infra/storage/studiopackage"
	"github.com/m04kA/PhotoStudio-BookingService/internal/integrations/razorpay"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/types"
)

// Mock структуры

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByDateRange(ctx context.Context, start, end time.Time, statuses []domain.BookingStatus) ([]*domain.Booking, error) {
	args := m.Called(ctx, start, end, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) SetOrder(ctx context.Context, id string, orderID string) error {
	args := m.Called(ctx, id, orderID)
	return args.Error(0)
}

type MockPackageRepository struct {
	mock.Mock
}

func (m *MockPackageRepository) GetByID(ctx context.Context, id string) (*domain.StudioPackage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StudioPackage), args.Error(1)
}

type MockPaymentClient struct {
	mock.Mock
}

func (m *MockPaymentClient) CreateOrder(ctx context.Context, amountPaise int64, receipt string) (*razorpay.Order, error) {
	args := m.Called(ctx, amountPaise, receipt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*razorpay.Order), args.Error(1)
}

type MockAvailability struct {
	mock.Mock
}

func (m *MockAvailability) Invalidate(ctx context.Context, date time.Time) {
	m.Called(ctx, date)
}

// fakeTxManager выполняет функцию без настоящей транзакции
type fakeTxManager struct{}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (f *fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fixedTimeProvider возвращает фиксированное время
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

// Вспомогательные функции

func mustTime(t *testing.T, value string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(value)
	assert.NoError(t, err)
	return ts
}

func validRequest(t *testing.T) *Request {
	t.Helper()
	return &Request{
		UserRef:   "user-1",
		PackageID: "pkg-1",
		Date:      time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		StartTime: mustTime(t, "10:00"),
		FullName:  "Анна Смирнова",
		Email:     "anna@example.com",
		Mobile:    "+7 900 123-45-67",
		Location:  domain.GeoPoint{Lat: 55.75, Lng: 37.62},
	}
}

func newTestUseCase(
	bookings *MockBookingRepository,
	packages *MockPackageRepository,
	payment *MockPaymentClient,
	availabilityMock *MockAvailability,
) *UseCase {
	uc := NewUseCase(
		bookings,
		packages,
		payment,
		availabilityMock,
		domain.NewSlotCatalog(9, 19, 60),
		&fakeTxManager{},
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func activePackage() *domain.StudioPackage {
	return &domain.StudioPackage{
		ID:     "pkg-1",
		Name:   "Стандарт",
		Price:  5000,
		Active: true,
	}
}

// Тесты

func TestSubmitBooking_Success(t *testing.T) {
	bookings := new(MockBookingRepository)
	packages := new(MockPackageRepository)
	payment := new(MockPaymentClient)
	availabilityMock := new(MockAvailability)

	uc := newTestUseCase(bookings, packages, payment, availabilityMock)
	req := validRequest(t)

	packages.On("GetByID", mock.Anything, "pkg-1").Return(activePackage(), nil)
	bookings.On("GetByDateRange", mock.Anything, req.Date, req.Date, domain.OccupyingStatuses).
		Return([]*domain.Booking{}, nil)
	bookings.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.Status == domain.StatusPending && b.StartTime == req.StartTime && b.ID != ""
	})).Return(&domain.Booking{
		ID:          "booking-1",
		UserRef:     "user-1",
		PackageID:   "pkg-1",
		BookingDate: req.Date,
		StartTime:   req.StartTime,
		Status:      domain.StatusPending,
	}, nil)
	availabilityMock.On("Invalidate", mock.Anything, req.Date).Return()
	payment.On("CreateOrder", mock.Anything, int64(500000), "receipt_booking-1").
		Return(&razorpay.Order{ID: "order_1", Amount: 500000, Currency: "INR"}, nil)
	bookings.On("SetOrder", mock.Anything, "booking-1", "order_1").Return(nil)

	result, err := uc.Execute(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, "booking-1", result.BookingID)
	assert.Equal(t, "pending", result.Status)
	assert.Equal(t, "order_1", result.OrderID)
	assert.Equal(t, int64(500000), result.AmountPaise)
	bookings.AssertExpectations(t)
	payment.AssertExpectations(t)
	availabilityMock.AssertExpectations(t)
}

func TestSubmitBooking_ValidationFails(t *testing.T) {
	uc := newTestUseCase(new(MockBookingRepository), new(MockPackageRepository),
		new(MockPaymentClient), new(MockAvailability))

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"empty user", func(req *Request) { req.UserRef = "" }},
		{"empty package", func(req *Request) { req.PackageID = "" }},
		{"empty name", func(req *Request) { req.FullName = "  " }},
		{"malformed email", func(req *Request) { req.Email = "not-an-email" }},
		{"mobile with letters", func(req *Request) { req.Mobile = "8-900-abc" }},
		{"latitude out of range", func(req *Request) { req.Location.Lat = 91 }},
		{"longitude out of range", func(req *Request) { req.Location.Lng = -181 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(t)
			tt.mutate(req)

			result, err := uc.Execute(context.Background(), req)

			assert.Nil(t, result)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestSubmitBooking_DateInPast(t *testing.T) {
	uc := newTestUseCase(new(MockBookingRepository), new(MockPackageRepository),
		new(MockPaymentClient), new(MockAvailability))

	req := validRequest(t)
	req.Date = time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)

	result, err := uc.Execute(context.Background(), req)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestSubmitBooking_TimeOutsideCatalog(t *testing.T) {
	uc := newTestUseCase(new(MockBookingRepository), new(MockPackageRepository),
		new(MockPaymentClient), new(MockAvailability))

	req := validRequest(t)
	req.StartTime = mustTime(t, "20:00")

	result, err := uc.Execute(context.Background(), req)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestSubmitBooking_PackageNotFound(t *testing.T) {
	bookings := new(MockBookingRepository)
	packages := new(MockPackageRepository)

	uc := newTestUseCase(bookings, packages, new(MockPaymentClient), new(MockAvailability))
	req := validRequest(t)

	packages.On("GetByID", mock.Anything, "pkg-1").Return(nil, packageRepo.ErrPackageNotFound)

	result, err := uc.Execute(context.Background(), req)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrPackageNotFound)
	bookings.AssertNotCalled(t, "GetByDateRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitBooking_PackageInactive(t *testing.T) {
	bookings := new(MockBookingRepository)
	packages := new(MockPackageRepository)

	uc := newTestUseCase(bookings, packages, new(MockPaymentClient), new(MockAvailability))
	req := validRequest(t)

	pkg := activePackage()
	pkg.Active = false
	packages.On("GetByID", mock.Anything, "pkg-1").Return(pkg, nil)

	result, err := uc.Execute(context.Background(), req)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrPackageInactive)
}

func TestSubmitBooking_SlotTakenInsideTransaction(t *testing.T) {
	bookings := new(MockBookingRepository)
	packages := new(MockPackageRepository)
	payment := new(MockPaymentClient)

	uc := newTestUseCase(bookings, packages, payment, new(MockAvailability))
	req := validRequest(t)

	packages.On("GetByID", mock.Anything, "pkg-1").Return(activePackage(), nil)
	bookings.On("GetByDateRange", mock.Anything, req.Date, req.Date, domain.OccupyingStatuses).
		Return([]*domain.Booking{
			{ID: "other", BookingDate: req.Date, StartTime: req.StartTime, Status: domain.StatusPaid},
		}, nil)

	result, err := uc.Execute(context.Background(), req)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrSlotTaken)
	bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	payment.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitBooking_UniqueIndexRace(t *testing.T) {
	bookings := new(MockBookingRepository)
	packages := new(MockPackageRepository)

	uc := newTestUseCase(bookings, packages, new(MockPaymentClient), new(MockAvailability))
	req := validRequest(t)

	packages.On("GetByID", mock.Anything, "pkg-1").Return(activePackage(), nil)
	bookings.On("GetByDateRange", mock.Anything, req.Date, req.Date, domain.OccupyingStatuses).
		Return([]*domain.Booking{}, nil)
	bookings.On("Create", mock.Anything, mock.Anything).Return(nil, bookingRepo.ErrSlotTaken)

	result, err := uc.Execute(context.Background(), req)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestSubmitBooking_AvailabilityFetchFails(t *testing.T) {
	bookings := new(MockBookingRepository)
	packages := new(MockPackageRepository)

	uc := newTestUseCase(bookings, packages, new(MockPaymentClient), new(MockAvailability))
	req := validRequest(t)

	packages.On("GetByID", mock.Anything, "pkg-1").Return(activePackage(), nil)
	bookings.On("GetByDateRange", mock.Anything, req.Date, req.Date, domain.OccupyingStatuses).
		Return(nil, errors.New("connection refused"))

	// Недоступность занятости не трактуется как свободный день
	result, err := uc.Execute(context.Background(), req)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrAvailabilityFetch)
	bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmitBooking_PaymentOrderFailureKeepsPending(t *testing.T) {
	bookings := new(MockBookingRepository)
	packages := new(MockPackageRepository)
	payment := new(MockPaymentClient)
	availabilityMock := new(MockAvailability)

	uc := newTestUseCase(bookings, packages, payment, availabilityMock)
	req := validRequest(t)

	packages.On("GetByID", mock.Anything, "pkg-1").Return(activePackage(), nil)
	bookings.On("GetByDateRange", mock.Anything, req.Date, req.Date, domain.OccupyingStatuses).
		Return([]*domain.Booking{}, nil)
	bookings.On("Create", mock.Anything, mock.Anything).Return(&domain.Booking{
		ID:          "booking-1",
		BookingDate: req.Date,
		StartTime:   req.StartTime,
		Status:      domain.StatusPending,
	}, nil)
	availabilityMock.On("Invalidate", mock.Anything, req.Date).Return()
	payment.On("CreateOrder", mock.Anything, int64(500000), "receipt_booking-1").
		Return(nil, razorpay.ErrCreateOrder)

	result, err := uc.Execute(context.Background(), req)

	// Бронирование создано, но ордер не стартовал: слот остается за pending
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrPaymentOrder)
	bookings.AssertNotCalled(t, "SetOrder", mock.Anything, mock.Anything, mock.Anything)
	availabilityMock.AssertExpectations(t)
}
