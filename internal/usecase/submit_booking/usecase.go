package submit_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/PhotoStudio-BookingService/internal/infra/storage/booking"
	packageRepo "github.com/m04kA/PhotoStudio-BookingService/internal/infra/storage/studiopackage"
	"github.com/m04kA/PhotoStudio-BookingService/internal/integrations/razorpay"
)

// currencyINR валюта всех платежных ордеров
const currencyINR = "INR"

// UseCase use case создания бронирования
// Слот удерживается в статусе pending до подтверждения оплаты
// Гонку за слот закрывают три уровня: проверка занятости до транзакции,
// повторная проверка с блокировкой FOR UPDATE внутри сериализуемой
// транзакции и частичный уникальный индекс в БД
type UseCase struct {
	bookingRepo   BookingRepository
	packageRepo   PackageRepository
	paymentClient PaymentClient
	availability  AvailabilityInvalidator
	catalog       domain.SlotCatalog
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	packageRepo PackageRepository,
	paymentClient PaymentClient,
	availability AvailabilityInvalidator,
	catalog domain.SlotCatalog,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		packageRepo:   packageRepo,
		paymentClient: paymentClient,
		availability:  availability,
		catalog:       catalog,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitBooking: user=%s, package=%s, date=%s, time=%s",
		req.UserRef, req.PackageID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не в прошлом, время входит в сетку слотов
	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("SubmitBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	if !uc.catalog.Contains(req.StartTime) {
		uc.logger.Warn("SubmitBooking: time %s is not in the slot catalog", req.StartTime)
		return nil, ErrInvalidSlot
	}

	// 3. Получаем пакет
	pkg, err := uc.packageRepo.GetByID(ctx, req.PackageID)
	if err != nil {
		if errors.Is(err, packageRepo.ErrPackageNotFound) {
			uc.logger.Warn("SubmitBooking: package id=%s not found", req.PackageID)
			return nil, ErrPackageNotFound
		}
		uc.logger.Error("SubmitBooking: failed to get package id=%s: %v", req.PackageID, err)
		return nil, fmt.Errorf("%w: failed to get package: %v", ErrInternal, err)
	}

	if !pkg.Active {
		uc.logger.Warn("SubmitBooking: package id=%s is not active", req.PackageID)
		return nil, ErrPackageInactive
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 4. Создаем pending-бронирование в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Читаем занимающие бронирования дня с блокировкой FOR UPDATE
		// Ошибка чтения не трактуется как свободный день
		dayBookings, err := uc.bookingRepo.GetByDateRange(txCtx, req.Date, req.Date, domain.OccupyingStatuses)
		if err != nil {
			uc.logger.Error("SubmitBooking: failed to load day bookings: %v", err)
			return fmt.Errorf("%w: failed to load day bookings: %v", ErrAvailabilityFetch, err)
		}

		// 4.2. Проверяем, что слот свободен
		for _, existing := range dayBookings {
			if existing.StartTime == req.StartTime {
				uc.logger.Warn("SubmitBooking: slot %s on %s already taken by booking id=%s",
					req.StartTime, req.Date.Format(domain.DateFormat), existing.ID)
				return ErrSlotTaken
			}
		}

		// 4.3. Создаем бронирование
		booking := &domain.Booking{
			ID:          uuid.NewString(),
			UserRef:     req.UserRef,
			PackageID:   req.PackageID,
			BookingDate: req.Date,
			StartTime:   req.StartTime,
			Status:      domain.StatusPending,
			FullName:    req.FullName,
			Email:       req.Email,
			Mobile:      req.Mobile,
			Location:    req.Location,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("SubmitBooking: unique index rejected slot %s on %s",
					req.StartTime, req.Date.Format(domain.DateFormat))
				return ErrSlotTaken
			}
			uc.logger.Error("SubmitBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 5. Слот занят, сбрасываем кеш занятости
	uc.availability.Invalidate(ctx, result.BookingDate)

	uc.logger.Info("SubmitBooking: created booking id=%s, creating payment order", result.ID)

	// 6. Создаем платежный ордер
	// При ошибке бронирование остается в pending: клиент может повторить
	// оплату, а фоновая очистка снимет его после истечения TTL
	order, err := uc.paymentClient.CreateOrder(ctx, pkg.PricePaise(), razorpay.MakeReceipt(result.ID))
	if err != nil {
		uc.logger.Error("SubmitBooking: failed to create payment order for booking id=%s: %v", result.ID, err)
		return nil, fmt.Errorf("%w: booking %s is pending", ErrPaymentOrder, result.ID)
	}

	// 7. Привязываем ордер к бронированию
	if err := uc.bookingRepo.SetOrder(ctx, result.ID, order.ID); err != nil {
		uc.logger.Error("SubmitBooking: failed to attach order %s to booking id=%s: %v",
			order.ID, result.ID, err)
		return nil, fmt.Errorf("%w: failed to attach order: %v", ErrInternal, err)
	}

	uc.logger.Info("SubmitBooking: booking id=%s awaits payment, order=%s", result.ID, order.ID)

	return &Response{
		BookingID:   result.ID,
		Status:      string(result.Status),
		OrderID:     order.ID,
		AmountPaise: order.Amount,
		Currency:    currencyINR,
		Date:        result.BookingDate,
		StartTime:   result.StartTime,
	}, nil
}
