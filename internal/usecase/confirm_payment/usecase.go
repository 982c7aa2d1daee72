package confirm_payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/PhotoStudio-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/PhotoStudio-BookingService/internal/infra/stream"
)

// UseCase use case подтверждения оплаты бронирования
// Единственный путь pending -> paid. Слот считается закрепленным только
// после успешной проверки подписи шлюза и условного перевода статуса
type UseCase struct {
	bookingRepo  BookingRepository
	verifier     PaymentVerifier
	availability AvailabilityInvalidator
	events       EventPublisher
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// events может быть nil, тогда события не отправляются
func NewUseCase(
	bookingRepo BookingRepository,
	verifier PaymentVerifier,
	availability AvailabilityInvalidator,
	events EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		verifier:     verifier,
		availability: availability,
		events:       events,
		logger:       logger,
	}
}

// Execute выполняет use case подтверждения оплаты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmPayment: booking=%s, order=%s", req.BookingID, req.OrderID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ConfirmPayment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем бронирование
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("ConfirmPayment: booking id=%s not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("ConfirmPayment: repository error for booking id=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 3. Проверяем подпись и принадлежность ордера
	// Подпись сверяется до проверки статуса: неподписанный callback
	// не должен узнать, обработано бронирование или нет
	if !uc.verifier.VerifySignature(req.OrderID, req.PaymentID, req.Signature) {
		uc.logger.Warn("ConfirmPayment: signature mismatch for booking id=%s", req.BookingID)
		return nil, ErrVerificationFailed
	}

	if booking.RazorpayOrderID == nil || *booking.RazorpayOrderID != req.OrderID {
		uc.logger.Warn("ConfirmPayment: order %s does not belong to booking id=%s",
			req.OrderID, req.BookingID)
		return nil, ErrVerificationFailed
	}

	// 4. Условный перевод pending -> paid
	// Повторный callback не пройдет условие по статусу
	err = uc.bookingRepo.MarkPaid(ctx, req.BookingID, req.PaymentID, req.Signature)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotPending) {
			uc.logger.Warn("ConfirmPayment: booking id=%s already processed, status=%s",
				req.BookingID, booking.Status)
			return nil, ErrAlreadyProcessed
		}
		uc.logger.Error("ConfirmPayment: failed to mark booking id=%s paid: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to mark paid: %v", ErrInternal, err)
	}

	// 5. Сбрасываем кеш занятости и отправляем событие
	// Оплата уже зафиксирована, ошибки здесь не откатывают ее
	uc.availability.Invalidate(ctx, booking.BookingDate)
	uc.publishConfirmed(ctx, booking)

	uc.logger.Info("ConfirmPayment: booking id=%s is paid", req.BookingID)

	return &Response{
		BookingID: req.BookingID,
		Status:    string(domain.StatusPaid),
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.BookingID) == "" {
		return fmt.Errorf("%w: bookingId is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.OrderID) == "" {
		return fmt.Errorf("%w: orderId is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.PaymentID) == "" {
		return fmt.Errorf("%w: paymentId is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Signature) == "" {
		return fmt.Errorf("%w: signature is required", ErrInvalidInput)
	}
	return nil
}

// publishConfirmed отправляет событие подтверждения бронирования
func (uc *UseCase) publishConfirmed(ctx context.Context, booking *domain.Booking) {
	if uc.events == nil {
		return
	}

	event := stream.BookingEvent{
		Type:      stream.EventBookingConfirmed,
		BookingID: booking.ID,
		Email:     booking.Email,
		FullName:  booking.FullName,
		Date:      booking.BookingDate.Format(domain.DateFormat),
		Time:      booking.StartTime.String(),
		PackageID: booking.PackageID,
	}

	if err := uc.events.Publish(ctx, event); err != nil {
		uc.logger.Warn("publishConfirmed: failed to publish event for booking id=%s: %v",
			booking.ID, err)
	}
}
