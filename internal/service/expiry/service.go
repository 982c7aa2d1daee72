package expiry

import (
	"context"
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	"github.com/m04kA/PhotoStudio-BookingService/internal/infra/stream"
)

// expireReason причина снятия, записывается в бронирование
const expireReason = "оплата не поступила в отведенное время"

// Service фоновая очистка зависших pending-бронирований
// Бронирование держит слот ограниченное время: если оплата не пришла
// за pendingTTL, бронирование снимается и слот освобождается
type Service struct {
	bookingRepo  BookingRepository
	availability AvailabilityInvalidator
	events       EventPublisher
	pendingTTL   time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса очистки
// events может быть nil, тогда события не отправляются
func NewService(
	bookingRepo BookingRepository,
	availability AvailabilityInvalidator,
	events EventPublisher,
	pendingTTL time.Duration,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		availability: availability,
		events:       events,
		pendingTTL:   pendingTTL,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Run запускает цикл очистки, период равен половине TTL
// Блокируется до отмены контекста
func (s *Service) Run(ctx context.Context) {
	interval := s.pendingTTL / 2
	if interval < time.Minute {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Info("expiry: loop started, ttl=%s, interval=%s", s.pendingTTL, interval)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("expiry: loop stopped")
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep снимает все pending-бронирования старше TTL
func (s *Service) Sweep(ctx context.Context) {
	deadline := s.timeProvider.Now().Add(-s.pendingTTL)

	expired, err := s.bookingRepo.ExpirePendingBefore(ctx, deadline, expireReason)
	if err != nil {
		s.logger.Error("Sweep: failed to expire pending bookings: %v", err)
		return
	}

	if len(expired) == 0 {
		return
	}

	s.logger.Info("Sweep: expired %d pending bookings", len(expired))

	// Сбрасываем кеш по затронутым месяцам и рассылаем события
	seen := make(map[string]struct{})
	for _, booking := range expired {
		monthKey := booking.BookingDate.Format("2006-01")
		if _, ok := seen[monthKey]; !ok {
			s.availability.Invalidate(ctx, booking.BookingDate)
			seen[monthKey] = struct{}{}
		}
		s.publishExpired(ctx, booking)
	}
}

// publishExpired отправляет событие истечения бронирования
func (s *Service) publishExpired(ctx context.Context, booking *domain.Booking) {
	if s.events == nil {
		return
	}

	event := stream.BookingEvent{
		Type:      stream.EventBookingExpired,
		BookingID: booking.ID,
		Email:     booking.Email,
		FullName:  booking.FullName,
		Date:      booking.BookingDate.Format(domain.DateFormat),
		Time:      booking.StartTime.String(),
		PackageID: booking.PackageID,
		Reason:    expireReason,
	}

	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Warn("publishExpired: failed to publish event for booking id=%s: %v",
			booking.ID, err)
	}
}
