package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/PhotoStudio-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/PhotoStudio-BookingService/internal/infra/stream"
	"github.com/m04kA/PhotoStudio-BookingService/internal/service/bookings/models"
)

// Service сервис чтения и администрирования бронирований
type Service struct {
	bookingRepo  BookingRepository
	availability AvailabilityInvalidator
	events       EventPublisher
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
// events может быть nil, тогда события не отправляются
func NewService(
	bookingRepo BookingRepository,
	availability AvailabilityInvalidator,
	events EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		availability: availability,
		events:       events,
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь видит только свои бронирования, администратор - любые
func (s *Service) GetByID(ctx context.Context, id string, userRef string, isAdmin bool) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%s", id, userRef)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !isAdmin && booking.UserRef != userRef {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%s", userRef, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%s", req.UserRef)

	var status *domain.BookingStatus
	if req.Status != nil {
		converted, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			return nil, ErrInvalidStatus
		}
		status = &converted
	}

	bookings, err := s.bookingRepo.GetByUserRef(ctx, req.UserRef, status)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%s: %v", req.UserRef, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookings(bookings), nil
}

// ListForAdmin получает список бронирований по фильтру администратора
func (s *Service) ListForAdmin(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		return nil, ErrInvalidStatus
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListForAdmin: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListForAdmin - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookings(bookings), nil
}

// Reject снимает бронирование с указанием причины
// Снимать можно только pending и paid - снятое бронирование снимать нечего
// После снятия слот освобождается, кеш занятости сбрасывается
func (s *Service) Reject(ctx context.Context, id string, reason string) (*models.BookingResponse, error) {
	s.logger.Info("Reject: rejecting booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Reject: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Reject - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeRejected() {
		s.logger.Warn("Reject: booking id=%s in status %s cannot be rejected", id, booking.Status)
		return nil, ErrCannotReject
	}

	if err := s.bookingRepo.Reject(ctx, id, reason); err != nil {
		s.logger.Error("Reject: failed to reject booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Reject - repository error: %v", ErrInternal, err)
	}

	s.availability.Invalidate(ctx, booking.BookingDate)
	s.publishRejected(ctx, booking, reason)

	booking.Status = domain.StatusRejected
	booking.RejectionReason = &reason

	s.logger.Info("Reject: booking id=%s rejected", id)
	return models.FromDomainBooking(booking), nil
}

// publishRejected отправляет событие снятия бронирования
// Ошибка отправки не прерывает операцию, бронирование уже снято
func (s *Service) publishRejected(ctx context.Context, booking *domain.Booking, reason string) {
	if s.events == nil {
		return
	}

	event := stream.BookingEvent{
		Type:      stream.EventBookingRejected,
		BookingID: booking.ID,
		Email:     booking.Email,
		FullName:  booking.FullName,
		Date:      booking.BookingDate.Format(domain.DateFormat),
		Time:      booking.StartTime.String(),
		PackageID: booking.PackageID,
		Reason:    reason,
	}

	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Warn("publishRejected: failed to publish event for booking id=%s: %v", booking.ID, err)
	}
}
