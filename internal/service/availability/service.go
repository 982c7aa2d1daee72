package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// monthKeyFormat формат ключа месяца в кеше
const monthKeyFormat = "2006-01"

// Service сервис снимков занятости
// Снимок строится из хранилища по занимающим статусам (pending и paid)
// и кешируется помесячно. Кеш опционален - без него каждый запрос идет в БД
type Service struct {
	bookingRepo BookingRepository
	cache       OccupancyCache
	logger      Logger
}

// NewService создает новый экземпляр сервиса занятости
// cache может быть nil, тогда кеширование отключено
func NewService(bookingRepo BookingRepository, cache OccupancyCache, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		cache:       cache,
		logger:      logger,
	}
}

// LoadMonth строит снимок занятости календарного месяца
// Сначала пробует кеш, при промахе идет в хранилище и кладет результат в кеш
// Ошибка хранилища не маскируется пустым снимком - возвращается ErrAvailabilityFetch
func (s *Service) LoadMonth(ctx context.Context, year int, month time.Month) (domain.Occupancy, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	monthKey := start.Format(monthKeyFormat)

	if s.cache != nil {
		occupancy, err := s.cache.Get(ctx, monthKey)
		if err == nil {
			return occupancy, nil
		}
		// Промах и недоступность кеша обрабатываются одинаково - читаем БД
	}

	occupancy, err := s.loadRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, monthKey, occupancy); err != nil {
			s.logger.Warn("LoadMonth: failed to cache occupancy for %s: %v", monthKey, err)
		}
	}

	return occupancy, nil
}

// LoadDay строит снимок занятости одного дня, всегда напрямую из хранилища
// Используется в транзакции создания бронирования, где нужны свежие данные
func (s *Service) LoadDay(ctx context.Context, date time.Time) (domain.Occupancy, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return s.loadRange(ctx, day, day)
}

// Invalidate сбрасывает кеш месяца, в который попадает дата,
// и рассылает инвалидацию остальным инстансам
func (s *Service) Invalidate(ctx context.Context, date time.Time) {
	if s.cache == nil {
		return
	}

	monthKey := date.Format(monthKeyFormat)

	if err := s.cache.Invalidate(ctx, monthKey); err != nil {
		s.logger.Warn("Invalidate: failed to drop cache for %s: %v", monthKey, err)
	}
	if err := s.cache.PublishInvalidation(ctx, monthKey); err != nil {
		s.logger.Warn("Invalidate: failed to publish invalidation for %s: %v", monthKey, err)
	}
}

// Drop сбрасывает локальный кеш месяца без рассылки
// Вызывается из подписки на канал инвалидаций
func (s *Service) Drop(ctx context.Context, monthKey string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, monthKey); err != nil {
		s.logger.Warn("Drop: failed to drop cache for %s: %v", monthKey, err)
	}
}

// loadRange строит снимок занятости из хранилища
// Строки с нечитаемым временем пропускаются с предупреждением,
// снимок при этом остается валидным
func (s *Service) loadRange(ctx context.Context, start, end time.Time) (domain.Occupancy, error) {
	if end.Before(start) {
		return nil, ErrInvalidRange
	}

	bookings, err := s.bookingRepo.GetByDateRange(ctx, start, end, domain.OccupyingStatuses)
	if err != nil {
		s.logger.Error("loadRange: repository error for %s..%s: %v",
			start.Format(domain.DateFormat), end.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: loadRange - %v", ErrAvailabilityFetch, err)
	}

	occupancy := domain.NewOccupancy()
	for _, booking := range bookings {
		if booking.StartTime.String() == "" {
			s.logger.Warn("loadRange: booking %s has empty start time, skipping", booking.ID)
			continue
		}
		occupancy.Add(booking.BookingDate.Format(domain.DateFormat), booking.StartTime)
	}

	return occupancy, nil
}
