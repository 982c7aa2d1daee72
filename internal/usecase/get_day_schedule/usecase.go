package get_day_schedule

import (
	"context"
	"errors"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	"github.com/m04kA/PhotoStudio-BookingService/internal/service/availability"
)

// UseCase use case построения расписания дня
// Возвращает полную сетку слотов каталога с состоянием каждого слота:
// занятый слот остается в сетке с пометкой booked, а не выпадает из нее
type UseCase struct {
	availabilitySvc AvailabilityService
	catalog         domain.SlotCatalog
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(availabilitySvc AvailabilityService, catalog domain.SlotCatalog, logger Logger) *UseCase {
	return &UseCase{
		availabilitySvc: availabilitySvc,
		catalog:         catalog,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case построения расписания дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySchedule: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDaySchedule: validation failed: %v", err)
		return nil, err
	}

	if isDateInPast(req.Date, uc.timeProvider.Now()) {
		uc.logger.Warn("GetDaySchedule: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 2. Загружаем занятость дня
	// Ошибка загрузки не превращается в пустую сетку: лучше отказать,
	// чем показать занятый слот как свободный
	occupancy, err := uc.availabilitySvc.LoadDay(ctx, req.Date)
	if err != nil {
		if errors.Is(err, availability.ErrAvailabilityFetch) {
			uc.logger.Error("GetDaySchedule: availability fetch failed for %s: %v",
				req.Date.Format(domain.DateFormat), err)
			return nil, ErrAvailabilityFetch
		}
		uc.logger.Error("GetDaySchedule: availability error for %s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, ErrInternal
	}

	// 3. Строим сетку: каждый слот каталога получает состояние
	// Занятость имеет приоритет над пользовательским выбором
	slots := uc.catalog.Generate()
	entries := make([]Entry, 0, len(slots))

	for _, slot := range slots {
		state := domain.SlotAvailable
		switch {
		case occupancy.IsBooked(req.Date, slot):
			state = domain.SlotBooked
		case req.Selected != nil && *req.Selected == slot:
			state = domain.SlotSelected
		}

		entries = append(entries, Entry{
			Time:  slot,
			State: string(state),
		})
	}

	return &Response{
		Date:    req.Date,
		Entries: entries,
	}, nil
}
