package get_day_schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers"
	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	daySchedule "github.com/m04kA/PhotoStudio-BookingService/internal/usecase/get_day_schedule"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/types"
)

const (
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidSelected     = "некорректный формат параметра selected, ожидается HH:MM"
	msgDateInPast          = "дата уже прошла"
	msgScheduleUnavailable = "расписание временно недоступно, попробуйте позже"
)

type Handler struct {
	useCase GetDayScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetDayScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule?date=2026-03-15&selected=10:00
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &daySchedule.Request{Date: date}

	if raw := r.URL.Query().Get("selected"); raw != "" {
		selected, err := types.NewTimeStringFromString(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidSelected)
			return
		}
		req.Selected = &selected
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, daySchedule.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, daySchedule.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, daySchedule.ErrAvailabilityFetch):
			h.logger.Error("GET /schedule - Availability fetch failed: date=%s: %v",
				date.Format(domain.DateFormat), err)
			handlers.RespondServiceUnavailable(w, msgScheduleUnavailable)

		default:
			h.logger.Error("GET /schedule - Failed to build schedule: date=%s: %v",
				date.Format(domain.DateFormat), err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
