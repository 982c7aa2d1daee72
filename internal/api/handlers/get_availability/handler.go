package get_availability

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers"
	"github.com/m04kA/PhotoStudio-BookingService/internal/service/availability"
)

const (
	msgInvalidYear         = "некорректный параметр year"
	msgInvalidMonth        = "некорректный параметр month, ожидается 1-12"
	msgScheduleUnavailable = "расписание временно недоступно, попробуйте позже"
)

type Handler struct {
	availabilitySvc AvailabilityService
	logger          Logger
}

func NewHandler(availabilitySvc AvailabilityService, logger Logger) *Handler {
	return &Handler{
		availabilitySvc: availabilitySvc,
		logger:          logger,
	}
}

// Handle GET /api/v1/availability?year=2026&month=3
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 2000 || year > 2200 {
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	monthNum, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	occupancy, err := h.availabilitySvc.LoadMonth(r.Context(), year, time.Month(monthNum))
	if err != nil {
		// Недоступность расписания не маскируется пустым календарем
		if errors.Is(err, availability.ErrAvailabilityFetch) {
			h.logger.Error("GET /availability - Availability fetch failed: year=%d, month=%d: %v",
				year, monthNum, err)
			handlers.RespondServiceUnavailable(w, msgScheduleUnavailable)
			return
		}
		h.logger.Error("GET /availability - Failed to load month: year=%d, month=%d: %v",
			year, monthNum, err)
		handlers.RespondInternalError(w)
		return
	}

	monthKey := fmt.Sprintf("%04d-%02d", year, monthNum)
	handlers.RespondJSON(w, http.StatusOK, FromOccupancy(monthKey, occupancy))
}
