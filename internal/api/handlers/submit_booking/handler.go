package submit_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers"
	"github.com/m04kA/PhotoStudio-BookingService/internal/api/middleware"
	submitBooking "github.com/m04kA/PhotoStudio-BookingService/internal/usecase/submit_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDateOrTime   = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidInput        = "некорректные данные бронирования"
	msgDateInPast          = "дата уже прошла"
	msgInvalidSlot         = "время не входит в сетку слотов"
	msgPackageNotFound     = "пакет не найден"
	msgPackageInactive     = "пакет снят с продажи"
	msgSlotTaken           = "выбранный слот уже занят"
	msgScheduleUnavailable = "расписание временно недоступно, попробуйте позже"
	msgPaymentOrderFailed  = "не удалось создать платеж, попробуйте оплатить позже"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userRef, ok := middleware.GetUserRef(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "пользователь не определен")
		return
	}

	var req SubmitBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userRef)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, submitBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user=%s: %v", userRef, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, submitBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Date in past: user=%s, date=%s", userRef, req.BookingDate)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, submitBooking.ErrInvalidSlot):
			h.logger.Warn("POST /bookings - Invalid slot: user=%s, time=%s", userRef, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, submitBooking.ErrPackageNotFound):
			h.logger.Warn("POST /bookings - Package not found: package=%s", req.PackageID)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, submitBooking.ErrPackageInactive):
			h.logger.Warn("POST /bookings - Package inactive: package=%s", req.PackageID)
			handlers.RespondBadRequest(w, msgPackageInactive)

		case errors.Is(err, submitBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: user=%s, date=%s, time=%s",
				userRef, req.BookingDate, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, submitBooking.ErrAvailabilityFetch):
			h.logger.Error("POST /bookings - Availability fetch failed: user=%s: %v", userRef, err)
			handlers.RespondServiceUnavailable(w, msgScheduleUnavailable)

		case errors.Is(err, submitBooking.ErrPaymentOrder):
			// Бронирование создано, но платеж не стартовал
			h.logger.Error("POST /bookings - Payment order failed: user=%s: %v", userRef, err)
			handlers.RespondError(w, http.StatusBadGateway, msgPaymentOrderFailed)

		default:
			h.logger.Error("POST /bookings - Failed to submit booking: user=%s: %v", userRef, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
