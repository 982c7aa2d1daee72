package get_user_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers"
	"github.com/m04kA/PhotoStudio-BookingService/internal/api/middleware"
	"github.com/m04kA/PhotoStudio-BookingService/internal/service/bookings"
	"github.com/m04kA/PhotoStudio-BookingService/internal/service/bookings/models"
)

const msgInvalidStatus = "некорректный статус бронирования"

type Handler struct {
	bookingService BookingService
	logger         Logger
}

func NewHandler(bookingService BookingService, logger Logger) *Handler {
	return &Handler{
		bookingService: bookingService,
		logger:         logger,
	}
}

// Handle GET /api/v1/bookings?status=paid
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userRef, ok := middleware.GetUserRef(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "пользователь не определен")
		return
	}

	req := &models.GetUserBookingsRequest{UserRef: userRef}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.bookingService.GetUserBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /bookings - Failed to get user bookings: user=%s: %v", userRef, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
