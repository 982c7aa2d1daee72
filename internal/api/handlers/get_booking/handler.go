package get_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers"
	"github.com/m04kA/PhotoStudio-BookingService/internal/api/middleware"
	"github.com/m04kA/PhotoStudio-BookingService/internal/service/bookings"
)

const (
	msgBookingNotFound = "бронирование не найдено"
	msgAccessDenied    = "доступ запрещен"
)

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

// Handle GET /api/v1/bookings/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userRef, ok := middleware.GetUserRef(r.Context())
	if !ok && !middleware.IsAdmin(r.Context()) {
		handlers.RespondUnauthorized(w, "пользователь не определен")
		return
	}

	id := mux.Vars(r)["id"]

	result, err := h.bookingService.GetByID(r.Context(), id, userRef, middleware.IsAdmin(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /bookings/{id} - Failed to get booking: id=%s: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
