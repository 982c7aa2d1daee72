package reject_booking

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers"
	"github.com/m04kA/PhotoStudio-BookingService/internal/service/bookings"
	"github.com/m04kA/PhotoStudio-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgReasonRequired     = "не указана причина отмены"
	msgBookingNotFound    = "бронирование не найдено"
	msgCannotReject       = "бронирование уже снято"
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

// Handle POST /api/v1/admin/bookings/{id}/reject
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.RejectBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/bookings/{id}/reject - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if strings.TrimSpace(req.Reason) == "" {
		handlers.RespondBadRequest(w, msgReasonRequired)
		return
	}

	result, err := h.bookingService.Reject(r.Context(), id, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrCannotReject):
			handlers.RespondError(w, http.StatusConflict, msgCannotReject)

		default:
			h.logger.Error("POST /admin/bookings/{id}/reject - Failed to reject booking: id=%s: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
