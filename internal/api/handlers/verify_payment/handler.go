package verify_payment

import (
	"errors"
	"net/http"

	"github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers"
	confirmPayment "github.com/m04kA/PhotoStudio-BookingService/internal/usecase/confirm_payment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные платежа"
	msgBookingNotFound    = "бронирование не найдено"
	msgVerificationFailed = "проверка платежа не пройдена"
	msgAlreadyProcessed   = "бронирование уже обработано"
)

type Handler struct {
	useCase ConfirmPaymentUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/verify
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req VerifyPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/verify - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, confirmPayment.ErrInvalidInput):
			h.logger.Warn("POST /payments/verify - Invalid input: booking=%s: %v", req.BookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, confirmPayment.ErrBookingNotFound):
			h.logger.Warn("POST /payments/verify - Booking not found: booking=%s", req.BookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, confirmPayment.ErrVerificationFailed):
			h.logger.Warn("POST /payments/verify - Verification failed: booking=%s", req.BookingID)
			handlers.RespondBadRequest(w, msgVerificationFailed)

		case errors.Is(err, confirmPayment.ErrAlreadyProcessed):
			h.logger.Warn("POST /payments/verify - Already processed: booking=%s", req.BookingID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyProcessed)

		default:
			h.logger.Error("POST /payments/verify - Failed to confirm payment: booking=%s: %v",
				req.BookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &VerifyPaymentResponse{
		BookingID: result.BookingID,
		Status:    result.Status,
	})
}
