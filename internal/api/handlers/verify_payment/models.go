package verify_payment

import (
	confirmPayment "github.com/m04kA/PhotoStudio-BookingService/internal/usecase/confirm_payment"
)

// VerifyPaymentRequest HTTP request model
// Имена полей повторяют callback платежного шлюза
type VerifyPaymentRequest struct {
	BookingID         string `json:"bookingId"`
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

// VerifyPaymentResponse HTTP response model
type VerifyPaymentResponse struct {
	BookingID string `json:"bookingId"`
	Status    string `json:"status"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *VerifyPaymentRequest) ToUseCaseRequest() *confirmPayment.Request {
	return &confirmPayment.Request{
		BookingID: r.BookingID,
		OrderID:   r.RazorpayOrderID,
		PaymentID: r.RazorpayPaymentID,
		Signature: r.RazorpaySignature,
	}
}
