package confirm_payment

// Request модель callback платежного шлюза
type Request struct {
	BookingID string
	OrderID   string
	PaymentID string
	Signature string
}

// Response модель ответа на подтверждение оплаты
type Response struct {
	BookingID string
	Status    string
}
