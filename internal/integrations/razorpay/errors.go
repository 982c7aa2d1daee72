package razorpay

import "errors"

var (
	// ErrCreateOrder возвращается при ошибке создания платежного ордера
	ErrCreateOrder = errors.New("razorpay.client: failed to create order")

	// ErrUnexpectedStatus возвращается при неожиданном HTTP статусе от шлюза
	ErrUnexpectedStatus = errors.New("razorpay.client: unexpected response status")

	// ErrDecodeResponse возвращается при ошибке разбора ответа шлюза
	ErrDecodeResponse = errors.New("razorpay.client: failed to decode response")
)
