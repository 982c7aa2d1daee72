package submit_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDate возвращается при попытке забронировать прошедшую дату
	ErrInvalidDate = errors.New("date is in the past")

	// ErrInvalidSlot возвращается, когда время не входит в сетку слотов
	ErrInvalidSlot = errors.New("time is not a valid slot")

	// ErrPackageNotFound возвращается, когда пакет не найден
	ErrPackageNotFound = errors.New("package not found")

	// ErrPackageInactive возвращается при попытке забронировать снятый с продажи пакет
	ErrPackageInactive = errors.New("package is not active")

	// ErrSlotTaken возвращается, когда слот уже занят
	ErrSlotTaken = errors.New("slot already taken")

	// ErrAvailabilityFetch возвращается, когда занятость дня недоступна
	// Бронирование в этом случае не создается
	ErrAvailabilityFetch = errors.New("availability is unavailable")

	// ErrPaymentOrder возвращается при ошибке создания платежного ордера
	// Бронирование при этом уже создано и остается в pending до истечения TTL
	ErrPaymentOrder = errors.New("failed to create payment order")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("internal error")
)
