package confirm_payment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrVerificationFailed возвращается, когда подпись не сходится
	// или ордер не принадлежит бронированию. Случаи не различаются,
	// чтобы ответ не подсказывал, какая часть проверки не прошла
	ErrVerificationFailed = errors.New("payment verification failed")

	// ErrAlreadyProcessed возвращается при повторной обработке callback:
	// бронирование уже не в статусе pending
	ErrAlreadyProcessed = errors.New("booking already processed")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("internal error")
)
