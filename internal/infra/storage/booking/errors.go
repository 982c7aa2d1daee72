package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotTaken возвращается, когда слот уже занят другим бронированием
	// (нарушение частичного уникального индекса по дате и времени)
	ErrSlotTaken = errors.New("booking.repository: slot already taken")

	// ErrNotPending возвращается, когда условное обновление не прошло
	// из-за того, что бронирование уже не в статусе pending
	ErrNotPending = errors.New("booking.repository: booking is not pending")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
