package get_day_schedule

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDate возвращается при запросе расписания на прошедшую дату
	ErrInvalidDate = errors.New("date is in the past")

	// ErrAvailabilityFetch возвращается, когда занятость дня недоступна
	// Расписание в этом случае не отдается вовсе
	ErrAvailabilityFetch = errors.New("availability is unavailable")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("internal error")
)
