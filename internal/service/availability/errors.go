package availability

import "errors"

var (
	// ErrAvailabilityFetch возвращается, когда снимок занятости не удалось
	// построить из хранилища. Слои выше обязаны трактовать это как
	// недоступность расписания, а не как свободный день
	ErrAvailabilityFetch = errors.New("availability: failed to fetch occupancy")

	// ErrInvalidRange возвращается при некорректном диапазоне дат
	ErrInvalidRange = errors.New("availability: invalid date range")
)
