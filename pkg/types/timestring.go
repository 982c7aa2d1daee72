package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeFormat формат времени слота (HH:MM)
const TimeFormat = "15:04"

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("types: invalid time string format")
)

// TimeString время начала слота в формате "HH:MM"
// Хранится в БД как строка, сравнивается лексикографически после нормализации
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeFormat))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(TimeFormat, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return NewTimeString(t), nil
}

// String возвращает строковое представление времени
func (ts TimeString) String() string {
	return string(ts)
}

// toTime парсит TimeString во внутреннее time.Time
func (ts TimeString) toTime() (time.Time, error) {
	t, err := time.Parse(TimeFormat, string(ts))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return t, nil
}

// IsBefore возвращает true, если ts строго раньше other
func (ts TimeString) IsBefore(other TimeString) bool {
	t1, err1 := ts.toTime()
	t2, err2 := other.toTime()
	if err1 != nil || err2 != nil {
		return false
	}
	return t1.Before(t2)
}

// IsAfter возвращает true, если ts строго позже other
func (ts TimeString) IsAfter(other TimeString) bool {
	t1, err1 := ts.toTime()
	t2, err2 := other.toTime()
	if err1 != nil || err2 != nil {
		return false
	}
	return t1.After(t2)
}

// AddMinutes возвращает новый TimeString со сдвигом на minutes минут вперёд
// Возвращает ошибку, если результат выходит за пределы суток
func (ts TimeString) AddMinutes(minutes int) (TimeString, error) {
	t, err := ts.toTime()
	if err != nil {
		return "", err
	}

	shifted := t.Add(time.Duration(minutes) * time.Minute)

	// Переход через полночь для слотов не имеет смысла
	if shifted.Day() != t.Day() {
		return "", fmt.Errorf("%w: %s + %d minutes crosses midnight", ErrInvalidTimeString, ts, minutes)
	}

	return NewTimeString(shifted), nil
}

// Value реализует driver.Valuer для записи в БД
func (ts TimeString) Value() (driver.Value, error) {
	if _, err := ts.toTime(); err != nil {
		return nil, err
	}
	return string(ts), nil
}

// Scan реализует sql.Scanner для чтения из БД
// Поддерживает строки вида "HH:MM" и "HH:MM:SS" (тип time в postgres)
func (ts *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		return ts.scanString(v)
	case []byte:
		return ts.scanString(string(v))
	case time.Time:
		*ts = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeString, src)
	}
}

func (ts *TimeString) scanString(s string) error {
	// Postgres может вернуть время с секундами
	if len(s) > 5 {
		s = s[:5]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}
