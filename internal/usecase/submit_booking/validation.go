package submit_booking

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.UserRef) == "" {
		return fmt.Errorf("%w: userRef is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.PackageID) == "" {
		return fmt.Errorf("%w: packageId is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.String() == "" {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.FullName)
	if name == "" {
		return fmt.Errorf("%w: fullName is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxFullNameLength {
		return fmt.Errorf("%w: fullName is too long", ErrInvalidInput)
	}

	if err := validateEmail(req.Email); err != nil {
		return err
	}

	if err := validateMobile(req.Mobile); err != nil {
		return err
	}

	if !req.Location.IsValid() {
		return fmt.Errorf("%w: location is out of range", ErrInvalidInput)
	}

	return nil
}

// validateEmail проверяет адрес электронной почты
func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if len(email) > domain.MaxEmailLength {
		return fmt.Errorf("%w: email is too long", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: email is malformed", ErrInvalidInput)
	}
	return nil
}

// validateMobile проверяет номер телефона
// Формат свободный, проверяются только длина и набор символов
func validateMobile(mobile string) error {
	trimmed := strings.TrimSpace(mobile)
	if trimmed == "" {
		return fmt.Errorf("%w: mobile is required", ErrInvalidInput)
	}
	if len(trimmed) > domain.MaxMobileLength {
		return fmt.Errorf("%w: mobile is too long", ErrInvalidInput)
	}
	for _, r := range trimmed {
		if r >= '0' && r <= '9' {
			continue
		}
		if r == '+' || r == '-' || r == ' ' || r == '(' || r == ')' {
			continue
		}
		return fmt.Errorf("%w: mobile contains invalid characters", ErrInvalidInput)
	}
	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date time.Time, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(today)
}
