package notifier

import (
	"context"
	"fmt"

	"github.com/m04kA/PhotoStudio-BookingService/internal/infra/stream"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Sender отправляет письма по событиям бронирований
// Пока вместо SMTP пишет письмо в лог, транспорт подключается отдельно
type Sender struct {
	logger Logger
}

// NewSender создает отправитель писем
func NewSender(logger Logger) *Sender {
	return &Sender{logger: logger}
}

// Send отправляет письмо по событию
func (s *Sender) Send(ctx context.Context, event stream.BookingEvent) error {
	subject, body := composeMessage(event)
	if subject == "" {
		s.logger.Warn("Send: unknown event type %q for booking %s, skipping", event.Type, event.BookingID)
		return nil
	}

	s.logger.Info("Send: to=%s subject=%q body=%q", event.Email, subject, body)
	return nil
}

// composeMessage строит тему и текст письма по типу события
func composeMessage(event stream.BookingEvent) (subject, body string) {
	switch event.Type {
	case stream.EventBookingConfirmed:
		return "Бронирование подтверждено",
			fmt.Sprintf("%s, ваша фотосессия %s в %s подтверждена.", event.FullName, event.Date, event.Time)
	case stream.EventBookingRejected:
		return "Бронирование отменено",
			fmt.Sprintf("%s, ваша фотосессия %s в %s отменена. Причина: %s.", event.FullName, event.Date, event.Time, event.Reason)
	case stream.EventBookingExpired:
		return "Бронирование не оплачено",
			fmt.Sprintf("%s, бронирование на %s в %s снято: %s.", event.FullName, event.Date, event.Time, event.Reason)
	default:
		return "", ""
	}
}
