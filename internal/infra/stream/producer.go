package stream

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
)

// Producer отправляет события бронирований в kafka
type Producer struct {
	writer *kafka.Writer
}

// NewProducer создает producer для топика событий бронирований
func NewProducer(brokers []string, topic string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// Publish отправляет событие в топик
// Ключ сообщения - ID бронирования, чтобы события одного бронирования
// попадали в одну партицию и читались по порядку
func (p *Producer) Publish(ctx context.Context, event BookingEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("stream: Publish - marshal event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.BookingID),
		Value: payload,
	})
	if err != nil {
		return fmt.Errorf("stream: Publish - write message: %w", err)
	}

	return nil
}

// Close закрывает соединение с kafka
func (p *Producer) Close() error {
	return p.writer.Close()
}
