package stream

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
)

// Consumer читает события бронирований из kafka
type Consumer struct {
	reader *kafka.Reader
}

// NewConsumer создает consumer для топика событий бронирований
func NewConsumer(brokers []string, topic, groupID string) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: brokers,
			Topic:   topic,
			GroupID: groupID,
		}),
	}
}

// Fetch читает следующее событие из топика
// Блокируется до появления сообщения или отмены контекста
func (c *Consumer) Fetch(ctx context.Context) (BookingEvent, error) {
	var event BookingEvent

	msg, err := c.reader.ReadMessage(ctx)
	if err != nil {
		return event, fmt.Errorf("stream: Fetch - read message: %w", err)
	}

	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return event, fmt.Errorf("stream: Fetch - unmarshal event: %w", err)
	}

	return event, nil
}

// Close закрывает соединение с kafka
func (c *Consumer) Close() error {
	return c.reader.Close()
}
