package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// invalidationChannel канал pub/sub для рассылки инвалидаций снимка занятости
// На него подписаны все инстансы сервиса
const invalidationChannel = "availability:invalidate"

// occupancyKeyPrefix префикс ключей снимков занятости, далее идет YYYY-MM
const occupancyKeyPrefix = "occupancy:"

// OccupancyCache кеш месячных снимков занятости поверх redis
type OccupancyCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewOccupancyCache создает кеш снимков занятости
func NewOccupancyCache(client *redis.Client, ttl time.Duration) *OccupancyCache {
	return &OccupancyCache{
		client: client,
		ttl:    ttl,
	}
}

// Get читает снимок занятости месяца из кеша
// monthKey в формате YYYY-MM
func (c *OccupancyCache) Get(ctx context.Context, monthKey string) (domain.Occupancy, error) {
	raw, err := c.client.Get(ctx, occupancyKeyPrefix+monthKey).Bytes()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - %v", ErrCacheUnavailable, err)
	}

	var occupancy domain.Occupancy
	if err := json.Unmarshal(raw, &occupancy); err != nil {
		// Битое значение выбрасываем, чтобы следующий запрос перечитал из БД
		c.client.Del(ctx, occupancyKeyPrefix+monthKey)
		return nil, ErrCacheMiss
	}

	return occupancy, nil
}

// Set записывает снимок занятости месяца в кеш
func (c *OccupancyCache) Set(ctx context.Context, monthKey string, occupancy domain.Occupancy) error {
	raw, err := json.Marshal(occupancy)
	if err != nil {
		return fmt.Errorf("%w: Set - marshal occupancy: %v", ErrCacheUnavailable, err)
	}

	if err := c.client.Set(ctx, occupancyKeyPrefix+monthKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set - %v", ErrCacheUnavailable, err)
	}

	return nil
}

// Invalidate удаляет снимок занятости месяца из кеша
func (c *OccupancyCache) Invalidate(ctx context.Context, monthKey string) error {
	if err := c.client.Del(ctx, occupancyKeyPrefix+monthKey).Err(); err != nil {
		return fmt.Errorf("%w: Invalidate - %v", ErrCacheUnavailable, err)
	}
	return nil
}

// PublishInvalidation рассылает событие инвалидации месяца остальным инстансам
func (c *OccupancyCache) PublishInvalidation(ctx context.Context, monthKey string) error {
	if err := c.client.Publish(ctx, invalidationChannel, monthKey).Err(); err != nil {
		return fmt.Errorf("%w: PublishInvalidation - %v", ErrCacheUnavailable, err)
	}
	return nil
}

// SubscribeInvalidation подписывается на события инвалидации
// Канал закрывается при отмене контекста
func (c *OccupancyCache) SubscribeInvalidation(ctx context.Context) <-chan string {
	sub := c.client.Subscribe(ctx, invalidationChannel)
	out := make(chan string)

	go func() {
		defer close(out)
		defer sub.Close()

		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				select {
				case out <- msg.Payload:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}
