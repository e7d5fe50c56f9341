// File: services/reminder/cache.go
package reminder

import (
	"context"
	"encoding/json"
	"time"

	"remindly/models"

	"github.com/go-redis/redis/v8"
)

const listCachePrefix = "reminders:user:"

// RedisListCache stores each user's full reminder list as one JSON value
// with a TTL, invalidated wholesale on any write for that user.
type RedisListCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisListCache(client *redis.Client, ttl time.Duration) *RedisListCache {
	return &RedisListCache{client: client, ttl: ttl}
}

func (c *RedisListCache) Get(ctx context.Context, userID string) ([]models.ReminderView, bool, error) {
	data, err := c.client.Get(ctx, listCachePrefix+userID).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var views []models.ReminderView
	if err := json.Unmarshal([]byte(data), &views); err != nil {
		return nil, false, err
	}
	return views, true, nil
}

func (c *RedisListCache) Set(ctx context.Context, userID string, views []models.ReminderView) error {
	b, err := json.Marshal(views)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, listCachePrefix+userID, b, c.ttl).Err()
}

func (c *RedisListCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, listCachePrefix+userID).Err()
}
