package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/contest-hub/backend/internal/models"
	"github.com/redis/go-redis/v9"
)

const approvedKey = "contests:approved"

// RedisContestCache implements ContestCache on a single redis key with a
// short TTL. Invalidation deletes the key; the next listing repopulates it.
type RedisContestCache struct {
	client *redis.Client
	ttl    time.Duration
	ctx    context.Context
}

func NewRedisContestCache(redisURL string, ttl time.Duration) (*RedisContestCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisContestCache{
		client: client,
		ttl:    ttl,
		ctx:    ctx,
	}, nil
}

func (c *RedisContestCache) SetApproved(contests []models.Contest) error {
	data, err := json.Marshal(contests)
	if err != nil {
		return err
	}

	return c.client.Set(c.ctx, approvedKey, data, c.ttl).Err()
}

func (c *RedisContestCache) GetApproved() ([]models.Contest, bool, error) {
	data, err := c.client.Get(c.ctx, approvedKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var contests []models.Contest
	if err := json.Unmarshal(data, &contests); err != nil {
		return nil, false, err
	}

	return contests, true, nil
}

func (c *RedisContestCache) Invalidate() error {
	return c.client.Del(c.ctx, approvedKey).Err()
}

func (c *RedisContestCache) Close() error {
	return c.client.Close()
}

// Client exposes the underlying redis client so other components (the rate
// limiter) can share one connection.
func (c *RedisContestCache) Client() *redis.Client {
	return c.client
}
