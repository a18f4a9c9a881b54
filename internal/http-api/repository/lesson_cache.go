package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"cursohub/internal/http-api/models"
)

const lessonCatalogKey = "lessons:catalog"

// LessonCache keeps the read-mostly lesson catalog in Redis so every page
// load does not hit postgres. A nil client degrades to a no-op cache.
type LessonCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewLessonCache connects to Redis at addr. An empty addr returns a disabled
// cache rather than an error, the API works without Redis.
func NewLessonCache(addr, password string, ttlSeconds int) (*LessonCache, error) {
	if addr == "" {
		return &LessonCache{}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &LessonCache{client: rdb, ttl: time.Duration(ttlSeconds) * time.Second}, nil
}

// Get returns the cached catalog, or (nil, nil) on a miss or disabled cache.
func (c *LessonCache) Get(ctx context.Context) ([]models.Lesson, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}

	raw, err := c.client.Get(ctx, lessonCatalogKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var list []models.Lesson
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Set stores the catalog with the configured TTL.
func (c *LessonCache) Set(ctx context.Context, list []models.Lesson) error {
	if c == nil || c.client == nil {
		return nil
	}

	raw, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, lessonCatalogKey, raw, c.ttl).Err()
}

// Invalidate drops the cached catalog after an admin mutation.
func (c *LessonCache) Invalidate(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, lessonCatalogKey).Err()
}
