// Package cache provides a Redis-backed cache for category reference data.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aliskhannn/trivia-api/internal/domain/entities"
)

const categoriesKey = "trivia:categories"

// CategoryCache stores the category list as JSON under a single key.
type CategoryCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewCategoryCache(client redis.Cmdable, ttl time.Duration) *CategoryCache {
	return &CategoryCache{client: client, ttl: ttl}
}

// NewClient parses a redis:// URL and checks the connection.
func NewClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}

// GetCategories returns the cached categories; ok is false on a miss.
func (c *CategoryCache) GetCategories(ctx context.Context) ([]entities.Category, bool, error) {
	data, err := c.client.Get(ctx, categoriesKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get categories: %w", err)
	}

	var categories []entities.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, false, fmt.Errorf("decode categories: %w", err)
	}

	return categories, true, nil
}

func (c *CategoryCache) SetCategories(ctx context.Context, categories []entities.Category) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("encode categories: %w", err)
	}

	if err := c.client.Set(ctx, categoriesKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("set categories: %w", err)
	}

	return nil
}
