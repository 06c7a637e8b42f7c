package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"restaurant_platform/internal/models"

	"github.com/go-redis/redis/v8"
)

type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// NewFromAddr builds a client against a raw address, used by tests.
func NewFromAddr(addr string) *Client {
	return &Client{rdb: redis.NewClient(&redis.Options{Addr: addr})}
}

// Branch menu caching
func (c *Client) SetBranchMenu(branchID uint, items []models.MenuItem, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal menu: %w", err)
	}
	key := fmt.Sprintf("menu:branch:%d", branchID)
	return c.rdb.Set(ctx, key, jsonData, ttl).Err()
}

func (c *Client) GetBranchMenu(branchID uint) ([]models.MenuItem, error) {
	ctx := context.Background()
	key := fmt.Sprintf("menu:branch:%d", branchID)
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("menu not cached")
		}
		return nil, fmt.Errorf("failed to get cached menu: %w", err)
	}

	var items []models.MenuItem
	if err := json.Unmarshal([]byte(val), &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached menu: %w", err)
	}
	return items, nil
}

func (c *Client) InvalidateBranchMenu(branchID uint) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, fmt.Sprintf("menu:branch:%d", branchID)).Err()
}

// Analytics caching
func (c *Client) SetAnalytics(key string, analytics *models.Analytics, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(analytics)
	if err != nil {
		return fmt.Errorf("failed to marshal analytics: %w", err)
	}
	return c.rdb.Set(ctx, "analytics:"+key, jsonData, ttl).Err()
}

func (c *Client) GetAnalytics(key string) (*models.Analytics, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "analytics:"+key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("analytics not cached")
		}
		return nil, fmt.Errorf("failed to get cached analytics: %w", err)
	}

	var analytics models.Analytics
	if err := json.Unmarshal([]byte(val), &analytics); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached analytics: %w", err)
	}
	return &analytics, nil
}

// Order number sequence. One counter per day, reset by key expiry, so order
// numbers stay short while remaining unique within the collection.
func (c *Client) NextOrderSequence(date string) (int64, error) {
	ctx := context.Background()
	key := "order_seq:" + date
	seq, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment order sequence: %w", err)
	}
	if seq == 1 {
		// First order of the day; let the counter expire after 48h.
		c.rdb.Expire(ctx, key, 48*time.Hour)
	}
	return seq, nil
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
