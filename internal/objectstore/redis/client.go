package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/oggyb/messages-api/internal/objectstore"
	"github.com/redis/go-redis/v9"
)

// Client is a Redis-backed object store. Each object lives under the flat
// key "<bucket>:<key>"; buckets have no representation of their own.
type Client struct {
	rdb *redis.Client
}

// New creates a new Redis client with the given address, password and DB number.
func New(addr, password string, dbNumber int) *Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       dbNumber,
	})
	return &Client{rdb: rdb}
}

// Ping checks if Redis is reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Close releases the connection pool.
func (c *Client) Close() error {
	return c.rdb.Close()
}

// Put overwrites the value at bucket/key. The content type is not stored.
func (c *Client) Put(ctx context.Context, bucket, key string, body []byte, _ string) error {
	if err := c.rdb.Set(ctx, objectstore.Prefix(bucket).Key(key), body, 0).Err(); err != nil {
		return fmt.Errorf("put: %w", err)
	}
	return nil
}

// Get returns the stored value, or an error matching objectstore.ErrNotFound.
func (c *Client) Get(ctx context.Context, bucket, key string) ([]byte, error) {
	body, err := c.rdb.Get(ctx, objectstore.Prefix(bucket).Key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("get %s/%s: %w", bucket, key, objectstore.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get: %w", err)
	}
	return body, nil
}

// EnsureBucket only checks connectivity.
func (c *Client) EnsureBucket(ctx context.Context, _ string) error {
	return c.Ping(ctx)
}

var _ objectstore.Store = (*Client)(nil)
