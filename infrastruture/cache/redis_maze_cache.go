// Package cache keeps finished mazes in Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-mazegen/maze"
	"github.com/beka-birhanu/vinom-mazegen/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// lockSuffix is appended to a cache key to name its build lock.
const lockSuffix = ":build_lock"

// RedisMazeCache stores encoded mazes in Redis with a TTL.
// Implements i.MazeCache.
type RedisMazeCache struct {
	client *redis.Client
	locker *redsync.Redsync
	codec  i.MazeCodec
	ttl    time.Duration
}

// NewRedisMazeCache initializes a RedisMazeCache with the provided Redis client, codec and TTL.
func NewRedisMazeCache(client *redis.Client, codec i.MazeCodec, ttlSeconds int) (*RedisMazeCache, error) {
	if client == nil || codec == nil {
		return nil, errors.New("redis maze cache: client and codec are required")
	}
	cache := &RedisMazeCache{
		client: client,
		codec:  codec,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	cache.locker = redsync.New(pool)
	return cache, nil
}

// Get returns the maze stored under key, or i.ErrCacheMiss.
func (c *RedisMazeCache) Get(ctx context.Context, key string) (*maze.Maze, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, i.ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}
	return c.codec.Decode(data)
}

// Set stores the maze under key, replacing any previous entry.
func (c *RedisMazeCache) Set(ctx context.Context, key string, m *maze.Maze) error {
	data, err := c.codec.Encode(m)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

// Lock takes the build lock of key. The returned func releases it.
func (c *RedisMazeCache) Lock(ctx context.Context, key string) (func(), error) {
	mutex := c.locker.NewMutex(key+lockSuffix, redsync.WithExpiry(10*time.Second))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, fmt.Errorf("locking %s: %w", key, err)
	}
	return func() {
		_, _ = mutex.UnlockContext(context.WithoutCancel(ctx))
	}, nil
}
