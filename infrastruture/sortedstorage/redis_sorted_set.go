package sortedstorage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisSortedSet keeps a capped, score-ordered set in Redis. Only the
// highest-scoring members survive once the cap is reached.
// Implements i.SortedSet.
type RedisSortedSet struct {
	client   *redis.Client
	capacity int64
}

// NewRedisSortedSet initializes a RedisSortedSet with the provided Redis client and capacity.
func NewRedisSortedSet(client *redis.Client, capacity int64) (*RedisSortedSet, error) {
	if client == nil {
		return nil, errors.New("redis sorted set: client is required")
	}
	if capacity <= 0 {
		return nil, errors.New("redis sorted set: capacity must be positive")
	}
	return &RedisSortedSet{client: client, capacity: capacity}, nil
}

// Add inserts or rescores member, then drops the lowest scores beyond capacity.
func (rs *RedisSortedSet) Add(ctx context.Context, key string, score float64, member string) error {
	_, err := rs.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, key, redis.Z{Score: score, Member: member})
		pipe.ZRemRangeByRank(ctx, key, 0, -rs.capacity-1)
		return nil
	})
	return err
}

// Top returns up to n members with the highest scores, best first.
func (rs *RedisSortedSet) Top(ctx context.Context, key string, n int64) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	return rs.client.ZRevRange(ctx, key, 0, n-1).Result()
}

// Count returns the number of members in the sorted set.
func (rs *RedisSortedSet) Count(ctx context.Context, key string) int64 {
	return rs.client.ZCard(ctx, key).Val()
}
