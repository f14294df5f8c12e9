// Package storage keeps dictionary verdicts in Redis so repeated guesses
// do not hit the validity service again.
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// Redis key prefix
	verdictKeyPrefix = "wordle:valid:"

	// DefaultVerdictTTL is used when SaveVerdict gets a non-positive ttl.
	DefaultVerdictTTL = 24 * time.Hour
)

// Options mirrors the redis section of the config.
type Options struct {
	Addr     string
	Password string
	DB       int
}

// NewClient creates a Redis client and checks that it answers.
func NewClient(ctx context.Context, opts Options) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}
	return rdb, nil
}

// RedisStore stores one verdict per word.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// SaveVerdict records whether word is a real word.
func (rs *RedisStore) SaveVerdict(ctx context.Context, word string, valid bool, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultVerdictTTL
	}
	val := "0"
	if valid {
		val = "1"
	}
	return rs.client.Set(ctx, verdictKeyPrefix+word, val, ttl).Err()
}

// LoadVerdict returns the stored verdict. found is false when nothing is
// stored for word.
func (rs *RedisStore) LoadVerdict(ctx context.Context, word string) (valid, found bool, err error) {
	v, err := rs.client.Get(ctx, verdictKeyPrefix+word).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, false, nil
		}
		return false, false, err
	}
	return v == "1", true, nil
}

// DeleteVerdict forgets the verdict for word.
func (rs *RedisStore) DeleteVerdict(ctx context.Context, word string) error {
	return rs.client.Del(ctx, verdictKeyPrefix+word).Err()
}

// Close closes the underlying client.
func (rs *RedisStore) Close() error {
	return rs.client.Close()
}
