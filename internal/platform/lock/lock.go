// Package lock serializes reconciliation passes. Two passes sweeping the
// same pending set can double-process a record between the duplicate-check
// read and the checkin write; holders of the lock are guaranteed to be the
// only active pass.
package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisLock is a single-holder lock with a TTL safety valve: a crashed
// holder frees the lock when the TTL lapses instead of wedging the schedule.
type RedisLock struct {
	client *redis.Client
	key    string
	ttl    time.Duration

	mu    sync.Mutex
	token string
}

func NewRedisLock(client *redis.Client, key string, ttl time.Duration) *RedisLock {
	return &RedisLock{client: client, key: key, ttl: ttl}
}

func (l *RedisLock) TryLock(ctx context.Context) (bool, error) {
	token := uuid.NewString()
	acquired, err := l.client.SetNX(ctx, l.key, token, l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("acquire lock %s: %w", l.key, err)
	}
	if acquired {
		l.mu.Lock()
		l.token = token
		l.mu.Unlock()
	}
	return acquired, nil
}

// Unlock releases the lock only when we still hold it; a TTL-expired lock
// re-acquired by another pass is left alone.
var unlockScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

func (l *RedisLock) Unlock(ctx context.Context) error {
	l.mu.Lock()
	token := l.token
	l.token = ""
	l.mu.Unlock()
	if token == "" {
		return nil
	}

	if err := unlockScript.Run(ctx, l.client, []string{l.key}, token).Err(); err != nil {
		return fmt.Errorf("release lock %s: %w", l.key, err)
	}
	return nil
}

// MemoryLock serializes passes within one process. Used in tests and when
// redis is not configured.
type MemoryLock struct {
	mu sync.Mutex
}

func NewMemoryLock() *MemoryLock {
	return &MemoryLock{}
}

func (l *MemoryLock) TryLock(_ context.Context) (bool, error) {
	return l.mu.TryLock(), nil
}

func (l *MemoryLock) Unlock(_ context.Context) error {
	l.mu.Unlock()
	return nil
}
