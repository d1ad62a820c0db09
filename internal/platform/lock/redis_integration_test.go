//go:build integration

package lock_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"attendsync/internal/platform/lock"
	"attendsync/pkg/testutil/containers"
)

type RedisLockSuite struct {
	suite.Suite
	redis *containers.RedisContainer
}

func TestRedisLockSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisLockSuite))
}

func (s *RedisLockSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
}

func (s *RedisLockSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisLockSuite) TestSingleHolder() {
	ctx := context.Background()
	first := lock.NewRedisLock(s.redis.Client, "sync:pass", time.Minute)
	second := lock.NewRedisLock(s.redis.Client, "sync:pass", time.Minute)

	held, err := first.TryLock(ctx)
	s.Require().NoError(err)
	s.True(held)

	held, err = second.TryLock(ctx)
	s.Require().NoError(err)
	s.False(held, "lock is exclusive across holders")

	s.Require().NoError(first.Unlock(ctx))

	held, err = second.TryLock(ctx)
	s.Require().NoError(err)
	s.True(held, "released lock can be re-acquired")
}

func (s *RedisLockSuite) TestUnlockLeavesForeignLockAlone() {
	ctx := context.Background()
	stale := lock.NewRedisLock(s.redis.Client, "sync:pass", 50*time.Millisecond)
	fresh := lock.NewRedisLock(s.redis.Client, "sync:pass", time.Minute)

	held, err := stale.TryLock(ctx)
	s.Require().NoError(err)
	s.True(held)

	// TTL lapses and another pass takes over.
	s.Require().Eventually(func() bool {
		held, err := fresh.TryLock(ctx)
		s.Require().NoError(err)
		return held
	}, 2*time.Second, 20*time.Millisecond)

	s.Require().NoError(stale.Unlock(ctx))

	held, err = lock.NewRedisLock(s.redis.Client, "sync:pass", time.Minute).TryLock(ctx)
	s.Require().NoError(err)
	s.False(held, "current holder kept the lock through the stale release")
}

func (s *RedisLockSuite) TestUnlockWithoutLockIsNoop() {
	l := lock.NewRedisLock(s.redis.Client, "sync:pass", time.Minute)
	s.Require().NoError(l.Unlock(context.Background()))
}
