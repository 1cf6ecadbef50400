package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"WayToEarth/storage/redis"
)

func setupRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()

	mr := miniredis.RunT(t)
	redis.SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	return mr
}

func TestMessageMarks(t *testing.T) {
	setupRedis(t)
	ctx := context.Background()

	first, err := TryMarkMessageProcessing(ctx, "m1", time.Minute)
	require.NoError(t, err)
	require.True(t, first)

	again, err := TryMarkMessageProcessing(ctx, "m1", time.Minute)
	require.NoError(t, err)
	require.False(t, again)

	require.NoError(t, UnmarkMessageProcessing(ctx, "m1"))
	retry, err := TryMarkMessageProcessing(ctx, "m1", time.Minute)
	require.NoError(t, err)
	require.True(t, retry)

	require.NoError(t, MarkMessageProcessed(ctx, "m1", 0))
	done, err := TryMarkMessageProcessing(ctx, "m1", time.Minute)
	require.NoError(t, err)
	require.False(t, done)
}

func TestLockOwnership(t *testing.T) {
	mr := setupRedis(t)
	ctx := context.Background()

	ok, err := TryLock(ctx, "sweep", "a", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = TryLock(ctx, "sweep", "b", time.Minute)
	require.NoError(t, err)
	require.False(t, ok)

	// 非持有者释放无效
	require.NoError(t, Unlock(ctx, "sweep", "b"))
	require.True(t, mr.Exists(redis.Key(lockPrefix, "sweep")))

	require.NoError(t, Unlock(ctx, "sweep", "a"))
	require.False(t, mr.Exists(redis.Key(lockPrefix, "sweep")))

	ok, err = TryLock(ctx, "sweep", "b", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(2 * time.Minute)
	ok, err = TryLock(ctx, "sweep", "c", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)
}
