package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFingerprintIDEmbedsTripleAndTimestamp(t *testing.T) {
	at := time.Date(2026, 4, 1, 7, 0, 0, 0, time.UTC)
	require.Equal(t, "s1:42:2.500:"+"1775026800000", FingerprintID("s1", 42, 2.5, at))
	require.NotEqual(t, FingerprintID("s1", 42, 2.5, at), FingerprintID("s1", 42, 2.5, at.Add(time.Millisecond)))
	require.Equal(t, DistanceKey(2.5), DistanceKey(2.5000001))
}

func TestDedupGuardWindowAndPurge(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	clock := newFakeClock()

	guard := NewDedupGuard(f.db, 30*time.Second)
	guard.now = clock.Now

	dup, err := guard.IsDuplicate(ctx, "s1", 42, 2.5, 0)
	require.NoError(t, err)
	require.False(t, dup)

	require.NoError(t, guard.Record(ctx, "s1", 42, 2.5))

	clock.Advance(10 * time.Second)
	dup, err = guard.IsDuplicate(ctx, "s1", 42, 2.5, 0)
	require.NoError(t, err)
	require.True(t, dup)

	// 各个键互相独立
	dup, err = guard.IsDuplicate(ctx, "s1", 42, 2.6, 0)
	require.NoError(t, err)
	require.False(t, dup)
	dup, err = guard.IsDuplicate(ctx, "s2", 42, 2.5, 0)
	require.NoError(t, err)
	require.False(t, dup)

	// 显式传入更短的窗口
	dup, err = guard.IsDuplicate(ctx, "s1", 42, 2.5, 5*time.Second)
	require.NoError(t, err)
	require.False(t, dup)

	clock.Advance(25 * time.Second)
	dup, err = guard.IsDuplicate(ctx, "s1", 42, 2.5, 0)
	require.NoError(t, err)
	require.False(t, dup)

	deleted, err := guard.PurgeExpired(ctx, clock.Now().Add(-time.Second))
	require.NoError(t, err)
	require.Equal(t, int64(1), deleted)

	deleted, err = guard.PurgeExpired(ctx, clock.Now())
	require.NoError(t, err)
	require.Zero(t, deleted)
}

func TestDedupAppliesSkipsSubMetreDeltas(t *testing.T) {
	require.True(t, dedupApplies("s1", 2.5))
	require.True(t, dedupApplies("s1", 0.0006)) // 取整为 0.001
	require.False(t, dedupApplies("s1", 0.0004))
	require.False(t, dedupApplies("s1", 0))
	require.False(t, dedupApplies("", 2.5))
}
