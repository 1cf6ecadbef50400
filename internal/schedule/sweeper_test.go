package schedule

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakePurger struct {
	cutoffs []time.Time
}

func (f *fakePurger) PurgeExpired(_ context.Context, cutoff time.Time) (int64, error) {
	f.cutoffs = append(f.cutoffs, cutoff)
	return 3, nil
}

type fakeEmblemSweeper struct {
	calls int
}

func (f *fakeEmblemSweeper) SweepAll(context.Context) (int64, error) {
	f.calls++
	return 2, nil
}

type memoryLocks struct {
	mu   sync.Mutex
	held map[string]string
}

func (m *memoryLocks) funcs() lockFuncs {
	m.held = map[string]string{}
	return lockFuncs{
		tryLock: func(_ context.Context, key, owner string, _ time.Duration) (bool, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			if _, ok := m.held[key]; ok {
				return false, nil
			}
			m.held[key] = owner
			return true, nil
		},
		unlock: func(_ context.Context, key, owner string) error {
			m.mu.Lock()
			defer m.mu.Unlock()
			if m.held[key] == owner {
				delete(m.held, key)
			}
			return nil
		},
	}
}

func TestPurgeFingerprintsUsesRetentionCutoff(t *testing.T) {
	purger := &fakePurger{}
	locks := &memoryLocks{}
	s := newSweeper(purger, &fakeEmblemSweeper{}, locks.funcs(), 24*time.Hour)
	now := time.Date(2026, 4, 2, 3, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	deleted, err := s.PurgeFingerprints(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(3), deleted)
	require.Equal(t, []time.Time{now.Add(-24 * time.Hour)}, purger.cutoffs)
	require.Empty(t, locks.held, "lock released after the run")
}

func TestSweepSkippedWhenAnotherInstanceHoldsLock(t *testing.T) {
	emblems := &fakeEmblemSweeper{}
	locks := &memoryLocks{}
	s := newSweeper(&fakePurger{}, emblems, locks.funcs(), time.Hour)

	locks.held[emblemLockKey] = "other-instance"
	granted, err := s.SweepEmblems(context.Background())
	require.NoError(t, err)
	require.Zero(t, granted)
	require.Zero(t, emblems.calls)
	require.Equal(t, "other-instance", locks.held[emblemLockKey])

	delete(locks.held, emblemLockKey)
	granted, err = s.SweepEmblems(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(2), granted)
	require.Equal(t, 1, emblems.calls)
}
