package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"WayToEarth/internal/model"
	"WayToEarth/internal/repository"
	pkgerrors "WayToEarth/pkg/errors"
)

func TestAwardIfEligibleDistanceBoundary(t *testing.T) {
	h := newProgressHarness(t)
	ctx := context.Background()

	exact := h.user(t)
	below := h.user(t)
	ten := h.emblem(t, "ten-k", model.ConditionDistance, 10)

	start := h.clock.Now()
	h.completedRun(t, exact.ID, start, 4, 330)
	h.completedRun(t, exact.ID, start.Add(time.Hour), 6, 330)
	h.completedRun(t, below.ID, start, 9, 330)

	granted, err := h.emblems.AwardIfEligible(ctx, exact.ID, ten.ID)
	require.NoError(t, err)
	require.True(t, granted)

	granted, err = h.emblems.AwardIfEligible(ctx, below.ID, ten.ID)
	require.NoError(t, err)
	require.False(t, granted)

	// 已拥有返回 false
	granted, err = h.emblems.AwardIfEligible(ctx, exact.ID, ten.ID)
	require.NoError(t, err)
	require.False(t, granted)

	require.True(t, MeetsThreshold(0.1+0.2, 0.3))
	require.False(t, MeetsThreshold(9.999, 10))
}

func TestAwardIfEligibleConcurrentCallsGrantOnce(t *testing.T) {
	h := newProgressHarness(t)
	ctx := context.Background()

	u := h.user(t)
	first := h.emblem(t, "first-run", model.ConditionRunCount, 1)
	h.completedRun(t, u.ID, h.clock.Now(), 5, 300)

	const callers = 16
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		trues   int
		callErr error
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			granted, err := h.emblems.AwardIfEligible(ctx, u.ID, first.ID)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				callErr = err
			}
			if granted {
				trues++
			}
		}()
	}
	wg.Wait()

	require.NoError(t, callErr)
	require.LessOrEqual(t, trues, 1)

	var rows int64
	require.NoError(t, h.db.Model(&model.UserEmblem{}).Where("user_id = ? AND emblem_id = ?", u.ID, first.ID).Count(&rows).Error)
	require.Equal(t, int64(1), rows)
	require.Len(t, h.notifier.ofType(model.EventEmblemGranted), 1)
}

func TestGrantUniqueViolationIsNotAnError(t *testing.T) {
	h := newProgressHarness(t)
	ctx := context.Background()

	u := h.user(t)
	e := h.emblem(t, "first-run", model.ConditionRunCount, 1)

	// 预检查之后另一方抢先写入
	require.NoError(t, repository.New(h.db).CreateUserEmblem(ctx, &model.UserEmblem{UserID: u.ID, EmblemID: e.ID, AcquiredAt: h.clock.Now()}))

	granted, err := h.emblems.grant(ctx, u.ID, e)
	require.NoError(t, err)
	require.False(t, granted)
	require.Empty(t, h.notifier.ofType(model.EventEmblemGranted))
}

func TestAwardIfEligibleNotFound(t *testing.T) {
	h := newProgressHarness(t)
	ctx := context.Background()

	u := h.user(t)
	e := h.emblem(t, "first-run", model.ConditionRunCount, 1)

	_, err := h.emblems.AwardIfEligible(ctx, u.ID, 9999)
	require.ErrorIs(t, err, pkgerrors.EmblemNotFound)
	_, err = h.emblems.AwardIfEligible(ctx, u.ID+100, e.ID)
	require.ErrorIs(t, err, pkgerrors.UserNotFound)
	_, err = h.emblems.AwardIfEligible(ctx, 0, e.ID)
	require.ErrorIs(t, err, pkgerrors.InvalidID)
}

func TestUnknownConditionTypeIsNotEligible(t *testing.T) {
	h := newProgressHarness(t)
	ctx := context.Background()

	u := h.user(t)
	e := h.emblem(t, "mystery", model.ConditionType("ELEVATION"), 0)

	granted, err := h.emblems.AwardIfEligible(ctx, u.ID, e.ID)
	require.NoError(t, err)
	require.False(t, granted)
}

func TestScanAndAwardScopes(t *testing.T) {
	h := newProgressHarness(t)
	ctx := context.Background()

	u := h.user(t)
	five := h.emblem(t, "five-k", model.ConditionDistance, 5)
	h.emblem(t, "marathon", model.ConditionDistance, 42.195)
	firstRun := h.emblem(t, "first-run", model.ConditionRunCount, 1)
	h.completedRun(t, u.ID, h.clock.Now(), 5, 300)

	_, err := ParseScope("nonsense")
	require.ErrorIs(t, err, pkgerrors.InvalidScope)
	_, err = h.emblems.ScanAndAward(ctx, u.ID, "nonsense")
	require.ErrorIs(t, err, pkgerrors.InvalidScope)

	res, err := h.emblems.ScanAndAward(ctx, u.ID, "distance")
	require.NoError(t, err)
	require.Equal(t, 1, res.Count)
	require.Equal(t, []int64{five.ID}, res.GrantedIDs)

	res, err = h.emblems.ScanAndAward(ctx, u.ID, "")
	require.NoError(t, err)
	require.Equal(t, []int64{firstRun.ID}, res.GrantedIDs)

	res, err = h.emblems.ScanAndAward(ctx, u.ID, ScopeAll)
	require.NoError(t, err)
	require.Zero(t, res.Count)
	require.Empty(t, res.GrantedIDs)
}

func TestRegisterConditionPlugsIntoDispatch(t *testing.T) {
	h := newProgressHarness(t)
	ctx := context.Background()

	const custom = model.ConditionType("TEST_CONSTANT")
	RegisterCondition(custom, func(context.Context, *repository.Repository, int64) (float64, error) {
		return 7, nil
	})
	t.Cleanup(func() {
		conditionMu.Lock()
		delete(conditionRegistry, custom)
		conditionMu.Unlock()
	})

	u := h.user(t)
	e := h.emblem(t, "lucky", custom, 7)

	res, err := h.emblems.ScanAndAward(ctx, u.ID, string(custom))
	require.NoError(t, err)
	require.Equal(t, []int64{e.ID}, res.GrantedIDs)
}

func TestEmblemSummary(t *testing.T) {
	h := newProgressHarness(t)
	ctx := context.Background()

	u := h.user(t)
	h.emblem(t, "a", model.ConditionRunCount, 1)
	h.emblem(t, "b", model.ConditionRunCount, 2)
	h.emblem(t, "c", model.ConditionRunCount, 3)
	h.emblem(t, "d", model.ConditionRunCount, 4)
	h.completedRun(t, u.ID, h.clock.Now(), 1, 300)

	_, err := h.emblems.ScanAndAward(ctx, u.ID, ScopeAll)
	require.NoError(t, err)

	summary, err := h.emblems.Summary(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), summary.Owned)
	require.Equal(t, int64(4), summary.Total)
	require.InDelta(t, 0.25, summary.CompletionRate, 1e-9)
}

func TestSweepAllPagesEveryUser(t *testing.T) {
	h := newProgressHarness(t)
	ctx := context.Background()

	h.emblem(t, "first-run", model.ConditionRunCount, 1)
	var runners []*model.User
	for i := 0; i < 5; i++ {
		u := h.user(t)
		runners = append(runners, u)
		if i != 2 {
			h.completedRun(t, u.ID, h.clock.Now(), 3, 320)
		}
	}

	granted, err := h.emblems.SweepAll(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(4), granted)

	// 再扫一遍不会重复发放
	granted, err = h.emblems.SweepAll(ctx)
	require.NoError(t, err)
	require.Zero(t, granted)

	var rows int64
	require.NoError(t, h.db.Model(&model.UserEmblem{}).Where("user_id = ?", runners[2].ID).Count(&rows).Error)
	require.Zero(t, rows)
}

func TestSweepGrantReachesNotifierSetAfterConstruction(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// 与进程启动顺序一致：服务单例先创建，SetNotifier 后注入
	emblems := NewEmblemService(f.db, nil, SweepOptions{PageSize: 2, Concurrency: 1})
	recorder := &recordingNotifier{}
	SetNotifier(recorder)
	t.Cleanup(func() { SetNotifier(nil) })

	tenK := f.emblem(t, "ten-k", model.ConditionDistance, 10)
	u := f.user(t)
	f.completedRun(t, u.ID, time.Now().UTC(), 10, 300)

	granted, err := emblems.SweepAll(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), granted)

	events := recorder.ofType(model.EventEmblemGranted)
	require.Len(t, events, 1)
	require.Equal(t, u.ID, events[0].UserID)
	require.Equal(t, tenK.ID, events[0].EmblemID)
}
