package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"WayToEarth/internal/model"
	pkgerrors "WayToEarth/pkg/errors"
)

func TestApplyProgressCompletesCourseOnce(t *testing.T) {
	h := newProgressHarness(t)
	ctx := context.Background()

	u := h.user(t)
	c, segs := h.course(t, model.CourseKindTheme, 10.0, 10.0)
	e, err := h.progress.Enroll(ctx, u.ID, c.ID)
	require.NoError(t, err)

	snap, err := h.progress.ApplyProgress(ctx, ApplyProgressInput{EnrollmentID: e.ID, SegmentID: segs[0].ID, DistanceKm: 6.0})
	require.NoError(t, err)
	require.InDelta(t, 60.0, snap.ProgressPercent, 1e-9)
	require.Equal(t, string(model.ProgressStatusActive), snap.Status)
	require.Nil(t, snap.CompletedAt)

	h.clock.Advance(time.Minute)
	snap, err = h.progress.ApplyProgress(ctx, ApplyProgressInput{EnrollmentID: e.ID, SegmentID: segs[0].ID, DistanceKm: 4.0})
	require.NoError(t, err)
	require.InDelta(t, 100.0, snap.ProgressPercent, 1e-9)
	require.Equal(t, string(model.ProgressStatusCompleted), snap.Status)
	require.NotNil(t, snap.CompletedAt)
	completedAt := *snap.CompletedAt

	h.clock.Advance(time.Minute)
	snap, err = h.progress.ApplyProgress(ctx, ApplyProgressInput{EnrollmentID: e.ID, SegmentID: segs[0].ID, DistanceKm: 1.0})
	require.NoError(t, err)
	require.InDelta(t, 100.0, snap.ProgressPercent, 1e-9)
	require.Equal(t, string(model.ProgressStatusCompleted), snap.Status)
	require.InDelta(t, 11.0, snap.AccumulatedKm, 1e-9)

	stored, err := h.progress.GetSnapshot(ctx, u.ID, e.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.CompletedAt)
	require.True(t, completedAt.Equal(*stored.CompletedAt))
	require.Equal(t, string(model.ProgressStatusCompleted), stored.Status)

	require.Len(t, h.notifier.ofType(model.EventCourseCompleted), 1)
}

func TestApplyProgressReplayWithinWindowAppliedOnce(t *testing.T) {
	h := newProgressHarness(t)
	ctx := context.Background()

	u := h.user(t)
	c := &model.Course{Title: "river", Kind: model.CourseKindTheme, TotalDistanceKm: 20}
	require.NoError(t, h.db.Create(c).Error)
	seg := &model.CourseSegment{BaseModel: model.BaseModel{ID: 42}, CourseID: c.ID, Sequence: 1, DistanceKm: 20}
	require.NoError(t, h.db.Create(seg).Error)
	e, err := h.progress.Enroll(ctx, u.ID, c.ID)
	require.NoError(t, err)

	in := ApplyProgressInput{SessionID: "s1", EnrollmentID: e.ID, SegmentID: 42, DistanceKm: 2.5}
	first, err := h.progress.ApplyProgress(ctx, in)
	require.NoError(t, err)
	require.False(t, first.Duplicate)

	h.clock.Advance(5 * time.Second)
	replay, err := h.progress.ApplyProgress(ctx, in)
	require.NoError(t, err)
	require.True(t, replay.Duplicate)
	require.InDelta(t, 2.5, replay.AccumulatedKm, 1e-9)

	snap, err := h.progress.GetSnapshot(ctx, u.ID, e.ID)
	require.NoError(t, err)
	require.InDelta(t, 2.5, snap.AccumulatedKm, 1e-9)
}

func TestApplyProgressReplayAfterWindowApplied(t *testing.T) {
	h := newProgressHarness(t)
	ctx := context.Background()

	u := h.user(t)
	c, segs := h.course(t, model.CourseKindTheme, 20, 20)
	e, err := h.progress.Enroll(ctx, u.ID, c.ID)
	require.NoError(t, err)

	in := ApplyProgressInput{SessionID: "s1", EnrollmentID: e.ID, SegmentID: segs[0].ID, DistanceKm: 2.5}
	_, err = h.progress.ApplyProgress(ctx, in)
	require.NoError(t, err)

	// 窗口外的相同距离是新的上报
	h.clock.Advance(31 * time.Second)
	snap, err := h.progress.ApplyProgress(ctx, in)
	require.NoError(t, err)
	require.False(t, snap.Duplicate)
	require.InDelta(t, 5.0, snap.AccumulatedKm, 1e-9)

	// 不同会话互不影响
	other := in
	other.SessionID = "s2"
	snap, err = h.progress.ApplyProgress(ctx, other)
	require.NoError(t, err)
	require.InDelta(t, 7.5, snap.AccumulatedKm, 1e-9)
}

func TestApplyProgressSameMillisecondReplayRejectedByFingerprintKey(t *testing.T) {
	h := newProgressHarness(t)
	ctx := context.Background()

	u := h.user(t)
	c, segs := h.course(t, model.CourseKindTheme, 20, 20)
	e, err := h.progress.Enroll(ctx, u.ID, c.ID)
	require.NoError(t, err)

	// 模拟两个请求都通过了 IsDuplicate 预检：直接走单次写入路径
	in := ApplyProgressInput{SessionID: "s1", EnrollmentID: e.ID, SegmentID: segs[0].ID, DistanceKm: 1.0}
	_, err = h.progress.applyOnce(ctx, in, true)
	require.NoError(t, err)
	_, err = h.progress.applyOnce(ctx, in, true)
	require.ErrorIs(t, err, errDuplicateDelta)

	snap, err := h.progress.GetSnapshot(ctx, u.ID, e.ID)
	require.NoError(t, err)
	require.InDelta(t, 1.0, snap.AccumulatedKm, 1e-9)
}

func TestApplyProgressHeartbeatIsNoop(t *testing.T) {
	h := newProgressHarness(t)
	ctx := context.Background()

	u := h.user(t)
	c, segs := h.course(t, model.CourseKindTheme, 10, 10)
	e, err := h.progress.Enroll(ctx, u.ID, c.ID)
	require.NoError(t, err)

	snap, err := h.progress.ApplyProgress(ctx, ApplyProgressInput{SessionID: "s1", EnrollmentID: e.ID, SegmentID: segs[0].ID})
	require.NoError(t, err)
	require.Zero(t, snap.AccumulatedKm)
	require.Equal(t, string(model.ProgressStatusActive), snap.Status)

	var segRows, fpRows int64
	require.NoError(t, h.db.Model(&model.SegmentProgress{}).Count(&segRows).Error)
	require.NoError(t, h.db.Model(&model.ProgressFingerprint{}).Count(&fpRows).Error)
	require.Zero(t, segRows)
	require.Zero(t, fpRows)

	var stored model.Enrollment
	require.NoError(t, h.db.First(&stored, e.ID).Error)
	require.Zero(t, stored.Version)
}

func TestApplyProgressValidationAndNotFound(t *testing.T) {
	h := newProgressHarness(t)
	ctx := context.Background()

	u := h.user(t)
	c, segs := h.course(t, model.CourseKindTheme, 10, 10)
	_, otherSegs := h.course(t, model.CourseKindTheme, 10, 10)
	e, err := h.progress.Enroll(ctx, u.ID, c.ID)
	require.NoError(t, err)

	cases := []struct {
		name string
		in   ApplyProgressInput
		want error
	}{
		{"negative delta", ApplyProgressInput{EnrollmentID: e.ID, SegmentID: segs[0].ID, DistanceKm: -1}, pkgerrors.InvalidDistance},
		{"nan delta", ApplyProgressInput{EnrollmentID: e.ID, SegmentID: segs[0].ID, DistanceKm: math.NaN()}, pkgerrors.InvalidDistance},
		{"inf delta", ApplyProgressInput{EnrollmentID: e.ID, SegmentID: segs[0].ID, DistanceKm: math.Inf(1)}, pkgerrors.InvalidDistance},
		{"zero enrollment", ApplyProgressInput{SegmentID: segs[0].ID, DistanceKm: 1}, pkgerrors.InvalidID},
		{"zero segment", ApplyProgressInput{EnrollmentID: e.ID, DistanceKm: 1}, pkgerrors.InvalidID},
		{"unknown enrollment", ApplyProgressInput{EnrollmentID: 9999, SegmentID: segs[0].ID, DistanceKm: 1}, pkgerrors.EnrollmentNotFound},
		{"unknown segment", ApplyProgressInput{EnrollmentID: e.ID, SegmentID: 9999, DistanceKm: 1}, pkgerrors.SegmentNotFound},
		{"segment of another course", ApplyProgressInput{EnrollmentID: e.ID, SegmentID: otherSegs[0].ID, DistanceKm: 1}, pkgerrors.SegmentNotFound},
		{"enrollment of another user", ApplyProgressInput{UserID: u.ID + 100, EnrollmentID: e.ID, SegmentID: segs[0].ID, DistanceKm: 1}, pkgerrors.EnrollmentNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := h.progress.ApplyProgress(ctx, tc.in)
			require.ErrorIs(t, err, tc.want)
		})
	}

	snap, err := h.progress.GetSnapshot(ctx, u.ID, e.ID)
	require.NoError(t, err)
	require.Zero(t, snap.AccumulatedKm)
}

func TestApplyProgressPercentMonotonicAndClamped(t *testing.T) {
	h := newProgressHarness(t)
	ctx := context.Background()

	u := h.user(t)
	c, segs := h.course(t, model.CourseKindTheme, 7.5, 7.5)
	e, err := h.progress.Enroll(ctx, u.ID, c.ID)
	require.NoError(t, err)

	last := 0.0
	for i, delta := range []float64{0.3, 0, 1.7, 2.2, 0.01, 3.9, 0, 5.0, 0.4} {
		h.clock.Advance(time.Second)
		snap, err := h.progress.ApplyProgress(ctx, ApplyProgressInput{
			SessionID:    fmt.Sprintf("s-%d", i),
			EnrollmentID: e.ID,
			SegmentID:    segs[0].ID,
			DistanceKm:   delta,
		})
		require.NoError(t, err)
		require.GreaterOrEqual(t, snap.ProgressPercent, last)
		require.LessOrEqual(t, snap.ProgressPercent, 100.0)
		last = snap.ProgressPercent
	}
	require.InDelta(t, 100.0, last, 1e-9)
}

func TestApplyProgressSegmentSumMatchesCourseTotal(t *testing.T) {
	h := newProgressHarness(t)
	ctx := context.Background()

	u := h.user(t)
	c, segs := h.course(t, model.CourseKindTheme, 9, 3, 6)
	e, err := h.progress.Enroll(ctx, u.ID, c.ID)
	require.NoError(t, err)

	snap, err := h.progress.ApplyProgress(ctx, ApplyProgressInput{EnrollmentID: e.ID, SegmentID: segs[0].ID, DistanceKm: 3.2})
	require.NoError(t, err)
	require.Equal(t, string(model.ProgressStatusCompleted), snap.SegmentStatus)
	require.Equal(t, string(model.ProgressStatusActive), snap.Status)
	require.Len(t, h.notifier.ofType(model.EventSegmentCompleted), 1)

	_, err = h.progress.ApplyProgress(ctx, ApplyProgressInput{EnrollmentID: e.ID, SegmentID: segs[1].ID, DistanceKm: 2.5})
	require.NoError(t, err)

	var rows []model.SegmentProgress
	require.NoError(t, h.db.Where("enrollment_id = ?", e.ID).Find(&rows).Error)
	require.Len(t, rows, 2)
	sum := 0.0
	for _, r := range rows {
		sum += r.AccumulatedKm
	}

	got, err := h.progress.GetSnapshot(ctx, u.ID, e.ID)
	require.NoError(t, err)
	require.InDelta(t, got.AccumulatedKm, sum, 1e-9)
	require.InDelta(t, 5.7, got.AccumulatedKm, 1e-9)
}

func TestApplyProgressConcurrentDistinctDeltas(t *testing.T) {
	h := newProgressHarness(t)
	ctx := context.Background()

	u := h.user(t)
	c, segs := h.course(t, model.CourseKindTheme, 100, 100)
	e, err := h.progress.Enroll(ctx, u.ID, c.ID)
	require.NoError(t, err)

	const writers = 8
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := h.progress.ApplyProgress(ctx, ApplyProgressInput{
				SessionID:    fmt.Sprintf("session-%d", i),
				EnrollmentID: e.ID,
				SegmentID:    segs[0].ID,
				DistanceKm:   1.0,
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	snap, err := h.progress.GetSnapshot(ctx, u.ID, e.ID)
	require.NoError(t, err)
	require.InDelta(t, float64(writers), snap.AccumulatedKm, 1e-9)

	var stored model.Enrollment
	require.NoError(t, h.db.First(&stored, e.ID).Error)
	require.Equal(t, int64(writers), stored.Version)
}

func TestWithRetry(t *testing.T) {
	h := newProgressHarness(t)
	ctx := context.Background()

	calls := 0
	attempts, err := h.progress.withRetry(ctx, func() error {
		calls++
		if calls < 3 {
			return errStaleVersion
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 3, attempts)

	calls = 0
	attempts, err = h.progress.withRetry(ctx, func() error {
		calls++
		return errStaleVersion
	})
	require.ErrorIs(t, err, pkgerrors.ProgressConflict)
	require.Equal(t, 3, attempts)
	require.Equal(t, 3, calls)

	// 其他错误不重试
	boom := errors.New("boom")
	calls = 0
	_, err = h.progress.withRetry(ctx, func() error {
		calls++
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, 1, calls)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = h.progress.withRetry(cancelled, func() error { return errStaleVersion })
	require.ErrorIs(t, err, context.Canceled)
}

func TestPauseResumeJourney(t *testing.T) {
	h := newProgressHarness(t)
	ctx := context.Background()

	u := h.user(t)
	c, segs := h.course(t, model.CourseKindJourney, 5, 5)
	e, err := h.progress.Enroll(ctx, u.ID, c.ID)
	require.NoError(t, err)
	require.Equal(t, model.EnrollmentKindJourney, e.Kind)

	snap, err := h.progress.Pause(ctx, u.ID, e.ID)
	require.NoError(t, err)
	require.Equal(t, string(model.ProgressStatusPaused), snap.Status)

	// 重复暂停幂等
	snap, err = h.progress.Pause(ctx, u.ID, e.ID)
	require.NoError(t, err)
	require.Equal(t, string(model.ProgressStatusPaused), snap.Status)

	// 暂停期间的增量照常累计，状态不变
	snap, err = h.progress.ApplyProgress(ctx, ApplyProgressInput{EnrollmentID: e.ID, SegmentID: segs[0].ID, DistanceKm: 2})
	require.NoError(t, err)
	require.Equal(t, string(model.ProgressStatusPaused), snap.Status)
	require.InDelta(t, 2.0, snap.AccumulatedKm, 1e-9)

	snap, err = h.progress.Resume(ctx, u.ID, e.ID)
	require.NoError(t, err)
	require.Equal(t, string(model.ProgressStatusActive), snap.Status)

	_, err = h.progress.Pause(ctx, u.ID, e.ID)
	require.NoError(t, err)

	// 暂停状态下越过阈值直接完成
	snap, err = h.progress.ApplyProgress(ctx, ApplyProgressInput{EnrollmentID: e.ID, SegmentID: segs[0].ID, DistanceKm: 3})
	require.NoError(t, err)
	require.Equal(t, string(model.ProgressStatusCompleted), snap.Status)

	_, err = h.progress.Resume(ctx, u.ID, e.ID)
	require.ErrorIs(t, err, pkgerrors.StatusTransitionInvalid)
	_, err = h.progress.Pause(ctx, u.ID, e.ID)
	require.ErrorIs(t, err, pkgerrors.StatusTransitionInvalid)
}

func TestPauseRejectedForCourseEnrollment(t *testing.T) {
	h := newProgressHarness(t)
	ctx := context.Background()

	u := h.user(t)
	c, _ := h.course(t, model.CourseKindTheme, 5, 5)
	e, err := h.progress.Enroll(ctx, u.ID, c.ID)
	require.NoError(t, err)

	_, err = h.progress.Pause(ctx, u.ID, e.ID)
	require.ErrorIs(t, err, pkgerrors.StatusTransitionInvalid)
	_, err = h.progress.Pause(ctx, u.ID, 9999)
	require.ErrorIs(t, err, pkgerrors.EnrollmentNotFound)
}

func TestEnrollIsIdempotent(t *testing.T) {
	h := newProgressHarness(t)
	ctx := context.Background()

	u := h.user(t)
	c, _ := h.course(t, model.CourseKindCustom, 5, 5)

	first, err := h.progress.Enroll(ctx, u.ID, c.ID)
	require.NoError(t, err)
	second, err := h.progress.Enroll(ctx, u.ID, c.ID)
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, model.EnrollmentKindCourse, first.Kind)

	_, err = h.progress.Enroll(ctx, u.ID+100, c.ID)
	require.ErrorIs(t, err, pkgerrors.UserNotFound)
	_, err = h.progress.Enroll(ctx, u.ID, 9999)
	require.ErrorIs(t, err, pkgerrors.CourseNotFound)
	_, err = h.progress.Enroll(ctx, 0, c.ID)
	require.ErrorIs(t, err, pkgerrors.InvalidID)
}

func TestCollectStamp(t *testing.T) {
	h := newProgressHarness(t)
	ctx := context.Background()

	u := h.user(t)
	c, segs := h.course(t, model.CourseKindJourney, 10, 10)
	near := &model.Landmark{CourseID: c.ID, Name: "bridge", DistanceFromStartKm: 2}
	far := &model.Landmark{CourseID: c.ID, Name: "tower", DistanceFromStartKm: 8}
	require.NoError(t, h.db.Create(near).Error)
	require.NoError(t, h.db.Create(far).Error)
	stampEmblem := h.emblem(t, "first-stamp", model.ConditionStampCount, 1)

	e, err := h.progress.Enroll(ctx, u.ID, c.ID)
	require.NoError(t, err)
	_, err = h.progress.ApplyProgress(ctx, ApplyProgressInput{EnrollmentID: e.ID, SegmentID: segs[0].ID, DistanceKm: 3})
	require.NoError(t, err)

	res, err := h.progress.CollectStamp(ctx, u.ID, e.ID, near.ID)
	require.NoError(t, err)
	require.True(t, res.NewlyCollected)

	res, err = h.progress.CollectStamp(ctx, u.ID, e.ID, near.ID)
	require.NoError(t, err)
	require.False(t, res.NewlyCollected)

	_, err = h.progress.CollectStamp(ctx, u.ID, e.ID, far.ID)
	require.ErrorIs(t, err, pkgerrors.LandmarkNotReached)
	_, err = h.progress.CollectStamp(ctx, u.ID, e.ID, 9999)
	require.ErrorIs(t, err, pkgerrors.LandmarkNotFound)

	granted := h.notifier.ofType(model.EventEmblemGranted)
	require.Len(t, granted, 1)
	require.Equal(t, stampEmblem.ID, granted[0].EmblemID)
}

func TestCourseCompletionTriggersEmblemScan(t *testing.T) {
	h := newProgressHarness(t)
	ctx := context.Background()

	u := h.user(t)
	finisher := h.emblem(t, "first-finish", model.ConditionCourseCompleted, 1)
	h.emblem(t, "two-finishes", model.ConditionCourseCompleted, 2)
	c, segs := h.course(t, model.CourseKindTheme, 3, 3)
	e, err := h.progress.Enroll(ctx, u.ID, c.ID)
	require.NoError(t, err)

	_, err = h.progress.ApplyProgress(ctx, ApplyProgressInput{EnrollmentID: e.ID, SegmentID: segs[0].ID, DistanceKm: 3})
	require.NoError(t, err)

	var grants []model.UserEmblem
	require.NoError(t, h.db.Where("user_id = ?", u.ID).Find(&grants).Error)
	require.Len(t, grants, 1)
	require.Equal(t, finisher.ID, grants[0].EmblemID)
}

// bumpVersionOnUpdate 模拟并发写入者：table 上每次 UPDATE 执行前先把该表的 version 推进一格，
// 让这次 CAS 落空；推进 budget 次后不再干扰。返回实际推进次数
func bumpVersionOnUpdate(t *testing.T, db *gorm.DB, table string, budget int32) *atomic.Int32 {
	t.Helper()
	var remaining, bumped atomic.Int32
	remaining.Store(budget)

	err := db.Callback().Update().Before("gorm:update").Register("test:bump_version:"+table, func(tx *gorm.DB) {
		if tx.Statement.Table != table || remaining.Load() <= 0 {
			return
		}
		remaining.Add(-1)
		bumped.Add(1)
		// 复用当前语句的连接，事务内的写入才能看到
		tx.AddError(tx.Session(&gorm.Session{NewDB: true}).
			Exec("UPDATE " + table + " SET version = version + 1").Error)
	})
	require.NoError(t, err)
	return &bumped
}

func TestApplyProgressRetriesAfterConcurrentWrite(t *testing.T) {
	h := newProgressHarness(t)
	ctx := context.Background()

	u := h.user(t)
	c, segs := h.course(t, model.CourseKindTheme, 10, 10)
	e, err := h.progress.Enroll(ctx, u.ID, c.ID)
	require.NoError(t, err)

	bumped := bumpVersionOnUpdate(t, h.db, "enrollments", 1)

	snap, err := h.progress.ApplyProgress(ctx, ApplyProgressInput{SessionID: "s1", EnrollmentID: e.ID, SegmentID: segs[0].ID, DistanceKm: 2})
	require.NoError(t, err)
	require.False(t, snap.Duplicate)
	require.Equal(t, int32(1), bumped.Load())

	// 第一次尝试整体回滚，重试只落一次增量
	require.InDelta(t, 2.0, snap.AccumulatedKm, 1e-9)
	require.InDelta(t, 2.0, snap.SegmentAccumulatedKm, 1e-9)

	var stored model.Enrollment
	require.NoError(t, h.db.First(&stored, e.ID).Error)
	require.InDelta(t, 2.0, stored.AccumulatedKm, 1e-9)
	require.Equal(t, int64(1), stored.Version)

	var sp model.SegmentProgress
	require.NoError(t, h.db.Where("enrollment_id = ?", e.ID).First(&sp).Error)
	require.InDelta(t, 2.0, sp.AccumulatedKm, 1e-9)

	var fpRows int64
	require.NoError(t, h.db.Model(&model.ProgressFingerprint{}).Count(&fpRows).Error)
	require.Equal(t, int64(1), fpRows)
}

func TestApplyProgressConflictAfterRetriesLeavesNoTrace(t *testing.T) {
	h := newProgressHarness(t)
	ctx := context.Background()

	u := h.user(t)
	c, segs := h.course(t, model.CourseKindTheme, 10, 10)
	e, err := h.progress.Enroll(ctx, u.ID, c.ID)
	require.NoError(t, err)

	// 每次尝试都被抢先，恰好耗尽重试次数
	bumped := bumpVersionOnUpdate(t, h.db, "enrollments", 3)

	in := ApplyProgressInput{SessionID: "s1", EnrollmentID: e.ID, SegmentID: segs[0].ID, DistanceKm: 2}
	_, err = h.progress.ApplyProgress(ctx, in)
	require.ErrorIs(t, err, pkgerrors.ProgressConflict)
	require.Equal(t, int32(3), bumped.Load())

	var stored model.Enrollment
	require.NoError(t, h.db.First(&stored, e.ID).Error)
	require.Zero(t, stored.AccumulatedKm)
	require.Zero(t, stored.Version)

	var segRows, fpRows int64
	require.NoError(t, h.db.Model(&model.SegmentProgress{}).Count(&segRows).Error)
	require.NoError(t, h.db.Model(&model.ProgressFingerprint{}).Count(&fpRows).Error)
	require.Zero(t, segRows)
	require.Zero(t, fpRows)

	// 没有留下指纹，客户端重发同一增量会被正常记账
	snap, err := h.progress.ApplyProgress(ctx, in)
	require.NoError(t, err)
	require.False(t, snap.Duplicate)
	require.InDelta(t, 2.0, snap.AccumulatedKm, 1e-9)
}

func TestPauseRetriesAfterConcurrentWrite(t *testing.T) {
	h := newProgressHarness(t)
	ctx := context.Background()

	u := h.user(t)
	c, _ := h.course(t, model.CourseKindJourney, 5, 5)
	e, err := h.progress.Enroll(ctx, u.ID, c.ID)
	require.NoError(t, err)

	bumped := bumpVersionOnUpdate(t, h.db, "enrollments", 1)

	snap, err := h.progress.Pause(ctx, u.ID, e.ID)
	require.NoError(t, err)
	require.Equal(t, string(model.ProgressStatusPaused), snap.Status)
	require.Equal(t, int32(1), bumped.Load())

	// 被抢先的那次推进了一格，重试成功再推进一格
	var stored model.Enrollment
	require.NoError(t, h.db.First(&stored, e.ID).Error)
	require.Equal(t, model.ProgressStatusPaused, stored.Status)
	require.NotNil(t, stored.PausedAt)
	require.Equal(t, int64(2), stored.Version)
}

func TestPauseConflictAfterRetriesKeepsStatus(t *testing.T) {
	h := newProgressHarness(t)
	ctx := context.Background()

	u := h.user(t)
	c, _ := h.course(t, model.CourseKindJourney, 5, 5)
	e, err := h.progress.Enroll(ctx, u.ID, c.ID)
	require.NoError(t, err)

	bumped := bumpVersionOnUpdate(t, h.db, "enrollments", 100)

	_, err = h.progress.Pause(ctx, u.ID, e.ID)
	require.ErrorIs(t, err, pkgerrors.ProgressConflict)
	require.Equal(t, int32(3), bumped.Load())

	var stored model.Enrollment
	require.NoError(t, h.db.First(&stored, e.ID).Error)
	require.Equal(t, model.ProgressStatusActive, stored.Status)
	require.Nil(t, stored.PausedAt)
}

func TestApplyProgressSubMetreDeltasAreNotMerged(t *testing.T) {
	h := newProgressHarness(t)
	ctx := context.Background()

	u := h.user(t)
	c, segs := h.course(t, model.CourseKindTheme, 10, 10)
	e, err := h.progress.Enroll(ctx, u.ID, c.ID)
	require.NoError(t, err)

	// 两次增量按米取整都是 0.000，不能当作同一次上报
	first, err := h.progress.ApplyProgress(ctx, ApplyProgressInput{SessionID: "s1", EnrollmentID: e.ID, SegmentID: segs[0].ID, DistanceKm: 0.0004})
	require.NoError(t, err)
	require.False(t, first.Duplicate)

	h.clock.Advance(time.Second)
	second, err := h.progress.ApplyProgress(ctx, ApplyProgressInput{SessionID: "s1", EnrollmentID: e.ID, SegmentID: segs[0].ID, DistanceKm: 0.0001})
	require.NoError(t, err)
	require.False(t, second.Duplicate)
	require.InDelta(t, 0.0005, second.AccumulatedKm, 1e-12)

	var fpRows int64
	require.NoError(t, h.db.Model(&model.ProgressFingerprint{}).Count(&fpRows).Error)
	require.Zero(t, fpRows)
}
