package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"WayToEarth/internal/model"
	"WayToEarth/internal/testutil"
)

func TestUpdateEnrollmentProgressByVersion(t *testing.T) {
	ctx := context.Background()
	repo := New(testutil.NewDB(t))

	e := &model.Enrollment{UserID: 1, CourseID: 1, Kind: model.EnrollmentKindCourse, Status: model.ProgressStatusActive}
	require.NoError(t, repo.CreateEnrollment(ctx, e))

	ok, err := repo.UpdateEnrollmentProgress(ctx, e.ID, 0, ProgressWrite{AccumulatedKm: 1.5, ProgressPercent: 15})
	require.NoError(t, err)
	require.True(t, ok)

	// 旧版本号写入失败，不覆盖
	ok, err = repo.UpdateEnrollmentProgress(ctx, e.ID, 0, ProgressWrite{AccumulatedKm: 9.0, ProgressPercent: 90})
	require.NoError(t, err)
	require.False(t, ok)

	got, err := repo.GetEnrollment(ctx, e.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), got.Version)
	require.InDelta(t, 1.5, got.AccumulatedKm, 1e-9)
	require.InDelta(t, 15.0, got.ProgressPercent, 1e-9)
	require.Equal(t, model.ProgressStatusActive, got.Status)
	require.Nil(t, got.CompletedAt)

	done := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	ok, err = repo.UpdateEnrollmentProgress(ctx, e.ID, 1, ProgressWrite{
		AccumulatedKm:   10,
		ProgressPercent: 100,
		Status:          model.ProgressStatusCompleted,
		CompletedAt:     &done,
	})
	require.NoError(t, err)
	require.True(t, ok)

	got, err = repo.GetEnrollment(ctx, e.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), got.Version)
	require.Equal(t, model.ProgressStatusCompleted, got.Status)
	require.NotNil(t, got.CompletedAt)
	require.True(t, done.Equal(*got.CompletedAt))

	_, err = repo.UpdateEnrollmentProgress(ctx, e.ID, -1, ProgressWrite{})
	require.Error(t, err)
}

func TestUpdateEnrollmentStatusSetsAndClearsPausedAt(t *testing.T) {
	ctx := context.Background()
	repo := New(testutil.NewDB(t))

	e := &model.Enrollment{UserID: 1, CourseID: 1, Kind: model.EnrollmentKindJourney, Status: model.ProgressStatusActive}
	require.NoError(t, repo.CreateEnrollment(ctx, e))

	pausedAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	ok, err := repo.UpdateEnrollmentStatus(ctx, e.ID, 0, model.ProgressStatusPaused, &pausedAt)
	require.NoError(t, err)
	require.True(t, ok)

	got, err := repo.GetEnrollment(ctx, e.ID)
	require.NoError(t, err)
	require.Equal(t, model.ProgressStatusPaused, got.Status)
	require.NotNil(t, got.PausedAt)

	ok, err = repo.UpdateEnrollmentStatus(ctx, e.ID, 0, model.ProgressStatusActive, nil)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = repo.UpdateEnrollmentStatus(ctx, e.ID, 1, model.ProgressStatusActive, nil)
	require.NoError(t, err)
	require.True(t, ok)

	got, err = repo.GetEnrollment(ctx, e.ID)
	require.NoError(t, err)
	require.Equal(t, model.ProgressStatusActive, got.Status)
	require.Nil(t, got.PausedAt)
	require.Equal(t, int64(2), got.Version)
}

func TestUpdateSegmentProgressByVersion(t *testing.T) {
	ctx := context.Background()
	repo := New(testutil.NewDB(t))

	sp := &model.SegmentProgress{EnrollmentID: 1, SegmentID: 1, Status: model.ProgressStatusActive}
	require.NoError(t, repo.CreateSegmentProgress(ctx, sp))

	ok, err := repo.UpdateSegmentProgress(ctx, sp.ID, 0, ProgressWrite{AccumulatedKm: 2})
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = repo.UpdateSegmentProgress(ctx, sp.ID, 0, ProgressWrite{AccumulatedKm: 5})
	require.NoError(t, err)
	require.False(t, ok)

	got, err := repo.FindSegmentProgress(ctx, 1, 1)
	require.NoError(t, err)
	require.InDelta(t, 2.0, got.AccumulatedKm, 1e-9)
	require.Equal(t, int64(1), got.Version)
}

func TestTransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	repo := New(testutil.NewDB(t))

	boom := errors.New("boom")
	err := repo.Transaction(ctx, func(tx *Repository) error {
		require.NoError(t, tx.CreateEnrollment(ctx, &model.Enrollment{UserID: 3, CourseID: 4, Kind: model.EnrollmentKindCourse}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = repo.FindEnrollment(ctx, 3, 4)
	require.True(t, IsNotFound(err))
}

func TestIsUniqueViolation(t *testing.T) {
	ctx := context.Background()
	repo := New(testutil.NewDB(t))

	require.NoError(t, repo.CreateUserEmblem(ctx, &model.UserEmblem{UserID: 1, EmblemID: 2, AcquiredAt: time.Now()}))
	err := repo.CreateUserEmblem(ctx, &model.UserEmblem{UserID: 1, EmblemID: 2, AcquiredAt: time.Now()})
	require.Error(t, err)
	require.True(t, IsUniqueViolation(err))

	require.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	require.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"})) // 外键
	require.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23502"})) // 非空
	require.False(t, IsUniqueViolation(errors.New("duplicate key value")))
	require.False(t, IsUniqueViolation(nil))
	require.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))
}

func TestFingerprintWindowAndPurge(t *testing.T) {
	ctx := context.Background()
	repo := New(testutil.NewDB(t))
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	for i, at := range []time.Time{base, base.Add(time.Minute), base.Add(2 * time.Hour)} {
		require.NoError(t, repo.CreateFingerprint(ctx, &model.ProgressFingerprint{
			ID:          "s1:42:2.500:" + at.Format("150405") + string(rune('a'+i)),
			SessionID:   "s1",
			SegmentID:   42,
			DistanceKey: "2.500",
			CreatedAt:   at,
		}))
	}

	n, err := repo.CountRecentFingerprints(ctx, "s1", 42, "2.500", base.Add(30*time.Second))
	require.NoError(t, err)
	require.Equal(t, int64(2), n)

	n, err = repo.CountRecentFingerprints(ctx, "s1", 43, "2.500", base)
	require.NoError(t, err)
	require.Zero(t, n)

	deleted, err := repo.DeleteFingerprintsBefore(ctx, base.Add(time.Hour))
	require.NoError(t, err)
	require.Equal(t, int64(2), deleted)

	n, err = repo.CountRecentFingerprints(ctx, "s1", 42, "2.500", base)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
}

func TestRecentCompletedPacesOrdering(t *testing.T) {
	ctx := context.Background()
	repo := New(testutil.NewDB(t))
	base := time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC)

	records := []model.RunningRecord{
		{SessionID: "a", UserID: 7, Status: model.RunningStatusCompleted, StartedAt: base, AveragePaceSec: 300},
		{SessionID: "b", UserID: 7, Status: model.RunningStatusCompleted, StartedAt: base.Add(time.Hour), AveragePaceSec: 310},
		{SessionID: "c", UserID: 7, Status: model.RunningStatusCompleted, StartedAt: base.Add(time.Hour), AveragePaceSec: 320},
		{SessionID: "d", UserID: 7, Status: model.RunningStatusRunning, StartedAt: base.Add(2 * time.Hour)},
		{SessionID: "e", UserID: 8, Status: model.RunningStatusCompleted, StartedAt: base.Add(3 * time.Hour), AveragePaceSec: 999},
	}
	for i := range records {
		require.NoError(t, repo.CreateRunningRecord(ctx, &records[i]))
	}

	paces, err := repo.RecentCompletedPaces(ctx, 7, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{320, 310}, paces)

	count, err := repo.CountCompletedRuns(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, int64(3), count)
}

func TestCompleteRunningRecordOnce(t *testing.T) {
	ctx := context.Background()
	repo := New(testutil.NewDB(t))

	rec := &model.RunningRecord{SessionID: "x", UserID: 1, Status: model.RunningStatusRunning, StartedAt: time.Now()}
	require.NoError(t, repo.CreateRunningRecord(ctx, rec))

	total, err := repo.SumCompletedDistance(ctx, 1)
	require.NoError(t, err)
	require.Zero(t, total)

	ended := time.Now().UTC()
	ok, err := repo.CompleteRunningRecord(ctx, rec.ID, RunSummary{DistanceKm: 5, DurationSec: 1500, AveragePaceSec: 300, EndedAt: ended})
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = repo.CompleteRunningRecord(ctx, rec.ID, RunSummary{DistanceKm: 6, EndedAt: ended})
	require.NoError(t, err)
	require.False(t, ok)

	total, err = repo.SumCompletedDistance(ctx, 1)
	require.NoError(t, err)
	require.InDelta(t, 5.0, total, 1e-9)

	got, err := repo.GetRunningRecordBySession(ctx, "x")
	require.NoError(t, err)
	require.Equal(t, model.RunningStatusCompleted, got.Status)
	require.Equal(t, int64(1500), got.DurationSec)
	require.NotNil(t, got.EndedAt)
}

func TestCountStampsByUser(t *testing.T) {
	ctx := context.Background()
	repo := New(testutil.NewDB(t))

	mine := &model.Enrollment{UserID: 1, CourseID: 1, Kind: model.EnrollmentKindJourney}
	other := &model.Enrollment{UserID: 2, CourseID: 1, Kind: model.EnrollmentKindJourney}
	require.NoError(t, repo.CreateEnrollment(ctx, mine))
	require.NoError(t, repo.CreateEnrollment(ctx, other))

	require.NoError(t, repo.CreateStamp(ctx, &model.Stamp{EnrollmentID: mine.ID, LandmarkID: 1, CollectedAt: time.Now()}))
	require.NoError(t, repo.CreateStamp(ctx, &model.Stamp{EnrollmentID: mine.ID, LandmarkID: 2, CollectedAt: time.Now()}))
	require.NoError(t, repo.CreateStamp(ctx, &model.Stamp{EnrollmentID: other.ID, LandmarkID: 1, CollectedAt: time.Now()}))

	err := repo.CreateStamp(ctx, &model.Stamp{EnrollmentID: mine.ID, LandmarkID: 2, CollectedAt: time.Now()})
	require.True(t, IsUniqueViolation(err))

	n, err := repo.CountStampsByUser(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, int64(2), n)
}
