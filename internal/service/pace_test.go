package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"WayToEarth/internal/model"
	pkgerrors "WayToEarth/pkg/errors"
)

func TestCheckPaceRequiresFiveCompletedRuns(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := NewPaceService(f.db, 5)

	u := f.user(t)
	start := time.Date(2026, 4, 1, 6, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		f.completedRun(t, u.ID, start.Add(time.Duration(i)*24*time.Hour), 5, 300)
	}
	// 未完成的跑步不计入
	require.NoError(t, f.db.Create(&model.RunningRecord{UserID: u.ID, SessionID: "live", Status: model.RunningStatusRunning, StartedAt: start.Add(240 * time.Hour)}).Error)

	decision, err := svc.CheckPace(ctx, u.ID, 1, 320)
	require.NoError(t, err)
	require.False(t, decision.IsAvailable)
	require.False(t, decision.ShouldAlert)
	require.Equal(t, 4, decision.CompletedCount)
	require.Equal(t, 5, decision.RequiredCount)

	f.completedRun(t, u.ID, start.Add(5*24*time.Hour), 5, 300)
	decision, err = svc.CheckPace(ctx, u.ID, 1, 320)
	require.NoError(t, err)
	require.True(t, decision.IsAvailable)
	require.Equal(t, 5, decision.CompletedCount)
}

func TestCheckPaceUsesFiveMostRecentAndStrictComparison(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := NewPaceService(f.db, 5)

	u := f.user(t)
	start := time.Date(2026, 4, 1, 6, 0, 0, 0, time.UTC)
	// 最早的一次很慢，不在最近五次之内
	f.completedRun(t, u.ID, start, 5, 600)
	for i, pace := range []float64{290, 300, 310, 320, 330} {
		f.completedRun(t, u.ID, start.Add(time.Duration(i+1)*24*time.Hour), 5, pace)
	}

	decision, err := svc.CheckPace(ctx, u.ID, 3, 310)
	require.NoError(t, err)
	require.True(t, decision.IsAvailable)
	require.InDelta(t, 310.0, decision.ReferencePace, 1e-9)
	require.InDelta(t, 0.0, decision.Diff, 1e-9)
	require.False(t, decision.ShouldAlert, "equal pace never alerts")

	decision, err = svc.CheckPace(ctx, u.ID, 3, 305)
	require.NoError(t, err)
	require.False(t, decision.ShouldAlert)
	require.InDelta(t, -5.0, decision.Diff, 1e-9)

	decision, err = svc.CheckPace(ctx, u.ID, 3, 310.5)
	require.NoError(t, err)
	require.True(t, decision.ShouldAlert)
	require.InDelta(t, 0.5, decision.Diff, 1e-9)
	require.InDelta(t, 3.0, decision.CurrentKm, 1e-9)
}

func TestCheckPaceValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := NewPaceService(f.db, 5)

	_, err := svc.CheckPace(ctx, 0, 1, 300)
	require.ErrorIs(t, err, pkgerrors.InvalidID)
	_, err = svc.CheckPace(ctx, 1, -1, 300)
	require.ErrorIs(t, err, pkgerrors.InvalidDistance)
	_, err = svc.CheckPace(ctx, 1, 1, 0)
	require.ErrorIs(t, err, pkgerrors.InvalidPace)
}
