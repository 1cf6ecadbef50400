package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"WayToEarth/internal/model"
	pkgerrors "WayToEarth/pkg/errors"
)

func TestRunningSessionLifecycle(t *testing.T) {
	h := newProgressHarness(t)
	ctx := context.Background()
	svc := NewRunningService(h.db, h.emblems)
	svc.now = h.clock.Now

	u := h.user(t)
	firstRun := h.emblem(t, "first-run", model.ConditionRunCount, 1)
	fiveK := h.emblem(t, "five-k", model.ConditionDistance, 5)
	h.emblem(t, "ten-k", model.ConditionDistance, 10)

	rec, err := svc.StartSession(ctx, u.ID)
	require.NoError(t, err)
	require.NotEmpty(t, rec.SessionID)
	require.Equal(t, model.RunningStatusRunning, rec.Status)

	h.clock.Advance(30 * time.Minute)
	done, granted, err := svc.CompleteSession(ctx, u.ID, rec.SessionID, 5, 1500)
	require.NoError(t, err)
	require.Equal(t, model.RunningStatusCompleted, done.Status)
	require.InDelta(t, 300.0, done.AveragePaceSec, 1e-9)
	require.NotNil(t, done.EndedAt)
	require.ElementsMatch(t, []int64{firstRun.ID, fiveK.ID}, granted)

	_, _, err = svc.CompleteSession(ctx, u.ID, rec.SessionID, 5, 1500)
	require.ErrorIs(t, err, pkgerrors.SessionAlreadyCompleted)
}

func TestCompleteSessionValidation(t *testing.T) {
	h := newProgressHarness(t)
	ctx := context.Background()
	svc := NewRunningService(h.db, nil)

	u := h.user(t)
	rec, err := svc.StartSession(ctx, u.ID)
	require.NoError(t, err)

	_, _, err = svc.CompleteSession(ctx, u.ID+1, rec.SessionID, 5, 1500)
	require.ErrorIs(t, err, pkgerrors.SessionNotFound)
	_, _, err = svc.CompleteSession(ctx, u.ID, "missing", 5, 1500)
	require.ErrorIs(t, err, pkgerrors.SessionNotFound)
	_, _, err = svc.CompleteSession(ctx, u.ID, rec.SessionID, -1, 1500)
	require.ErrorIs(t, err, pkgerrors.InvalidDistance)
	_, _, err = svc.CompleteSession(ctx, u.ID, rec.SessionID, 5, 0)
	require.ErrorIs(t, err, pkgerrors.InvalidDuration)

	_, err = svc.StartSession(ctx, u.ID+100)
	require.ErrorIs(t, err, pkgerrors.UserNotFound)
}
