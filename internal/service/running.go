package service

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"WayToEarth/internal/model"
	"WayToEarth/internal/repository"
	pkgerrors "WayToEarth/pkg/errors"
	"WayToEarth/pkg/logger"
	"WayToEarth/storage/database"
)

type RunningService struct {
	repo    *repository.Repository
	awarder milestoneAwarder
	now     func() time.Time
}

var (
	runningService *RunningService
	runningOnce    sync.Once
)

func Running() *RunningService {
	runningOnce.Do(func() {
		runningService = NewRunningService(database.DB(), Emblem())
	})
	return runningService
}

func NewRunningService(db *gorm.DB, awarder milestoneAwarder) *RunningService {
	return &RunningService{
		repo:    repository.New(db),
		awarder: awarder,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// StartSession 开始一次跑步，返回的 SessionID 也用于进度上报去重
func (s *RunningService) StartSession(ctx context.Context, userID int64) (*model.RunningRecord, error) {
	if userID <= 0 {
		return nil, pkgerrors.InvalidID
	}
	exists, err := s.repo.UserExists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	if !exists {
		return nil, pkgerrors.UserNotFound
	}

	record := &model.RunningRecord{
		UserID:    userID,
		SessionID: uuid.NewString(),
		Status:    model.RunningStatusRunning,
		StartedAt: s.now(),
	}
	if err := s.repo.CreateRunningRecord(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create running record: %w", err)
	}
	return record, nil
}

// CompleteSession 结束跑步并计算平均配速，随后检查距离和次数类徽章
func (s *RunningService) CompleteSession(ctx context.Context, userID int64, sessionID string, distanceKm float64, durationSec int64) (*model.RunningRecord, []int64, error) {
	if userID <= 0 || sessionID == "" {
		return nil, nil, pkgerrors.InvalidID
	}
	if math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) || distanceKm < 0 {
		return nil, nil, pkgerrors.InvalidDistance
	}
	if durationSec <= 0 {
		return nil, nil, pkgerrors.InvalidDuration
	}

	record, err := s.repo.GetRunningRecordBySession(ctx, sessionID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, nil, pkgerrors.SessionNotFound
		}
		return nil, nil, fmt.Errorf("failed to query running record: %w", err)
	}
	if record.UserID != userID {
		return nil, nil, pkgerrors.SessionNotFound
	}
	if record.Status == model.RunningStatusCompleted {
		return nil, nil, pkgerrors.SessionAlreadyCompleted
	}

	var pace float64
	if distanceKm > 0 {
		pace = float64(durationSec) / distanceKm
	}
	endedAt := s.now()

	ok, err := s.repo.CompleteRunningRecord(ctx, record.ID, repository.RunSummary{
		DistanceKm:     distanceKm,
		DurationSec:    durationSec,
		AveragePaceSec: pace,
		EndedAt:        endedAt,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to complete running record: %w", err)
	}
	if !ok {
		return nil, nil, pkgerrors.SessionAlreadyCompleted
	}

	record.Status = model.RunningStatusCompleted
	record.DistanceKm = distanceKm
	record.DurationSec = durationSec
	record.AveragePaceSec = pace
	record.EndedAt = &endedAt

	var granted []int64
	if s.awarder != nil {
		for _, scope := range []model.ConditionType{model.ConditionDistance, model.ConditionRunCount} {
			result, err := s.awarder.ScanAndAward(ctx, userID, string(scope))
			if err != nil {
				logger.Logger.Warn("Emblem scan after run failed",
					zap.Int64("user_id", userID),
					zap.String("scope", string(scope)),
					zap.Error(err),
				)
				continue
			}
			granted = append(granted, result.GrantedIDs...)
		}
	}

	return record, granted, nil
}
