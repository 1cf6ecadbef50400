package service

import (
	"context"
	"fmt"
	"math"
	"sync"

	"gorm.io/gorm"

	"WayToEarth/config"
	"WayToEarth/internal/model/dto"
	"WayToEarth/internal/repository"
	pkgerrors "WayToEarth/pkg/errors"
	"WayToEarth/storage/database"
)

// PaceService 配速教练，只读，每公里调用一次
type PaceService struct {
	repo     *repository.Repository
	required int
}

var (
	paceService *PaceService
	paceOnce    sync.Once
)

func Pace() *PaceService {
	paceOnce.Do(func() {
		paceService = NewPaceService(database.DB(), config.Cfg.PaceRequiredSessions)
	})
	return paceService
}

func NewPaceService(db *gorm.DB, required int) *PaceService {
	if required < 1 {
		required = 1
	}
	return &PaceService{
		repo:     repository.New(db).ReadReplica(),
		required: required,
	}
}

// CheckPace 参考配速取最近开始的 required 次已完成跑步的平均配速（秒/公里），
// 当前配速严格慢于参考配速才提醒
func (s *PaceService) CheckPace(ctx context.Context, userID int64, currentKm, currentPaceSec float64) (*dto.PaceDecision, error) {
	if userID <= 0 {
		return nil, pkgerrors.InvalidID
	}
	if math.IsNaN(currentKm) || math.IsInf(currentKm, 0) || currentKm < 0 {
		return nil, pkgerrors.InvalidDistance
	}
	if math.IsNaN(currentPaceSec) || math.IsInf(currentPaceSec, 0) || currentPaceSec <= 0 {
		return nil, pkgerrors.InvalidPace
	}

	decision := &dto.PaceDecision{
		CurrentKm:     currentKm,
		CurrentPace:   currentPaceSec,
		RequiredCount: s.required,
	}

	completed, err := s.repo.CountCompletedRuns(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count completed runs: %w", err)
	}
	decision.CompletedCount = int(completed)
	if decision.CompletedCount < s.required {
		decision.Message = fmt.Sprintf("need %d completed runs, have %d", s.required, decision.CompletedCount)
		return decision, nil
	}

	paces, err := s.repo.RecentCompletedPaces(ctx, userID, s.required)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent paces: %w", err)
	}
	if len(paces) < s.required {
		// 计数与明细读之间有新记录被删或副本延迟
		decision.CompletedCount = len(paces)
		decision.Message = fmt.Sprintf("need %d completed runs, have %d", s.required, len(paces))
		return decision, nil
	}

	var sum float64
	for _, p := range paces {
		sum += p
	}
	reference := sum / float64(len(paces))

	decision.IsAvailable = true
	decision.ReferencePace = reference
	decision.Diff = currentPaceSec - reference
	decision.ShouldAlert = currentPaceSec > reference
	return decision, nil
}
