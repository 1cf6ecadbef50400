package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"WayToEarth/config"
	"WayToEarth/internal/model"
	"WayToEarth/internal/model/dto"
	"WayToEarth/internal/repository"
	pkgerrors "WayToEarth/pkg/errors"
	"WayToEarth/pkg/logger"
	"WayToEarth/pkg/metrics"
	"WayToEarth/storage/database"
)

// ScopeAll 扫描全部条件类型
const ScopeAll = "ALL"

// SweepOptions 全量扫描参数
type SweepOptions struct {
	PageSize    int
	Concurrency int
}

// EmblemService 徽章条件评估与发放
// 发放前的存在性检查只是优化，(user, emblem) 唯一约束才是防重的依据
type EmblemService struct {
	repo     *repository.Repository
	notifier Notifier
	sweep    SweepOptions
	now      func() time.Time
}

var (
	emblemService *EmblemService
	emblemOnce    sync.Once
)

func Emblem() *EmblemService {
	emblemOnce.Do(func() {
		// notifier 传 nil，发送时取 SetNotifier 注入的实现
		emblemService = NewEmblemService(database.DB(), nil, SweepOptions{
			PageSize:    config.Cfg.EmblemSweepPageSize,
			Concurrency: config.Cfg.EmblemSweepConcurrency,
		})
	})
	return emblemService
}

func NewEmblemService(db *gorm.DB, notifier Notifier, sweep SweepOptions) *EmblemService {
	if sweep.PageSize <= 0 {
		sweep.PageSize = 500
	}
	if sweep.Concurrency <= 0 {
		sweep.Concurrency = 1
	}
	return &EmblemService{
		repo:     repository.New(db),
		notifier: notifier,
		sweep:    sweep,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// AwardIfEligible 已拥有或条件未满足返回 false；并发发放撞唯一约束同样返回 false
func (s *EmblemService) AwardIfEligible(ctx context.Context, userID, emblemID int64) (bool, error) {
	if userID <= 0 || emblemID <= 0 {
		return false, pkgerrors.InvalidID
	}

	ctx, span := tracer.Start(ctx, "emblem.award")
	defer span.End()
	span.SetAttributes(attribute.Int64("user_id", userID), attribute.Int64("emblem_id", emblemID))

	emblem, err := s.repo.GetEmblem(ctx, emblemID)
	if err != nil {
		if repository.IsNotFound(err) {
			return false, pkgerrors.EmblemNotFound
		}
		return false, fmt.Errorf("failed to query emblem: %w", err)
	}
	if err := s.ensureUser(ctx, userID); err != nil {
		return false, err
	}

	return s.award(ctx, userID, emblem, newAggregateCache(s.repo, userID))
}

// ScanAndAward 按 scope 过滤候选徽章，逐个尝试发放，返回新发放的徽章 id
func (s *EmblemService) ScanAndAward(ctx context.Context, userID int64, scope string) (*dto.ScanResult, error) {
	if userID <= 0 {
		return nil, pkgerrors.InvalidID
	}
	conditionType, err := ParseScope(scope)
	if err != nil {
		return nil, err
	}
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	emblems, err := s.repo.ListEmblems(ctx, conditionType)
	if err != nil {
		return nil, fmt.Errorf("failed to list emblems: %w", err)
	}

	owned, err := s.repo.ListUserEmblemIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user emblems: %w", err)
	}
	ownedSet := make(map[int64]struct{}, len(owned))
	for _, id := range owned {
		ownedSet[id] = struct{}{}
	}

	result := &dto.ScanResult{GrantedIDs: []int64{}}
	aggregates := newAggregateCache(s.repo, userID)
	for _, emblem := range emblems {
		if _, ok := ownedSet[emblem.ID]; ok {
			continue
		}
		granted, err := s.award(ctx, userID, emblem, aggregates)
		if err != nil {
			return result, err
		}
		if granted {
			result.GrantedIDs = append(result.GrantedIDs, emblem.ID)
		}
	}
	result.Count = len(result.GrantedIDs)

	if result.Count > 0 {
		logger.Logger.Info("Emblems granted by scan",
			zap.Int64("user_id", userID),
			zap.String("scope", scopeName(conditionType)),
			zap.Int64s("emblem_ids", result.GrantedIDs),
		)
	}
	return result, nil
}

// Summary 拥有数与目录总数都走 COUNT，读副本
func (s *EmblemService) Summary(ctx context.Context, userID int64) (*dto.EmblemSummary, error) {
	if userID <= 0 {
		return nil, pkgerrors.InvalidID
	}

	reader := s.repo.ReadReplica()
	owned, err := reader.CountUserEmblems(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count user emblems: %w", err)
	}
	total, err := reader.CountEmblems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count emblems: %w", err)
	}

	summary := &dto.EmblemSummary{Owned: owned, Total: total}
	if total > 0 {
		summary.CompletionRate = float64(owned) / float64(total)
	}
	return summary, nil
}

// SweepAll 按用户 id 分页全量扫描，单个用户失败只记录日志，返回新发放总数
func (s *EmblemService) SweepAll(ctx context.Context) (int64, error) {
	var (
		granted atomic.Int64
		failed  atomic.Int64
		afterID int64
	)

	for {
		ids, err := s.repo.ListUserIDsAfter(ctx, afterID, s.sweep.PageSize)
		if err != nil {
			return granted.Load(), fmt.Errorf("failed to page users: %w", err)
		}
		if len(ids) == 0 {
			break
		}

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.sweep.Concurrency)
		for _, userID := range ids {
			g.Go(func() error {
				result, err := s.ScanAndAward(gctx, userID, ScopeAll)
				if err != nil {
					if gctx.Err() != nil {
						return gctx.Err()
					}
					failed.Add(1)
					logger.Logger.Warn("Emblem sweep failed for user",
						zap.Int64("user_id", userID),
						zap.Error(err),
					)
					return nil
				}
				granted.Add(int64(result.Count))
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return granted.Load(), err
		}

		afterID = ids[len(ids)-1]
		if len(ids) < s.sweep.PageSize {
			break
		}
	}

	logger.Logger.Info("Emblem sweep finished",
		zap.Int64("granted", granted.Load()),
		zap.Int64("failed_users", failed.Load()),
	)
	return granted.Load(), nil
}

func (s *EmblemService) award(ctx context.Context, userID int64, emblem *model.Emblem, aggregates *aggregateCache) (bool, error) {
	has, err := s.repo.HasUserEmblem(ctx, userID, emblem.ID)
	if err != nil {
		return false, fmt.Errorf("failed to query user emblem: %w", err)
	}
	if has {
		return false, nil
	}

	eligible, err := aggregates.eligible(ctx, emblem)
	if err != nil {
		return false, err
	}
	if !eligible {
		return false, nil
	}

	return s.grant(ctx, userID, emblem)
}

// grant 插入发放记录。唯一约束冲突是唯一被当作"已发放"的错误分支
func (s *EmblemService) grant(ctx context.Context, userID int64, emblem *model.Emblem) (bool, error) {
	now := s.now()
	err := s.repo.CreateUserEmblem(ctx, &model.UserEmblem{
		UserID:     userID,
		EmblemID:   emblem.ID,
		AcquiredAt: now,
	})
	if err != nil {
		if repository.IsUniqueViolation(err) {
			metrics.GetMetrics().RecordEmblemGrantRace(ctx)
			return false, nil
		}
		return false, fmt.Errorf("failed to grant emblem: %w", err)
	}

	metrics.GetMetrics().RecordEmblemGranted(ctx, string(emblem.ConditionType))
	emit(ctx, s.notifier, model.EventMessage{
		EventType:  model.EventEmblemGranted,
		OccurredAt: now.Format(time.RFC3339),
		UserID:     userID,
		EmblemID:   emblem.ID,
	})
	return true, nil
}

func (s *EmblemService) ensureUser(ctx context.Context, userID int64) error {
	exists, err := s.repo.UserExists(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to query user: %w", err)
	}
	if !exists {
		return pkgerrors.UserNotFound
	}
	return nil
}

// ParseScope 空字符串或 ALL 表示全部；其余必须是已注册的条件类型
func ParseScope(scope string) (model.ConditionType, error) {
	scope = strings.ToUpper(strings.TrimSpace(scope))
	if scope == "" || scope == ScopeAll {
		return "", nil
	}
	conditionType := model.ConditionType(scope)
	if _, ok := lookupCondition(conditionType); !ok {
		return "", pkgerrors.InvalidScope
	}
	return conditionType, nil
}

func scopeName(conditionType model.ConditionType) string {
	if conditionType == "" {
		return ScopeAll
	}
	return string(conditionType)
}
