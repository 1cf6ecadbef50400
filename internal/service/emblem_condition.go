package service

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"WayToEarth/internal/model"
	"WayToEarth/internal/repository"
	"WayToEarth/pkg/logger"
)

// thresholdEpsilon 累计距离是浮点求和，恰好等于阈值时不能因为误差判为未达成
const thresholdEpsilon = 1e-9

// AggregateFunc 读取用户在某个条件类型上的当前累计值
type AggregateFunc func(ctx context.Context, repo *repository.Repository, userID int64) (float64, error)

var (
	conditionMu       sync.RWMutex
	conditionRegistry = map[model.ConditionType]AggregateFunc{
		model.ConditionDistance: func(ctx context.Context, repo *repository.Repository, userID int64) (float64, error) {
			return repo.SumCompletedDistance(ctx, userID)
		},
		model.ConditionRunCount: func(ctx context.Context, repo *repository.Repository, userID int64) (float64, error) {
			n, err := repo.CountCompletedRuns(ctx, userID)
			return float64(n), err
		},
		model.ConditionCourseCompleted: func(ctx context.Context, repo *repository.Repository, userID int64) (float64, error) {
			n, err := repo.CountCompletedEnrollments(ctx, userID)
			return float64(n), err
		},
		model.ConditionStampCount: func(ctx context.Context, repo *repository.Repository, userID int64) (float64, error) {
			n, err := repo.CountStampsByUser(ctx, userID)
			return float64(n), err
		},
	}
)

// RegisterCondition 新条件类型注册到同一张分发表，发放路径不需要改动
func RegisterCondition(conditionType model.ConditionType, fn AggregateFunc) {
	conditionMu.Lock()
	defer conditionMu.Unlock()
	conditionRegistry[conditionType] = fn
}

func lookupCondition(conditionType model.ConditionType) (AggregateFunc, bool) {
	conditionMu.RLock()
	defer conditionMu.RUnlock()
	fn, ok := conditionRegistry[conditionType]
	return fn, ok
}

// MeetsThreshold 阈值包含等于
func MeetsThreshold(aggregate, threshold float64) bool {
	return aggregate+thresholdEpsilon >= threshold
}

// aggregateCache 一次扫描内每种条件类型只查一次
type aggregateCache struct {
	repo   *repository.Repository
	userID int64
	values map[model.ConditionType]float64
}

func newAggregateCache(repo *repository.Repository, userID int64) *aggregateCache {
	return &aggregateCache{
		repo:   repo,
		userID: userID,
		values: make(map[model.ConditionType]float64),
	}
}

// eligible 未注册的条件类型视为不满足
func (c *aggregateCache) eligible(ctx context.Context, emblem *model.Emblem) (bool, error) {
	value, ok := c.values[emblem.ConditionType]
	if !ok {
		fn, registered := lookupCondition(emblem.ConditionType)
		if !registered {
			logger.Logger.Warn("Unknown emblem condition type",
				zap.Int64("emblem_id", emblem.ID),
				zap.String("condition_type", string(emblem.ConditionType)),
			)
			return false, nil
		}

		var err error
		value, err = fn(ctx, c.repo, c.userID)
		if err != nil {
			return false, fmt.Errorf("failed to evaluate %s: %w", emblem.ConditionType, err)
		}
		c.values[emblem.ConditionType] = value
	}

	return MeetsThreshold(value, emblem.ConditionValue), nil
}
