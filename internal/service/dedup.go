package service

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"WayToEarth/config"
	"WayToEarth/internal/model"
	"WayToEarth/internal/repository"
	"WayToEarth/pkg/logger"
	"WayToEarth/pkg/metrics"
	"WayToEarth/storage/database"
)

// DedupGuard 窗口内的指纹表，把客户端至少一次的重试转成账本的至多一次写入
// 这是尽力而为的过滤：两个几乎同时的请求可能都通过 IsDuplicate，
// 真正落账时指纹与账本在同一事务写入，主键冲突会让后到者回滚
type DedupGuard struct {
	repo   *repository.Repository
	window time.Duration
	now    func() time.Time
}

var (
	dedupGuard *DedupGuard
	dedupOnce  sync.Once
)

func Dedup() *DedupGuard {
	dedupOnce.Do(func() {
		dedupGuard = NewDedupGuard(database.DB(), config.Cfg.DedupWindow)
	})
	return dedupGuard
}

func NewDedupGuard(db *gorm.DB, window time.Duration) *DedupGuard {
	return &DedupGuard{
		repo:   repository.New(db),
		window: window,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// DistanceKey 距离统一保留三位小数（米级），避免浮点表示差异导致判重失败
func DistanceKey(distanceKm float64) string {
	return strconv.FormatFloat(distanceKm, 'f', 3, 64)
}

// dedupApplies 没有会话，或增量按米取整后为 0 时不判重，
// 否则两次不同的亚米级增量会落到同一个 "0.000" 指纹上被误判为重复
func dedupApplies(sessionID string, distanceKm float64) bool {
	return sessionID != "" && DistanceKey(distanceKm) != DistanceKey(0)
}

// FingerprintID 指纹主键包含时间戳，不同时刻的相同距离可以区分
func FingerprintID(sessionID string, segmentID int64, distanceKm float64, at time.Time) string {
	return fmt.Sprintf("%s:%d:%s:%d", sessionID, segmentID, DistanceKey(distanceKm), at.UnixMilli())
}

// IsDuplicate window <= 0 时使用配置的默认窗口
func (g *DedupGuard) IsDuplicate(ctx context.Context, sessionID string, segmentID int64, distanceKm float64, window time.Duration) (bool, error) {
	if window <= 0 {
		window = g.window
	}

	since := g.now().Add(-window)
	n, err := g.repo.CountRecentFingerprints(ctx, sessionID, segmentID, DistanceKey(distanceKm), since)
	if err != nil {
		return false, fmt.Errorf("failed to query fingerprints: %w", err)
	}
	return n > 0, nil
}

// Record 单独写一条指纹；账本写入路径使用 record 与账本同事务
func (g *DedupGuard) Record(ctx context.Context, sessionID string, segmentID int64, distanceKm float64) error {
	return g.record(ctx, g.repo, sessionID, segmentID, distanceKm)
}

func (g *DedupGuard) record(ctx context.Context, repo *repository.Repository, sessionID string, segmentID int64, distanceKm float64) error {
	at := g.now()
	return repo.CreateFingerprint(ctx, &model.ProgressFingerprint{
		ID:          FingerprintID(sessionID, segmentID, distanceKm, at),
		SessionID:   sessionID,
		SegmentID:   segmentID,
		DistanceKey: DistanceKey(distanceKm),
		CreatedAt:   at,
	})
}

// PurgeExpired 删除 cutoff 之前的指纹，过期后相同上报可以被再次处理
func (g *DedupGuard) PurgeExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	deleted, err := g.repo.DeleteFingerprintsBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge fingerprints: %w", err)
	}

	metrics.GetMetrics().RecordFingerprintsPurged(ctx, deleted)
	logger.Logger.Info("Purged expired fingerprints",
		zap.Time("cutoff", cutoff),
		zap.Int64("deleted", deleted),
	)
	return deleted, nil
}
