package repository

import (
	"context"
	"database/sql"
	"time"

	"WayToEarth/internal/model"
)

// RunSummary 结束跑步时落库的汇总
type RunSummary struct {
	DistanceKm     float64
	DurationSec    int64
	AveragePaceSec float64
	EndedAt        time.Time
}

func (r *Repository) CreateRunningRecord(ctx context.Context, record *model.RunningRecord) error {
	return r.dao().RunningRecord.WithContext(ctx).Create(record)
}

func (r *Repository) GetRunningRecordBySession(ctx context.Context, sessionID string) (*model.RunningRecord, error) {
	rr := r.dao().RunningRecord
	return rr.WithContext(ctx).Where(rr.SessionID.Eq(sessionID)).First()
}

// CompleteRunningRecord 只允许 RUNNING -> COMPLETED，返回 false 表示已被结束
func (r *Repository) CompleteRunningRecord(ctx context.Context, id int64, summary RunSummary) (bool, error) {
	rr := r.dao().RunningRecord
	info, err := rr.WithContext(ctx).
		Where(rr.ID.Eq(id), rr.Status.Eq(string(model.RunningStatusRunning))).
		UpdateSimple(
			rr.Status.Value(string(model.RunningStatusCompleted)),
			rr.DistanceKm.Value(summary.DistanceKm),
			rr.DurationSec.Value(summary.DurationSec),
			rr.AveragePaceSec.Value(summary.AveragePaceSec),
			rr.EndedAt.Value(summary.EndedAt),
		)
	if err != nil {
		return false, err
	}
	return info.RowsAffected > 0, nil
}

func (r *Repository) CountCompletedRuns(ctx context.Context, userID int64) (int64, error) {
	rr := r.dao().RunningRecord
	return rr.WithContext(ctx).
		Where(rr.UserID.Eq(userID), rr.Status.Eq(string(model.RunningStatusCompleted))).
		Count()
}

// SumCompletedDistance 没有已完成跑步时 SUM 为 NULL，按 0 返回
func (r *Repository) SumCompletedDistance(ctx context.Context, userID int64) (float64, error) {
	var total sql.NullFloat64
	rr := r.dao().RunningRecord
	err := rr.WithContext(ctx).
		Select(rr.DistanceKm.Sum()).
		Where(rr.UserID.Eq(userID), rr.Status.Eq(string(model.RunningStatusCompleted))).
		Scan(&total)
	return total.Float64, err
}

// RecentCompletedPaces 最近开始的已完成跑步的平均配速，started_at 相同时按插入顺序
func (r *Repository) RecentCompletedPaces(ctx context.Context, userID int64, limit int) ([]float64, error) {
	var paces []float64
	rr := r.dao().RunningRecord
	err := rr.WithContext(ctx).
		Where(rr.UserID.Eq(userID), rr.Status.Eq(string(model.RunningStatusCompleted))).
		Order(rr.StartedAt.Desc(), rr.ID.Desc()).
		Limit(limit).
		Pluck(rr.AveragePaceSec, &paces)
	return paces, err
}
