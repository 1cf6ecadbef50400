package repository

import (
	"context"
	"time"

	"WayToEarth/internal/model"
)

// CountRecentFingerprints 读主库，副本延迟会让判重窗口失效
func (r *Repository) CountRecentFingerprints(ctx context.Context, sessionID string, segmentID int64, distanceKey string, since time.Time) (int64, error) {
	f := r.q.ProgressFingerprint
	return f.WithContext(ctx).WriteDB().
		Where(
			f.SessionID.Eq(sessionID),
			f.SegmentID.Eq(segmentID),
			f.DistanceKey.Eq(distanceKey),
			f.CreatedAt.Gte(since),
		).
		Count()
}

func (r *Repository) CreateFingerprint(ctx context.Context, fp *model.ProgressFingerprint) error {
	return r.dao().ProgressFingerprint.WithContext(ctx).Create(fp)
}

// DeleteFingerprintsBefore 按创建时间批量删除，返回删除行数
func (r *Repository) DeleteFingerprintsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return r.dao().ProgressFingerprint.WithContext(ctx).PurgeBefore(cutoff)
}
