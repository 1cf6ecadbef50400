package model

import "time"

// ProgressFingerprint 进度上报指纹，写入后不可变，由定时任务按创建时间清理
type ProgressFingerprint struct {
	CreatedAt   time.Time `gorm:"not null;index:idx_progress_fingerprints_lookup,priority:4;index:idx_progress_fingerprints_created" json:"created_at"`
	ID          string    `gorm:"primaryKey;type:varchar(191)" json:"id"` // session:segment:distance:毫秒时间戳
	SessionID   string    `gorm:"type:varchar(64);not null;index:idx_progress_fingerprints_lookup,priority:1" json:"session_id"`
	DistanceKey string    `gorm:"type:varchar(32);not null;index:idx_progress_fingerprints_lookup,priority:3" json:"distance_key"`
	SegmentID   int64     `gorm:"not null;index:idx_progress_fingerprints_lookup,priority:2" json:"segment_id"`
}

// TableName 指定表名
func (ProgressFingerprint) TableName() string {
	return "progress_fingerprints"
}
