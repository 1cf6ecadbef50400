package model

import "time"

// RunningStatus 跑步记录状态
type RunningStatus string

const (
	RunningStatusRunning   RunningStatus = "RUNNING"
	RunningStatusCompleted RunningStatus = "COMPLETED"
)

// RunningRecord 一次跑步会话，SessionID 同时作为进度上报的会话标识
type RunningRecord struct {
	BaseModel
	StartedAt      time.Time     `gorm:"not null;index:idx_running_records_user_status_started,priority:3" json:"started_at"`
	EndedAt        *time.Time    `json:"ended_at,omitempty"`
	SessionID      string        `gorm:"type:varchar(64);not null;uniqueIndex:uk_running_records_session" json:"session_id"`
	Status         RunningStatus `gorm:"type:varchar(16);not null;default:'RUNNING';index:idx_running_records_user_status_started,priority:2" json:"status"`
	UserID         int64         `gorm:"not null;index:idx_running_records_user_status_started,priority:1" json:"user_id"`
	DistanceKm     float64       `gorm:"not null;default:0" json:"distance_km"`
	DurationSec    int64         `gorm:"not null;default:0" json:"duration_sec"`
	AveragePaceSec float64       `gorm:"not null;default:0" json:"average_pace_sec"` // 秒/公里
}

// TableName 指定表名
func (RunningRecord) TableName() string {
	return "running_records"
}
