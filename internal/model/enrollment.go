package model

import "time"

// EnrollmentKind 报名类型
type EnrollmentKind string

const (
	EnrollmentKindCourse  EnrollmentKind = "COURSE"
	EnrollmentKindJourney EnrollmentKind = "JOURNEY"
)

// ProgressStatus 进度状态，只允许向前迁移
type ProgressStatus string

const (
	ProgressStatusActive    ProgressStatus = "ACTIVE"
	ProgressStatusPaused    ProgressStatus = "PAUSED" // 仅旅程
	ProgressStatusCompleted ProgressStatus = "COMPLETED"
)

// Enrollment 用户在某课程上的进度账本，每个 (user, course) 一行
type Enrollment struct {
	BaseModel
	CompletedAt     *time.Time     `json:"completed_at,omitempty"` // 只写一次
	PausedAt        *time.Time     `json:"paused_at,omitempty"`
	UserID          int64          `gorm:"not null;uniqueIndex:uk_enrollments_user_course,priority:1;index:idx_enrollments_user_status,priority:1" json:"user_id"`
	CourseID        int64          `gorm:"not null;uniqueIndex:uk_enrollments_user_course,priority:2" json:"course_id"`
	Kind            EnrollmentKind `gorm:"type:varchar(16);not null;default:'COURSE'" json:"kind"`
	Status          ProgressStatus `gorm:"type:varchar(16);not null;default:'ACTIVE';index:idx_enrollments_user_status,priority:2" json:"status"`
	AccumulatedKm   float64        `gorm:"not null;default:0" json:"accumulated_km"`
	ProgressPercent float64        `gorm:"not null;default:0" json:"progress_percent"`
	Version         int64          `gorm:"not null;default:0" json:"version"`
}

// TableName 指定表名
func (Enrollment) TableName() string {
	return "enrollments"
}

// IsJourney 旅程报名才支持暂停和印章
func (e *Enrollment) IsJourney() bool {
	return e.Kind == EnrollmentKindJourney
}

// SegmentProgress 分段进度，首次有增量时懒创建，永不删除
type SegmentProgress struct {
	BaseModel
	CompletedAt   *time.Time     `json:"completed_at,omitempty"`
	EnrollmentID  int64          `gorm:"not null;uniqueIndex:uk_segment_progresses_enrollment_segment,priority:1" json:"enrollment_id"`
	SegmentID     int64          `gorm:"not null;uniqueIndex:uk_segment_progresses_enrollment_segment,priority:2" json:"segment_id"`
	Status        ProgressStatus `gorm:"type:varchar(16);not null;default:'ACTIVE'" json:"status"`
	AccumulatedKm float64        `gorm:"not null;default:0" json:"accumulated_km"`
	Version       int64          `gorm:"not null;default:0" json:"version"`
}

// TableName 指定表名
func (SegmentProgress) TableName() string {
	return "segment_progresses"
}

// Stamp 旅程地标印章，只追加
type Stamp struct {
	CollectedAt  time.Time `gorm:"not null" json:"collected_at"`
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	EnrollmentID int64     `gorm:"not null;uniqueIndex:uk_stamps_enrollment_landmark,priority:1" json:"enrollment_id"`
	LandmarkID   int64     `gorm:"not null;uniqueIndex:uk_stamps_enrollment_landmark,priority:2" json:"landmark_id"`
}

// TableName 指定表名
func (Stamp) TableName() string {
	return "stamps"
}
