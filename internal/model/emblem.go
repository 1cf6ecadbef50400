package model

import "time"

// ConditionType 徽章达成条件类型
type ConditionType string

const (
	ConditionDistance        ConditionType = "DISTANCE"         // 已完成跑步的累计公里数
	ConditionRunCount        ConditionType = "RUN_COUNT"        // 已完成跑步次数
	ConditionCourseCompleted ConditionType = "COURSE_COMPLETED" // 已完成的课程/旅程数
	ConditionStampCount      ConditionType = "STAMP_COUNT"      // 收集的印章数
)

// Emblem 徽章目录，静态数据
type Emblem struct {
	BaseModel
	Code           string        `gorm:"type:varchar(64);not null;uniqueIndex:uk_emblems_code" json:"code"`
	Name           string        `gorm:"type:varchar(128);not null" json:"name"`
	Description    string        `gorm:"type:varchar(512);not null;default:''" json:"description"`
	ConditionType  ConditionType `gorm:"type:varchar(32);not null;index:idx_emblems_condition_type" json:"condition_type"`
	ConditionValue float64       `gorm:"not null" json:"condition_value"`
}

// TableName 指定表名
func (Emblem) TableName() string {
	return "emblems"
}

// UserEmblem 徽章授予记录，(user, emblem) 唯一约束是防重的最终依据
type UserEmblem struct {
	AcquiredAt time.Time `gorm:"not null" json:"acquired_at"`
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     int64     `gorm:"not null;uniqueIndex:uk_user_emblems_user_emblem,priority:1;index:idx_user_emblems_user" json:"user_id"`
	EmblemID   int64     `gorm:"not null;uniqueIndex:uk_user_emblems_user_emblem,priority:2" json:"emblem_id"`
}

// TableName 指定表名
func (UserEmblem) TableName() string {
	return "user_emblems"
}
