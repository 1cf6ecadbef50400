package model

// CourseKind 课程类型
type CourseKind string

const (
	CourseKindTheme   CourseKind = "THEME"   // 主题课程
	CourseKindCustom  CourseKind = "CUSTOM"  // 用户自定义课程
	CourseKindJourney CourseKind = "JOURNEY" // 旅程，支持暂停和地标印章
)

// Course 虚拟课程，参考数据，由外部的课程管理维护
type Course struct {
	BaseModel
	Title           string     `gorm:"type:varchar(128);not null" json:"title"`
	Kind            CourseKind `gorm:"type:varchar(16);not null;default:'THEME'" json:"kind"`
	TotalDistanceKm float64    `gorm:"not null" json:"total_distance_km"`
}

// TableName 指定表名
func (Course) TableName() string {
	return "courses"
}

// CourseSegment 课程分段，每段有自己的目标距离和起止坐标
type CourseSegment struct {
	BaseModel
	CourseID   int64   `gorm:"not null;uniqueIndex:uk_course_segments_course_seq,priority:1" json:"course_id"`
	Sequence   int     `gorm:"not null;uniqueIndex:uk_course_segments_course_seq,priority:2" json:"sequence"`
	DistanceKm float64 `gorm:"not null" json:"distance_km"`
	StartLat   float64 `gorm:"not null;default:0" json:"start_lat"`
	StartLng   float64 `gorm:"not null;default:0" json:"start_lng"`
	EndLat     float64 `gorm:"not null;default:0" json:"end_lat"`
	EndLng     float64 `gorm:"not null;default:0" json:"end_lng"`
}

// TableName 指定表名
func (CourseSegment) TableName() string {
	return "course_segments"
}

// Landmark 旅程中的地标，累计距离达到后可收集印章
type Landmark struct {
	BaseModel
	CourseID            int64   `gorm:"not null;index:idx_landmarks_course" json:"course_id"`
	Name                string  `gorm:"type:varchar(128);not null" json:"name"`
	DistanceFromStartKm float64 `gorm:"not null" json:"distance_from_start_km"`
}

// TableName 指定表名
func (Landmark) TableName() string {
	return "landmarks"
}
