package model

// ProgressDeltaMessage 客户端异步上报的进度增量
type ProgressDeltaMessage struct {
	MessageID    string  `json:"message_id"` // 消息唯一ID，用于幂等性检查
	SessionID    string  `json:"session_id"`
	ReportedAt   string  `json:"reported_at"`
	UserID       int64   `json:"user_id"`
	EnrollmentID int64   `json:"enrollment_id"`
	SegmentID    int64   `json:"segment_id"`
	DistanceKm   float64 `json:"distance_km"`
}

// EventType 通知事件类型
type EventType string

const (
	EventCourseCompleted  EventType = "course_completed"
	EventSegmentCompleted EventType = "segment_completed"
	EventEmblemGranted    EventType = "emblem_granted"
)

// EventMessage 发给外部通知分发方的纯数据事件
type EventMessage struct {
	MessageID    string    `json:"message_id"`
	EventType    EventType `json:"event_type"`
	OccurredAt   string    `json:"occurred_at"`
	UserID       int64     `json:"user_id"`
	CourseID     int64     `json:"course_id,omitempty"`
	EnrollmentID int64     `json:"enrollment_id,omitempty"`
	SegmentID    int64     `json:"segment_id,omitempty"`
	EmblemID     int64     `json:"emblem_id,omitempty"`
}
