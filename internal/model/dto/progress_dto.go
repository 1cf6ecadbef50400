package dto

import "time"

// ========== 进度相关 DTO ==========

// EnrollRequest 报名请求
type EnrollRequest struct {
	CourseID int64 `json:"course_id,string"`
}

// ApplyProgressRequest 进度上报请求
type ApplyProgressRequest struct {
	SessionID  string  `json:"session_id"`
	SegmentID  int64   `json:"segment_id,string"`
	DistanceKm float64 `json:"distance_km"`
}

// CollectStampRequest 收集印章请求
type CollectStampRequest struct {
	LandmarkID int64 `json:"landmark_id,string"`
}

// ProgressSnapshot 一次写入（或被判重）之后的账本快照
type ProgressSnapshot struct {
	CompletedAt          *time.Time `json:"completed_at,omitempty"`
	Status               string     `json:"status"`
	SegmentStatus        string     `json:"segment_status,omitempty"`
	EnrollmentID         int64      `json:"enrollment_id,string"`
	SegmentID            int64      `json:"segment_id,string,omitempty"`
	AccumulatedKm        float64    `json:"accumulated_km"`
	ProgressPercent      float64    `json:"progress_percent"`
	SegmentAccumulatedKm float64    `json:"segment_accumulated_km,omitempty"`
	Duplicate            bool       `json:"duplicate"`
}

// StampResult 收集印章结果
type StampResult struct {
	CollectedAt    time.Time `json:"collected_at"`
	EnrollmentID   int64     `json:"enrollment_id,string"`
	LandmarkID     int64     `json:"landmark_id,string"`
	NewlyCollected bool      `json:"newly_collected"`
}

// ProgressAccepted 异步上报已入队
type ProgressAccepted struct {
	MessageID    string `json:"message_id"`
	EnrollmentID int64  `json:"enrollment_id,string"`
}
