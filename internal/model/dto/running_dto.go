package dto

import "WayToEarth/internal/model"

// CompleteSessionRequest 结束跑步请求
type CompleteSessionRequest struct {
	DistanceKm  float64 `json:"distance_km"`
	DurationSec int64   `json:"duration_sec"`
}

// CompleteSessionResult 结束跑步结果，附带本次新发放的徽章
type CompleteSessionResult struct {
	Record           *model.RunningRecord `json:"record"`
	GrantedEmblemIDs []int64              `json:"granted_emblem_ids"`
}

// PaceCheckQuery 配速检查参数
type PaceCheckQuery struct {
	CurrentKm   float64 `query:"current_km"`
	CurrentPace float64 `query:"current_pace"`
}

// PaceDecision 配速教练的判断结果
type PaceDecision struct {
	Message        string  `json:"message,omitempty"`
	CompletedCount int     `json:"completed_count"`
	RequiredCount  int     `json:"required_count"`
	CurrentKm      float64 `json:"current_km"`
	CurrentPace    float64 `json:"current_pace"`
	ReferencePace  float64 `json:"reference_pace"`
	Diff           float64 `json:"diff"` // current - reference，正数表示更慢
	IsAvailable    bool    `json:"is_available"`
	ShouldAlert    bool    `json:"should_alert"`
}
