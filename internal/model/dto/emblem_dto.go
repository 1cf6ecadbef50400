package dto

// ScanRequest 徽章扫描请求，scope 为空或 ALL 表示全部条件类型
type ScanRequest struct {
	Scope string `json:"scope"`
}

// AwardResult 单个徽章授予结果
type AwardResult struct {
	EmblemID int64 `json:"emblem_id,string"`
	Granted  bool  `json:"granted"`
}

// ScanResult 批量扫描结果
type ScanResult struct {
	GrantedIDs []int64 `json:"granted_ids"`
	Count      int     `json:"count"`
}

// EmblemSummary 徽章汇总
type EmblemSummary struct {
	Owned          int64   `json:"owned"`
	Total          int64   `json:"total"`
	CompletionRate float64 `json:"completion_rate"` // 0~1
}
