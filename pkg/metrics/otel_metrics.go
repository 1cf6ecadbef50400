package metrics

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// OTelMetrics 进度账本与徽章相关指标
type OTelMetrics struct {
	// 进度账本
	ProgressAppliedTotal   metric.Int64Counter
	ProgressDuplicateTotal metric.Int64Counter
	ProgressConflictTotal  metric.Int64Counter
	ProgressRetryTotal     metric.Int64Counter
	ProgressApplyDuration  metric.Float64Histogram
	CourseCompletionTotal  metric.Int64Counter

	// 去重指纹
	FingerprintPurgedTotal metric.Int64Counter

	// 徽章
	EmblemGrantTotal     metric.Int64Counter
	EmblemGrantRaceTotal metric.Int64Counter
}

var (
	metrics     *OTelMetrics
	metricsOnce sync.Once
	metricsErr  error
)

// InitMetrics 初始化 OpenTelemetry 指标，需在 MeterProvider 设置之后调用
func InitMetrics() error {
	metricsOnce.Do(func() {
		metrics, metricsErr = newOTelMetrics(otel.Meter("waytoearth"))
	})
	return metricsErr
}

func newOTelMetrics(meter metric.Meter) (*OTelMetrics, error) {
	m := &OTelMetrics{}
	var err error

	if m.ProgressAppliedTotal, err = meter.Int64Counter(
		"progress_applied_total",
		metric.WithDescription("Total number of progress deltas applied to the ledger"),
		metric.WithUnit("{delta}"),
	); err != nil {
		return nil, err
	}

	if m.ProgressDuplicateTotal, err = meter.Int64Counter(
		"progress_duplicate_total",
		metric.WithDescription("Total number of progress deltas discarded as client retries"),
		metric.WithUnit("{delta}"),
	); err != nil {
		return nil, err
	}

	if m.ProgressConflictTotal, err = meter.Int64Counter(
		"progress_conflict_total",
		metric.WithDescription("Total number of progress writes that exhausted optimistic retries"),
		metric.WithUnit("{conflict}"),
	); err != nil {
		return nil, err
	}

	if m.ProgressRetryTotal, err = meter.Int64Counter(
		"progress_retry_total",
		metric.WithDescription("Total number of optimistic lock retries"),
		metric.WithUnit("{retry}"),
	); err != nil {
		return nil, err
	}

	if m.ProgressApplyDuration, err = meter.Float64Histogram(
		"progress_apply_duration_seconds",
		metric.WithDescription("Time spent applying a progress delta"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}

	if m.CourseCompletionTotal, err = meter.Int64Counter(
		"course_completion_total",
		metric.WithDescription("Total number of enrollments reaching COMPLETED"),
		metric.WithUnit("{enrollment}"),
	); err != nil {
		return nil, err
	}

	if m.FingerprintPurgedTotal, err = meter.Int64Counter(
		"progress_fingerprint_purged_total",
		metric.WithDescription("Total number of expired dedup fingerprints deleted by the sweep"),
		metric.WithUnit("{fingerprint}"),
	); err != nil {
		return nil, err
	}

	if m.EmblemGrantTotal, err = meter.Int64Counter(
		"emblem_grant_total",
		metric.WithDescription("Total number of emblems newly granted"),
		metric.WithUnit("{grant}"),
	); err != nil {
		return nil, err
	}

	if m.EmblemGrantRaceTotal, err = meter.Int64Counter(
		"emblem_grant_race_total",
		metric.WithDescription("Total number of grant inserts rejected by the uniqueness constraint"),
		metric.WithUnit("{grant}"),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// GetMetrics 获取全局指标实例，未初始化时返回 nil（所有 Record 方法对 nil 安全）
func GetMetrics() *OTelMetrics {
	return metrics
}

// RecordProgressApplied 记录一次账本写入
func (m *OTelMetrics) RecordProgressApplied(ctx context.Context, status string, attempts int, seconds float64) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("status", status))
	m.ProgressAppliedTotal.Add(ctx, 1, attrs)
	m.ProgressApplyDuration.Record(ctx, seconds, attrs)
	if attempts > 1 {
		m.ProgressRetryTotal.Add(ctx, int64(attempts-1))
	}
}

// RecordProgressDuplicate 记录被去重丢弃的上报
func (m *OTelMetrics) RecordProgressDuplicate(ctx context.Context) {
	if m == nil {
		return
	}
	m.ProgressDuplicateTotal.Add(ctx, 1)
}

// RecordProgressConflict 记录重试耗尽后的冲突
func (m *OTelMetrics) RecordProgressConflict(ctx context.Context, attempts int) {
	if m == nil {
		return
	}
	m.ProgressConflictTotal.Add(ctx, 1)
	m.ProgressRetryTotal.Add(ctx, int64(attempts))
}

// RecordCourseCompleted 记录课程完成
func (m *OTelMetrics) RecordCourseCompleted(ctx context.Context, kind string) {
	if m == nil {
		return
	}
	m.CourseCompletionTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}

// RecordFingerprintsPurged 记录清理的指纹数量
func (m *OTelMetrics) RecordFingerprintsPurged(ctx context.Context, n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.FingerprintPurgedTotal.Add(ctx, n)
}

// RecordEmblemGranted 记录徽章发放
func (m *OTelMetrics) RecordEmblemGranted(ctx context.Context, conditionType string) {
	if m == nil {
		return
	}
	m.EmblemGrantTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("condition_type", conditionType)))
}

// RecordEmblemGrantRace 记录唯一约束拦截的并发发放
func (m *OTelMetrics) RecordEmblemGrantRace(ctx context.Context) {
	if m == nil {
		return
	}
	m.EmblemGrantRaceTotal.Add(ctx, 1)
}
