package database

import (
	"errors"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const (
	spanKey      = "otel:span"
	startTimeKey = "otel:start_time"
)

// OTELPlugin GORM OpenTelemetry 插件，每条语句一个 client span 并记录耗时
type OTELPlugin struct {
	tracer        trace.Tracer
	queries       metric.Int64Counter
	queryDuration metric.Float64Histogram
	config        PluginConfig
}

// PluginConfig 插件配置
type PluginConfig struct {
	ServiceName  string
	DBSystem     string
	MaxSQLLength int
}

// DefaultPluginConfig 默认插件配置
func DefaultPluginConfig() PluginConfig {
	return PluginConfig{
		ServiceName:  "waytoearth",
		DBSystem:     "postgresql",
		MaxSQLLength: 500,
	}
}

// NewOTELPlugin 创建插件实例
func NewOTELPlugin(config PluginConfig) (*OTELPlugin, error) {
	if config.ServiceName == "" {
		config.ServiceName = "waytoearth"
	}
	if config.MaxSQLLength <= 0 {
		config.MaxSQLLength = 500
	}

	meter := otel.Meter(config.ServiceName + ".gorm")
	queries, err := meter.Int64Counter(
		"db.queries.total",
		metric.WithDescription("Total number of database queries"),
		metric.WithUnit("{query}"),
	)
	if err != nil {
		return nil, err
	}
	queryDuration, err := meter.Float64Histogram(
		"db.query.duration",
		metric.WithDescription("Database query duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5),
	)
	if err != nil {
		return nil, err
	}

	return &OTELPlugin{
		tracer:        otel.Tracer(config.ServiceName + ".gorm"),
		queries:       queries,
		queryDuration: queryDuration,
		config:        config,
	}, nil
}

// Name 实现 gorm.Plugin 接口
func (p *OTELPlugin) Name() string {
	return "otel_plugin"
}

// Initialize 注册回调
func (p *OTELPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()

	if err := cb.Query().Before("gorm:query").Register("otel:before_query", p.before); err != nil {
		return err
	}
	if err := cb.Query().After("gorm:query").Register("otel:after_query", p.after); err != nil {
		return err
	}
	if err := cb.Create().Before("gorm:create").Register("otel:before_create", p.before); err != nil {
		return err
	}
	if err := cb.Create().After("gorm:create").Register("otel:after_create", p.after); err != nil {
		return err
	}
	if err := cb.Update().Before("gorm:update").Register("otel:before_update", p.before); err != nil {
		return err
	}
	if err := cb.Update().After("gorm:update").Register("otel:after_update", p.after); err != nil {
		return err
	}
	if err := cb.Delete().Before("gorm:delete").Register("otel:before_delete", p.before); err != nil {
		return err
	}
	if err := cb.Delete().After("gorm:delete").Register("otel:after_delete", p.after); err != nil {
		return err
	}
	if err := cb.Row().Before("gorm:row").Register("otel:before_row", p.before); err != nil {
		return err
	}
	if err := cb.Row().After("gorm:row").Register("otel:after_row", p.after); err != nil {
		return err
	}
	if err := cb.Raw().Before("gorm:raw").Register("otel:before_raw", p.before); err != nil {
		return err
	}
	return cb.Raw().After("gorm:raw").Register("otel:after_raw", p.after)
}

func (p *OTELPlugin) before(db *gorm.DB) {
	ctx, span := p.tracer.Start(db.Statement.Context, "db."+tableOf(db),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", p.config.DBSystem),
			attribute.String("db.table", tableOf(db)),
		),
	)
	db.InstanceSet(startTimeKey, time.Now())
	db.InstanceSet(spanKey, span)
	db.Statement.Context = ctx
}

func (p *OTELPlugin) after(db *gorm.DB) {
	spanVal, ok := db.InstanceGet(spanKey)
	if !ok {
		return
	}
	span, ok := spanVal.(trace.Span)
	if !ok {
		return
	}
	defer span.End()

	operation := operationOf(db.Statement.SQL.String())
	span.SetName("db." + operation)
	span.SetAttributes(
		attribute.String("db.operation", operation),
		attribute.String("db.statement", p.truncate(db.Statement.SQL.String())),
		attribute.Int64("db.rows_affected", db.Statement.RowsAffected),
	)

	status := "success"
	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		status = "error"
		span.SetStatus(codes.Error, db.Error.Error())
		span.RecordError(db.Error)
	}

	labels := metric.WithAttributes(
		attribute.String("db.operation", operation),
		attribute.String("db.status", status),
	)
	p.queries.Add(db.Statement.Context, 1, labels)

	if startVal, ok := db.InstanceGet(startTimeKey); ok {
		if start, ok := startVal.(time.Time); ok {
			p.queryDuration.Record(db.Statement.Context, time.Since(start).Seconds(), labels)
		}
	}
}

// truncate 只记录 SQL 模板，参数以占位符出现，不会泄露取值
func (p *OTELPlugin) truncate(sql string) string {
	if len(sql) > p.config.MaxSQLLength {
		return sql[:p.config.MaxSQLLength] + "..."
	}
	return sql
}

func tableOf(db *gorm.DB) string {
	if db.Statement.Table != "" {
		return db.Statement.Table
	}
	return "unknown"
}

func operationOf(sql string) string {
	sql = strings.ToUpper(strings.TrimSpace(sql))
	switch {
	case strings.HasPrefix(sql, "SELECT"):
		return "select"
	case strings.HasPrefix(sql, "INSERT"):
		return "insert"
	case strings.HasPrefix(sql, "UPDATE"):
		return "update"
	case strings.HasPrefix(sql, "DELETE"):
		return "delete"
	default:
		return "query"
	}
}

// WithOTELPlugin 为 GORM 添加 OpenTelemetry 插件
func WithOTELPlugin(db *gorm.DB, config PluginConfig) error {
	plugin, err := NewOTELPlugin(config)
	if err != nil {
		return err
	}
	return db.Use(plugin)
}
