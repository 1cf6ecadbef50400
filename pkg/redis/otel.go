package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
)

var (
	redisCommandsTotal   metric.Int64Counter
	redisCommandDuration metric.Float64Histogram
)

// InitRedisMetrics 初始化 Redis 指标
func InitRedisMetrics(meter metric.Meter) error {
	var err error

	redisCommandsTotal, err = meter.Int64Counter(
		"redis.commands.total",
		metric.WithDescription("Total number of Redis commands"),
		metric.WithUnit("{command}"),
	)
	if err != nil {
		return err
	}

	redisCommandDuration, err = meter.Float64Histogram(
		"redis.command.duration",
		metric.WithDescription("Redis command duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5),
	)
	return err
}

// TracingHook 锁和消息标记都是单条命令，不记录参数值
type TracingHook struct {
	tracer trace.Tracer
	attrs  []attribute.KeyValue
}

func NewTracingHook(serviceName string, db int) *TracingHook {
	return &TracingHook{
		tracer: otel.Tracer(serviceName + ".redis"),
		attrs: []attribute.KeyValue{
			semconv.DBSystemRedis,
			semconv.DBRedisDBIndex(db),
		},
	}
}

func (th *TracingHook) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (th *TracingHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		ctx, span := th.tracer.Start(ctx, "redis."+cmd.Name(),
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(th.attrs...),
		)
		defer span.End()
		span.SetAttributes(semconv.DBOperation(cmd.Name()))
		if key := firstKey(cmd.Args()); key != "" {
			span.SetAttributes(attribute.String("redis.key", key))
		}

		start := time.Now()
		err := next(ctx, cmd)

		status := "success"
		switch {
		case errors.Is(err, redis.Nil):
			status = "not_found"
		case err != nil:
			status = "error"
			span.SetStatus(codes.Error, err.Error())
			span.RecordError(err)
		}

		if redisCommandsTotal != nil {
			labels := metric.WithAttributes(
				attribute.String("redis.command", cmd.Name()),
				attribute.String("redis.status", status),
			)
			redisCommandsTotal.Add(ctx, 1, labels)
			redisCommandDuration.Record(ctx, time.Since(start).Seconds(), labels)
		}
		return err
	}
}

func (th *TracingHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		ctx, span := th.tracer.Start(ctx, "redis.pipeline",
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(th.attrs...),
		)
		defer span.End()
		span.SetAttributes(attribute.Int("redis.pipeline.count", len(cmds)))
		return next(ctx, cmds)
	}
}

// firstKey EVAL 的第一个参数是脚本，键在 numkeys 之后
func firstKey(args []interface{}) string {
	if len(args) < 2 {
		return ""
	}
	idx := 1
	if name, _ := args[0].(string); name == "eval" || name == "evalsha" {
		idx = 3
	}
	if idx >= len(args) {
		return ""
	}
	key, _ := args[idx].(string)
	if len(key) > 100 {
		key = key[:100]
	}
	return key
}

// InstrumentRedisClient 为 Redis 客户端添加 OpenTelemetry 支持
func InstrumentRedisClient(client *redis.Client, serviceName string, db int) {
	client.AddHook(NewTracingHook(serviceName, db))
}
