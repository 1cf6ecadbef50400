package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/config"
	hertztracing "github.com/hertz-contrib/obs-opentelemetry/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
)

var (
	httpServerRequestTotal   metric.Int64Counter
	httpServerDuration       metric.Float64Histogram
	httpServerActiveRequests metric.Int64UpDownCounter
)

// toValidUTF8 统一清洗用户可控字符串，防止非法 UTF-8 触发指标/trace 序列化失败
func toValidUTF8(val string) string {
	return strings.ToValidUTF8(val, "")
}

// InitMetrics 初始化 HTTP 指标
func InitMetrics(meter metric.Meter) error {
	var err error

	httpServerRequestTotal, err = meter.Int64Counter(
		"http.server.requests.total",
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return err
	}

	httpServerDuration, err = meter.Float64Histogram(
		"http.server.duration",
		metric.WithDescription("HTTP request duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0),
	)
	if err != nil {
		return err
	}

	httpServerActiveRequests, err = meter.Int64UpDownCounter(
		"http.server.active_requests",
		metric.WithDescription("Number of active HTTP requests"),
		metric.WithUnit("{request}"),
	)
	return err
}

// MetricsMiddleware 记录请求指标；span 由 hertz tracing 中间件创建，这里只补充业务属性
func MetricsMiddleware() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if httpServerRequestTotal == nil {
			c.Next(ctx)
			return
		}

		startTime := time.Now()
		httpServerActiveRequests.Add(ctx, 1)
		defer httpServerActiveRequests.Add(ctx, -1)

		c.Next(ctx)

		// 路由模板而不是原始路径，避免 id 撑爆指标基数
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := toValidUTF8(string(c.Method()))
		statusCode := c.Response.StatusCode()

		if span := trace.SpanFromContext(ctx); span.SpanContext().IsValid() {
			if userID, ok := GetUserID(ctx, c); ok {
				span.SetAttributes(attribute.Int64("enduser.id", userID))
			}
			if requestID := c.GetHeader("X-Request-ID"); len(requestID) > 0 {
				span.SetAttributes(attribute.String("http.request_id", toValidUTF8(string(requestID))))
			}
		}

		labels := metric.WithAttributes(
			semconv.HTTPMethod(method),
			semconv.HTTPRoute(route),
			semconv.HTTPStatusCode(statusCode),
		)
		httpServerRequestTotal.Add(ctx, 1, labels)
		httpServerDuration.Record(ctx, time.Since(startTime).Seconds(), labels)
	}
}

// NewServerTracerConfig 创建 Hertz Server 的追踪配置
// 返回用于初始化 Hertz server 的配置选项和追踪中间件
func NewServerTracerConfig(opts ...hertztracing.Option) (config.Option, app.HandlerFunc) {
	tracer, cfg := hertztracing.NewServerTracer(opts...)
	return tracer, hertztracing.ServerMiddleware(cfg)
}
