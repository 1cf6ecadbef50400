package mq

import (
	"context"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "waytoearth.rabbitmq"

var (
	mqMessagesTotal   metric.Int64Counter
	mqMessageDuration metric.Float64Histogram
)

// InitMQMetrics 初始化 RabbitMQ 指标，未调用时只记录 span
func InitMQMetrics(meter metric.Meter) error {
	var err error

	mqMessagesTotal, err = meter.Int64Counter(
		"mq.messages.total",
		metric.WithDescription("Total number of RabbitMQ messages"),
		metric.WithUnit("{message}"),
	)
	if err != nil {
		return err
	}

	mqMessageDuration, err = meter.Float64Histogram(
		"mq.message.duration",
		metric.WithDescription("RabbitMQ publish and handle duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5),
	)
	return err
}

func tracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}

// StartPublishSpan 创建发布 span 并把追踪上下文写入消息头
func StartPublishSpan(ctx context.Context, exchange, routingKey string, msg *amqp.Publishing) (context.Context, trace.Span) {
	ctx, span := tracer().Start(ctx, "rabbitmq.publish "+exchange,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			semconv.MessagingSystem("rabbitmq"),
			attribute.String("messaging.destination.name", exchange),
			semconv.MessagingRabbitmqDestinationRoutingKey(routingKey),
		),
	)

	if msg.Headers == nil {
		msg.Headers = make(amqp.Table)
	}
	otel.GetTextMapPropagator().Inject(ctx, &MessageHeaderCarrier{Headers: msg.Headers})
	return ctx, span
}

// StartConsumeSpan 从消息头恢复上游追踪上下文，再创建处理 span
func StartConsumeSpan(ctx context.Context, queue string, delivery amqp.Delivery) (context.Context, trace.Span) {
	ctx = otel.GetTextMapPropagator().Extract(ctx, &MessageHeaderCarrier{Headers: delivery.Headers})
	return tracer().Start(ctx, "rabbitmq.process "+queue,
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			semconv.MessagingSystem("rabbitmq"),
			attribute.String("messaging.rabbitmq.queue", queue),
			attribute.String("messaging.rabbitmq.exchange", delivery.Exchange),
			semconv.MessagingRabbitmqDestinationRoutingKey(delivery.RoutingKey),
			semconv.MessagingMessageID(delivery.MessageId),
		),
	)
}

// EndSpan 记录结果与耗时，status 为 success / skipped / error
func EndSpan(ctx context.Context, span trace.Span, operation, status string, start time.Time, err error) {
	if err != nil && status == "error" {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
	}
	span.End()

	if mqMessagesTotal == nil {
		return
	}
	labels := metric.WithAttributes(
		semconv.MessagingSystem("rabbitmq"),
		attribute.String("messaging.operation", operation),
		attribute.String("messaging.status", status),
	)
	mqMessagesTotal.Add(ctx, 1, labels)
	mqMessageDuration.Record(ctx, time.Since(start).Seconds(), labels)
}

// MessageHeaderCarrier 实现 propagation.TextMapCarrier 接口
type MessageHeaderCarrier struct {
	Headers amqp.Table
}

func (m *MessageHeaderCarrier) Get(key string) string {
	if val, ok := m.Headers[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func (m *MessageHeaderCarrier) Set(key, value string) {
	if m.Headers == nil {
		m.Headers = make(amqp.Table)
	}
	m.Headers[key] = value
}

func (m *MessageHeaderCarrier) Keys() []string {
	keys := make([]string, 0, len(m.Headers))
	for k := range m.Headers {
		keys = append(keys, k)
	}
	return keys
}
