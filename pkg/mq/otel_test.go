package mq

import (
	"context"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

func TestTraceContextRoundTripThroughHeaders(t *testing.T) {
	otel.SetTextMapPropagator(propagation.TraceContext{})
	provider := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	msg := amqp.Publishing{}
	pubCtx, pubSpan := StartPublishSpan(context.Background(), "progress", "progress.delta", &msg)
	pubSpan.End()
	require.NotEmpty(t, msg.Headers["traceparent"])

	_, consumeSpan := StartConsumeSpan(context.Background(), "progress.delta", amqp.Delivery{Headers: msg.Headers})
	defer consumeSpan.End()

	require.Equal(t,
		trace.SpanContextFromContext(pubCtx).TraceID(),
		consumeSpan.SpanContext().TraceID(),
	)
}

func TestHeaderCarrier(t *testing.T) {
	c := &MessageHeaderCarrier{}
	c.Set("k", "v")
	require.Equal(t, "v", c.Get("k"))
	require.Equal(t, "", c.Get("missing"))
	require.Equal(t, []string{"k"}, c.Keys())
}
