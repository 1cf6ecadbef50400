package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithContextAddsTraceFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	prev := Logger
	Logger = zap.New(core)
	t.Cleanup(func() { Logger = prev })

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	WithContext(ctx).Info("traced")
	WithContext(context.Background()).Info("plain")

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", entries[0].ContextMap()["trace_id"])
	require.Equal(t, "00f067aa0ba902b7", entries[0].ContextMap()["span_id"])
	require.NotContains(t, entries[1].ContextMap(), "trace_id")
}

func TestParseZapLevel(t *testing.T) {
	require.Equal(t, zap.DebugLevel, parseZapLevel("debug"))
	require.Equal(t, zap.WarnLevel, parseZapLevel("WARN"))
	require.Equal(t, zap.InfoLevel, parseZapLevel("verbose"))
}
