package otel

import (
	"context"

	"go.opentelemetry.io/otel"

	"WayToEarth/config"
	"WayToEarth/pkg/metrics"
	mqotel "WayToEarth/pkg/mq"
	redisotel "WayToEarth/pkg/redis"
)

// Setup 按配置初始化追踪和指标，未开启时返回空的关闭函数
func Setup(ctx context.Context, component string) (func(context.Context) error, error) {
	if !config.Cfg.OTelEnabled {
		return func(context.Context) error { return nil }, nil
	}

	shutdown, err := InitOpenTelemetry(ctx, Config{
		ServiceName:    config.Cfg.ServiceName + "-" + component,
		ServiceVersion: "1.0.0",
		Environment:    config.Cfg.Environment,
		OTLPEndpoint:   config.Cfg.OTelEndpoint,
		SampleRatio:    config.Cfg.OTelSampleRatio,
	})
	if err != nil {
		return nil, err
	}

	meter := otel.Meter("waytoearth")
	if err := metrics.InitMetrics(); err != nil {
		_ = shutdown(ctx)
		return nil, err
	}
	if err := mqotel.InitMQMetrics(meter); err != nil {
		_ = shutdown(ctx)
		return nil, err
	}
	if err := redisotel.InitRedisMetrics(meter); err != nil {
		_ = shutdown(ctx)
		return nil, err
	}
	return shutdown, nil
}
