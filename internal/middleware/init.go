package middleware

import (
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"WayToEarth/pkg/logger"
)

// Init 初始化中间件依赖的指标，OTel 未开启时使用全局 noop meter
func Init() error {
	if err := InitMetrics(otel.Meter("waytoearth")); err != nil {
		logger.Logger.Error("Failed to initialize HTTP metrics", zap.Error(err))
		return err
	}

	logger.Logger.Info("All middlewares initialized successfully")
	return nil
}
