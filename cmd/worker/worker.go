package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"WayToEarth/config"
	"WayToEarth/internal/queue"
	"WayToEarth/internal/service"
	"WayToEarth/pkg/logger"
	"WayToEarth/pkg/otel"
	"WayToEarth/pkg/snowflake"
	"WayToEarth/storage"
)

func main() {
	logger.Init("worker")
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Logger.Info("Received shutdown signal",
			zap.String("signal", sig.String()),
		)
		cancel()
	}()

	shutdownOTel, err := otel.Setup(ctx, "worker")
	if err != nil {
		logger.Logger.Fatal("Failed to initialize OpenTelemetry", zap.Error(err))
	}
	defer func() { _ = shutdownOTel(context.Background()) }()

	if err := storage.Init(); err != nil {
		logger.Logger.Fatal("Failed to initialize storage", zap.Error(err))
	}
	defer storage.Close()

	if err := snowflake.Init(config.Cfg.SnowflakeMachineID, config.Cfg.SnowflakeDataCenter); err != nil {
		logger.Logger.Fatal("Failed to initialize snowflake", zap.Error(err))
	}

	// 服务单例创建前设置，完成和发放事件都从这里发出
	service.SetNotifier(queue.NewEventNotifier())

	logger.Logger.Info("Worker service starting",
		zap.String("service", "waytoearth-worker"),
		zap.String("environment", config.Cfg.Environment),
	)

	queue.StartAllConsumers(ctx)

	logger.Logger.Info("Worker service shutting down gracefully")
}
