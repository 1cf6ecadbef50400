package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"WayToEarth/config"
	"WayToEarth/internal/queue"
	"WayToEarth/internal/schedule"
	"WayToEarth/internal/service"
	"WayToEarth/pkg/logger"
	"WayToEarth/pkg/otel"
	"WayToEarth/pkg/snowflake"
	"WayToEarth/storage"
)

func main() {
	logger.Init("scheduler")
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Logger.Info("Scheduler received shutdown signal",
			zap.String("signal", sig.String()),
		)
		cancel()
	}()

	shutdownOTel, err := otel.Setup(ctx, "scheduler")
	if err != nil {
		logger.Logger.Fatal("Failed to initialize OpenTelemetry", zap.Error(err))
	}
	defer func() { _ = shutdownOTel(context.Background()) }()

	if err := storage.Init(); err != nil {
		logger.Logger.Fatal("Failed to initialize storage for scheduler", zap.Error(err))
	}
	defer storage.Close()

	// 与 server / worker 使用不同的 machineID
	if err := snowflake.Init(config.Cfg.SnowflakeMachineID, config.Cfg.SnowflakeDataCenter); err != nil {
		logger.Logger.Fatal("Failed to initialize snowflake for scheduler", zap.Error(err))
	}

	// 全量扫描发放的徽章同样要发出 emblem_granted 事件
	service.SetNotifier(queue.NewEventNotifier())

	logger.Logger.Info("Scheduler service starting",
		zap.String("service", "waytoearth-scheduler"),
		zap.String("environment", config.Cfg.Environment),
	)

	sweeper := schedule.GetSweeper()

	go runLoop(ctx, "fingerprint_sweep", config.Cfg.DedupSweepInterval, 5*time.Minute, func(c context.Context) error {
		_, err := sweeper.PurgeFingerprints(c)
		return err
	})
	go runLoop(ctx, "emblem_sweep", config.Cfg.EmblemSweepInterval, 30*time.Minute, func(c context.Context) error {
		_, err := sweeper.SweepEmblems(c)
		return err
	})

	<-ctx.Done()

	logger.Logger.Info("Scheduler service shutting down gracefully")
}

// runLoop 按固定间隔执行任务，每次执行有独立超时
func runLoop(ctx context.Context, name string, interval, timeout time.Duration, job func(context.Context) error) {
	if config.Cfg.IsDevelopment() {
		interval = time.Minute
		logger.Logger.Info("Scheduler loop running in development mode with 1m interval", zap.String("job", name))
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runCtx, cancel := context.WithTimeout(ctx, timeout)
			if err := job(runCtx); err != nil {
				logger.Logger.Error("Scheduler job run failed", zap.String("job", name), zap.Error(err))
			}
			cancel()
		}
	}
}
