package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/config"
	"go.uber.org/zap"

	appconfig "WayToEarth/config"
	"WayToEarth/internal/middleware"
	"WayToEarth/internal/queue"
	"WayToEarth/internal/router"
	"WayToEarth/internal/service"
	"WayToEarth/pkg/logger"
	"WayToEarth/pkg/otel"
	"WayToEarth/pkg/snowflake"
	"WayToEarth/storage"
)

func main() {
	logger.Init("server")
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

	shutdownOTel, err := otel.Setup(ctx, "server")
	if err != nil {
		logger.Logger.Fatal("Failed to initialize OpenTelemetry", zap.Error(err))
	}
	defer func() { _ = shutdownOTel(context.Background()) }()

	// 初始化存储层，记得关闭外部连接
	if err := storage.Init(); err != nil {
		logger.Logger.Fatal("Failed to initialize storage", zap.Error(err))
	}
	defer storage.Close()

	if err := snowflake.Init(appconfig.Cfg.SnowflakeMachineID, appconfig.Cfg.SnowflakeDataCenter); err != nil {
		logger.Logger.Fatal("Failed to initialize snowflake", zap.Error(err))
	}

	// 同步上报路径上的完成事件也需要发出
	service.SetNotifier(queue.NewEventNotifier())

	if err := middleware.Init(); err != nil {
		logger.Logger.Fatal("Failed to initialize middlewares", zap.Error(err))
	}

	logger.Logger.Info("Server starting",
		zap.String("service", appconfig.Cfg.ServiceName),
		zap.String("port", appconfig.Cfg.ServerPort),
		zap.String("environment", appconfig.Cfg.Environment),
	)

	addr := net.JoinHostPort(appconfig.Cfg.ServerHost, appconfig.Cfg.ServerPort)
	opts := []config.Option{server.WithHostPorts(addr)}

	// tracing 中间件必须先于 router 注册
	var tracingMW app.HandlerFunc
	if appconfig.Cfg.OTelEnabled {
		var tracer config.Option
		tracer, tracingMW = middleware.NewServerTracerConfig()
		opts = append(opts, tracer)
	}

	h := server.Default(opts...)
	if tracingMW != nil {
		h.Use(tracingMW)
	}

	router.Register(h)

	// 优雅关闭：在单独的 goroutine 中监听关闭信号并调用 Shutdown
	go func() {
		<-ctx.Done()
		logger.Logger.Info("Initiating graceful shutdown...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := h.Shutdown(shutdownCtx); err != nil {
			logger.Logger.Error("Failed to shutdown HTTP server", zap.Error(err))
		}
	}()

	logger.Logger.Info("HTTP server listening", zap.String("addr", addr))

	h.Spin()

	logger.Logger.Info("Server shutting down gracefully")
}
