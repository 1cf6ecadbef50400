package storage

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"WayToEarth/pkg/logger"
	"WayToEarth/storage/database"
	"WayToEarth/storage/mq"
	"WayToEarth/storage/redis"
)

const closeTimeout = 15 * time.Second

type closer struct {
	name  string
	close func(context.Context) error
}

// Close 与 Init 逆序关闭：先断开 MQ 不再投递进度消息，数据库最后关闭，保证已受理的账本事务提交完成
func Close() {
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	if err := closeAll(ctx, []closer{
		{name: "mq", close: mq.Close},
		{name: "redis", close: redis.Close},
		{name: "database", close: database.Close},
	}); err != nil {
		logger.Logger.Error("Storage closed with errors", zap.Error(err))
		return
	}
	logger.Logger.Info("All storage connections closed")
}

// closeAll 单个连接关闭失败不影响后续关闭
func closeAll(ctx context.Context, closers []closer) error {
	var errs []error
	for _, c := range closers {
		if err := c.close(ctx); err != nil {
			logger.Logger.Warn("Failed to close storage connection",
				zap.String("storage", c.name),
				zap.Error(err),
			)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
