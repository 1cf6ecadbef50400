package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"WayToEarth/internal/cache"
	"WayToEarth/internal/model"
	"WayToEarth/internal/model/dto"
	"WayToEarth/internal/service"
	"WayToEarth/pkg/errors"
	"WayToEarth/pkg/logger"
	"WayToEarth/storage/mq"
)

// progressApplier 消费者只依赖账本写入
type progressApplier interface {
	ApplyProgress(ctx context.Context, in service.ApplyProgressInput) (*dto.ProgressSnapshot, error)
}

// messageMarks broker 重投递过滤，默认实现基于 redis SETNX
type messageMarks struct {
	tryMark    func(ctx context.Context, messageID string, ttl time.Duration) (bool, error)
	unmark     func(ctx context.Context, messageID string) error
	markDone   func(ctx context.Context, messageID string, ttl time.Duration) error
	processing time.Duration
	processed  time.Duration
}

func redisMarks() messageMarks {
	return messageMarks{
		tryMark:    cache.TryMarkMessageProcessing,
		unmark:     cache.UnmarkMessageProcessing,
		markDone:   cache.MarkMessageProcessed,
		processing: 10 * time.Minute,
		processed:  48 * time.Hour,
	}
}

// newProgressDeltaHandler 业务错误（校验、不存在）不会因重试而改变，转成 SkipMessageError 直接 ack；
// 冲突和存储错误取消标记后 nack 重新入队
func newProgressDeltaHandler(applier progressApplier, marks messageMarks) mq.MessageHandler {
	return func(ctx context.Context, body []byte) error {
		log := logger.WithContext(ctx)

		var msg model.ProgressDeltaMessage
		if err := json.Unmarshal(body, &msg); err != nil {
			return &errors.SkipMessageError{Reason: fmt.Sprintf("malformed progress delta: %v", err)}
		}

		if msg.MessageID != "" {
			first, err := marks.tryMark(ctx, msg.MessageID, marks.processing)
			if err != nil {
				// redis 不可用时继续处理，账本自己的指纹去重兜底
				log.Warn("Failed to check message processed status",
					zap.String("message_id", msg.MessageID),
					zap.Error(err),
				)
			} else if !first {
				return &errors.SkipMessageError{Reason: fmt.Sprintf("message %s already processed", msg.MessageID)}
			}
		}

		snapshot, err := applier.ApplyProgress(ctx, service.ApplyProgressInput{
			SessionID:    msg.SessionID,
			UserID:       msg.UserID,
			EnrollmentID: msg.EnrollmentID,
			SegmentID:    msg.SegmentID,
			DistanceKm:   msg.DistanceKm,
		})
		if err != nil {
			if def, ok := errors.IsDefinition(err); ok && def.Code != errors.ProgressConflict.Code {
				log.Warn("Progress delta rejected",
					zap.String("message_id", msg.MessageID),
					zap.String("code", def.Code),
				)
				return &errors.SkipMessageError{Reason: def.Code}
			}

			if msg.MessageID != "" {
				if unmarkErr := marks.unmark(ctx, msg.MessageID); unmarkErr != nil {
					log.Warn("Failed to unmark message",
						zap.String("message_id", msg.MessageID),
						zap.Error(unmarkErr),
					)
				}
			}
			return fmt.Errorf("failed to apply progress delta: %w", err)
		}

		if msg.MessageID != "" {
			if err := marks.markDone(ctx, msg.MessageID, marks.processed); err != nil {
				log.Warn("Failed to mark message as processed",
					zap.String("message_id", msg.MessageID),
					zap.Error(err),
				)
			}
		}

		log.Debug("Progress delta applied",
			zap.String("message_id", msg.MessageID),
			zap.Int64("enrollment_id", msg.EnrollmentID),
			zap.Float64("accumulated_km", snapshot.AccumulatedKm),
			zap.Bool("duplicate", snapshot.Duplicate),
		)
		return nil
	}
}

// StartProgressDeltaConsumer 启动进度上报消费者
func StartProgressDeltaConsumer(ctx context.Context) error {
	return mq.Consume(ctx, mq.ConsumeOptions{
		Queue:         mq.QueueProgressDelta,
		ConsumerTag:   "progress_delta_consumer",
		PrefetchCount: 20,
		Handler:       newProgressDeltaHandler(service.Progress(), redisMarks()),
	})
}

// StartAllConsumers 启动所有消费者，阻塞直到全部退出
func StartAllConsumers(ctx context.Context) {
	var wg sync.WaitGroup

	consumers := []struct {
		name     string
		consumer func(context.Context) error
	}{
		{"progress_delta", StartProgressDeltaConsumer},
	}

	for _, c := range consumers {
		wg.Add(1)
		go func(name string, consumer func(context.Context) error) {
			defer wg.Done()

			logger.Logger.Info("Starting consumer",
				zap.String("consumer_name", name),
			)

			if err := consumer(ctx); err != nil {
				logger.Logger.Error("Consumer exited with error",
					zap.String("consumer_name", name),
					zap.Error(err),
				)
			}
		}(c.name, c.consumer)
	}

	wg.Wait()

	logger.Logger.Info("All consumers stopped")
}
