package mq

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"WayToEarth/pkg/errors"
	"WayToEarth/pkg/logger"
	mqotel "WayToEarth/pkg/mq"
)

type MessageHandler func(ctx context.Context, body []byte) error

type ConsumeOptions struct {
	Queue         string
	ConsumerTag   string
	PrefetchCount int
	Handler       MessageHandler
}

// Consume 阻塞消费直到 ctx 取消或 channel 关闭
// handler 返回 SkipMessageError 时直接 ack，其余错误 nack 并重新入队
func Consume(ctx context.Context, opts ConsumeOptions) error {
	conn := Connection()
	if conn == nil {
		return fmt.Errorf("RabbitMQ connection is nil")
	}

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if opts.PrefetchCount > 0 {
		if err := ch.Qos(opts.PrefetchCount, 0, false); err != nil {
			return fmt.Errorf("failed to set QoS: %w", err)
		}
	}

	msgs, err := ch.Consume(
		opts.Queue,
		opts.ConsumerTag,
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	logger.Logger.Info("Started consuming messages",
		zap.String("queue", opts.Queue),
		zap.String("consumer_tag", opts.ConsumerTag),
		zap.Int("prefetch_count", opts.PrefetchCount),
	)

	for {
		select {
		case <-ctx.Done():
			logger.Logger.Info("Consumer stopped", zap.String("queue", opts.Queue))
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return fmt.Errorf("delivery channel closed for queue %s", opts.Queue)
			}

			start := time.Now()
			msgCtx, span := mqotel.StartConsumeSpan(ctx, opts.Queue, msg)
			err := opts.Handler(msgCtx, msg.Body)
			if err == nil {
				mqotel.EndSpan(msgCtx, span, "consume", "success", start, nil)
				_ = msg.Ack(false)
				continue
			}

			var skip *errors.SkipMessageError
			if stderrors.As(err, &skip) {
				mqotel.EndSpan(msgCtx, span, "consume", "skipped", start, err)
				logger.Logger.Info("Message skipped",
					zap.String("queue", opts.Queue),
					zap.String("reason", skip.Reason),
				)
				_ = msg.Ack(false)
				continue
			}

			mqotel.EndSpan(msgCtx, span, "consume", "error", start, err)
			logger.Logger.Error("Failed to process message",
				zap.String("queue", opts.Queue),
				zap.String("consumer_tag", opts.ConsumerTag),
				zap.Error(err),
			)
			_ = msg.Nack(false, true)
		}
	}
}
