package queue

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"WayToEarth/internal/model"
	"WayToEarth/pkg/logger"
	"WayToEarth/pkg/snowflake"
	"WayToEarth/storage/mq"
)

// publishFunc 便于测试替换底层发布
type publishFunc func(ctx context.Context, exchange, routingKey string, body interface{}) error

// EventNotifier 把通知事件发到 events 交换机，路由键为 events.<event_type>
type EventNotifier struct {
	publish publishFunc
}

func NewEventNotifier() *EventNotifier {
	return &EventNotifier{publish: mq.PublishMessage}
}

func (n *EventNotifier) Notify(ctx context.Context, event model.EventMessage) error {
	if event.MessageID == "" {
		id, err := nextMessageID("evt")
		if err != nil {
			return err
		}
		event.MessageID = id
	}
	if event.OccurredAt == "" {
		event.OccurredAt = time.Now().UTC().Format(time.RFC3339)
	}

	routingKey := "events." + string(event.EventType)
	if err := n.publish(ctx, mq.ExchangeEvents, routingKey, event); err != nil {
		logger.Logger.Error("Failed to publish event",
			zap.String("message_id", event.MessageID),
			zap.String("event_type", string(event.EventType)),
			zap.Int64("user_id", event.UserID),
			zap.Error(err),
		)
		return err
	}

	logger.Logger.Debug("Published event",
		zap.String("message_id", event.MessageID),
		zap.String("routing_key", routingKey),
	)
	return nil
}

// PublishProgressDelta 异步上报入口，由 worker 消费后写入账本，返回消息 id
func PublishProgressDelta(ctx context.Context, msg model.ProgressDeltaMessage) (string, error) {
	return publishProgressDelta(ctx, mq.PublishMessage, msg)
}

func publishProgressDelta(ctx context.Context, publish publishFunc, msg model.ProgressDeltaMessage) (string, error) {
	if msg.MessageID == "" {
		id, err := nextMessageID("delta")
		if err != nil {
			return "", err
		}
		msg.MessageID = id
	}
	if msg.ReportedAt == "" {
		msg.ReportedAt = time.Now().UTC().Format(time.RFC3339)
	}

	if err := publish(ctx, mq.ExchangeProgress, mq.RoutingProgressKey, msg); err != nil {
		logger.Logger.Error("Failed to publish progress delta",
			zap.String("message_id", msg.MessageID),
			zap.Int64("enrollment_id", msg.EnrollmentID),
			zap.Error(err),
		)
		return "", err
	}
	return msg.MessageID, nil
}

func nextMessageID(prefix string) (string, error) {
	id, err := snowflake.Tagged(prefix)
	if err != nil {
		logger.Logger.Error("Failed to generate message ID", zap.Error(err))
		return "", fmt.Errorf("failed to generate message ID: %w", err)
	}
	return id, nil
}
