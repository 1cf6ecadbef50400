package mq

import (
	"context"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"WayToEarth/config"
)

const (
	// ExchangeProgress 进度上报入口，topic 类型
	ExchangeProgress = "progress"
	// ExchangeEvents 对外的通知事件出口，由外部分发方绑定队列
	ExchangeEvents = "events"

	QueueProgressDelta = "progress.delta"
	RoutingProgressKey = "progress.delta"
)

var (
	conn     *amqp.Connection
	connOnce sync.Once
	connErr  error
)

func Init() error {
	connOnce.Do(func() {
		conn, connErr = amqp.Dial(config.Cfg.GetRabbitMQURL())
		if connErr != nil {
			return
		}
		connErr = declareTopology()
	})

	return connErr
}

// declareTopology 声明交换机和队列，重复声明是幂等的
func declareTopology() error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	for _, exchange := range []string{ExchangeProgress, ExchangeEvents} {
		if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
			return fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
		}
	}

	if _, err := ch.QueueDeclare(QueueProgressDelta, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", QueueProgressDelta, err)
	}
	if err := ch.QueueBind(QueueProgressDelta, RoutingProgressKey, ExchangeProgress, false, nil); err != nil {
		return fmt.Errorf("failed to bind queue %s: %w", QueueProgressDelta, err)
	}

	return nil
}

func Connection() *amqp.Connection {
	return conn
}

func Close(ctx context.Context) error {
	pubMutex.Lock()
	if publisherCh != nil && !publisherCh.IsClosed() {
		_ = publisherCh.Close()
	}
	publisherCh = nil
	pubMutex.Unlock()

	if conn == nil || conn.IsClosed() {
		return nil
	}

	done := make(chan error, 1)
	go func() {
		done <- conn.Close()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}
