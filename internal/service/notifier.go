package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"WayToEarth/internal/model"
	"WayToEarth/pkg/logger"
)

// Notifier 对外通知分发方的窄接口，核心只负责产生事件
type Notifier interface {
	Notify(ctx context.Context, event model.EventMessage) error
}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, model.EventMessage) error { return nil }

var (
	notifier   Notifier = nopNotifier{}
	notifierMu sync.RWMutex
)

// SetNotifier 在进程启动时注入（worker/server 注入 MQ 实现）
func SetNotifier(n Notifier) {
	notifierMu.Lock()
	defer notifierMu.Unlock()
	if n == nil {
		n = nopNotifier{}
	}
	notifier = n
}

func currentNotifier() Notifier {
	notifierMu.RLock()
	defer notifierMu.RUnlock()
	return notifier
}

// emit 通知失败只记录日志，不影响已提交的账本写入
// n 为 nil 时在发送时刻取进程级 notifier，单例先于 SetNotifier 创建也能发出去
func emit(ctx context.Context, n Notifier, event model.EventMessage) {
	if n == nil {
		n = currentNotifier()
	}
	if err := n.Notify(ctx, event); err != nil {
		logger.Logger.Warn("Failed to emit notification event",
			zap.String("event_type", string(event.EventType)),
			zap.Int64("user_id", event.UserID),
			zap.Error(err),
		)
	}
}
