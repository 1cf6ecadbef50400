package schedule

// 定时清理：过期的进度指纹和全量徽章补发
// 多个 scheduler 实例时由 redis 锁保证同一时刻只有一个实例执行

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"WayToEarth/config"
	"WayToEarth/internal/cache"
	"WayToEarth/internal/service"
	"WayToEarth/pkg/logger"
	"WayToEarth/pkg/snowflake"
)

const (
	fingerprintLockKey = "sweep:fingerprints"
	emblemLockKey      = "sweep:emblems"
)

type fingerprintPurger interface {
	PurgeExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

type emblemSweeper interface {
	SweepAll(ctx context.Context) (int64, error)
}

type lockFuncs struct {
	tryLock func(ctx context.Context, key, owner string, ttl time.Duration) (bool, error)
	unlock  func(ctx context.Context, key, owner string) error
}

var (
	sweeperOnce sync.Once
	sweeperInst *Sweeper
)

// Sweeper 进程内用 running 标记防重入，跨进程用 redis 锁
type Sweeper struct {
	logger    *zap.Logger
	purger    fingerprintPurger
	emblems   emblemSweeper
	locks     lockFuncs
	owner     string
	retention time.Duration
	now       func() time.Time

	mu      sync.Mutex
	running map[string]bool
}

// GetSweeper 获取调度器单例
func GetSweeper() *Sweeper {
	sweeperOnce.Do(func() {
		sweeperInst = newSweeper(service.Dedup(), service.Emblem(), lockFuncs{
			tryLock: cache.TryLock,
			unlock:  cache.Unlock,
		}, config.Cfg.DedupRetention)
	})
	return sweeperInst
}

func newSweeper(purger fingerprintPurger, emblems emblemSweeper, locks lockFuncs, retention time.Duration) *Sweeper {
	owner := "scheduler"
	if id, err := snowflake.Tagged(owner); err == nil {
		owner = id
	}
	return &Sweeper{
		logger:    logger.Logger,
		purger:    purger,
		emblems:   emblems,
		locks:     locks,
		owner:     owner,
		retention: retention,
		now:       func() time.Time { return time.Now().UTC() },
		running:   make(map[string]bool),
	}
}

// PurgeFingerprints 删除创建时间早于 now - retention 的指纹
func (s *Sweeper) PurgeFingerprints(ctx context.Context) (int64, error) {
	var deleted int64
	err := s.exclusive(ctx, fingerprintLockKey, 10*time.Minute, func() error {
		cutoff := s.now().Add(-s.retention)
		n, err := s.purger.PurgeExpired(ctx, cutoff)
		deleted = n
		return err
	})
	return deleted, err
}

// SweepEmblems 对全部用户执行一次全目录徽章扫描
func (s *Sweeper) SweepEmblems(ctx context.Context) (int64, error) {
	var granted int64
	err := s.exclusive(ctx, emblemLockKey, time.Hour, func() error {
		n, err := s.emblems.SweepAll(ctx)
		granted = n
		return err
	})
	return granted, err
}

func (s *Sweeper) exclusive(ctx context.Context, key string, ttl time.Duration, job func() error) error {
	s.mu.Lock()
	if s.running[key] {
		s.mu.Unlock()
		s.logger.Info("Sweep job already running, skipping", zap.String("job", key))
		return nil
	}
	s.running[key] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running[key] = false
		s.mu.Unlock()
	}()

	locked, err := s.locks.tryLock(ctx, key, s.owner, ttl)
	if err != nil {
		return err
	}
	if !locked {
		s.logger.Info("Sweep job held by another instance, skipping", zap.String("job", key))
		return nil
	}
	defer func() {
		// ctx 可能已取消，释放锁用独立的短超时
		releaseCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := s.locks.unlock(releaseCtx, key, s.owner); err != nil {
			s.logger.Warn("Failed to release sweep lock", zap.String("job", key), zap.Error(err))
		}
	}()

	start := time.Now()
	err = job()
	s.logger.Info("Sweep job finished",
		zap.String("job", key),
		zap.Duration("elapsed", time.Since(start)),
		zap.Error(err),
	)
	return err
}
