package middleware

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	redislib "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"WayToEarth/pkg/errors"
	"WayToEarth/pkg/logger"
	"WayToEarth/pkg/response"
	"WayToEarth/storage/redis"
)

// RateLimitConfig 限流配置
type RateLimitConfig struct {
	// 时间窗口
	Window time.Duration
	// 时间窗口内最大请求数
	MaxRequests int
	// 限流键前缀
	KeyPrefix string
}

// ProgressRateLimitConfig 进度上报限流，GPS 心跳正常 1~2 秒一次
var ProgressRateLimitConfig = RateLimitConfig{
	Window:      10 * time.Second,
	MaxRequests: 20,
	KeyPrefix:   "rate:progress",
}

// RateLimiter 滑动窗口限流器
type RateLimiter struct {
	config RateLimitConfig
	now    func() time.Time
}

func NewRateLimiter(config RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		config: config,
		now:    time.Now,
	}
}

// getKey 已鉴权路由按用户限流，否则按 IP
func (rl *RateLimiter) getKey(ctx context.Context, c *app.RequestContext) string {
	if userID, exists := GetUserID(ctx, c); exists {
		return redis.Key(rl.config.KeyPrefix, "user", strconv.FormatInt(userID, 10))
	}
	return redis.Key(rl.config.KeyPrefix, "ip", c.ClientIP())
}

// Allow 用 zset 实现滑动窗口，返回是否放行和窗口内请求数
func (rl *RateLimiter) Allow(ctx context.Context, key string) (bool, int, error) {
	now := rl.now()
	windowStart := now.Add(-rl.config.Window)

	pipe := redis.Client().Pipeline()

	// 先移除窗口外的请求记录
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart.UnixNano(), 10))
	pipe.ZAdd(ctx, key, redislib.Z{
		Score:  float64(now.UnixNano()),
		Member: now.UnixNano(),
	})
	zcardCmd := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, rl.config.Window+10*time.Second)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, fmt.Errorf("failed to execute pipeline: %w", err)
	}

	count := int(zcardCmd.Val())
	return count <= rl.config.MaxRequests, count, nil
}

// RateLimitMiddleware redis 故障时放行，账本自身的去重不依赖限流
func RateLimitMiddleware(config RateLimitConfig) app.HandlerFunc {
	limiter := NewRateLimiter(config)

	return func(ctx context.Context, c *app.RequestContext) {
		allowed, count, err := limiter.Allow(ctx, limiter.getKey(ctx, c))
		if err != nil {
			logger.Logger.Warn("Failed to check rate limit", zap.Error(err))
			c.Next(ctx)
			return
		}

		remaining := config.MaxRequests - count
		if remaining < 0 {
			remaining = 0
		}
		c.Response.Header.Set("X-RateLimit-Limit", strconv.Itoa(config.MaxRequests))
		c.Response.Header.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			response.Error(ctx, c, errors.TooManyRequests)
			c.Abort()
			return
		}

		c.Next(ctx)
	}
}

// ProgressRateLimitMiddleware 进度上报限流中间件
func ProgressRateLimitMiddleware() app.HandlerFunc {
	return RateLimitMiddleware(ProgressRateLimitConfig)
}
