package middleware

import (
	"context"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"

	"WayToEarth/pkg/errors"
	"WayToEarth/pkg/response"
)

const (
	// UserIDHeader 由上游鉴权网关写入
	UserIDHeader = "X-User-ID"
	IdentityKey  = "user_id"
)

// AuthMiddleware 只信任网关注入的用户 id，不做 token 校验
func AuthMiddleware() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		raw := string(c.GetHeader(UserIDHeader))
		userID, err := strconv.ParseInt(raw, 10, 64)
		if raw == "" || err != nil || userID <= 0 {
			response.Error(ctx, c, errors.Unauthorized)
			c.Abort()
			return
		}

		c.Set(IdentityKey, userID)
		c.Next(ctx)
	}
}

// GetUserID 从请求上下文中获取用户ID
func GetUserID(ctx context.Context, c *app.RequestContext) (int64, bool) {
	userID, exists := c.Get(IdentityKey)
	if !exists {
		return 0, false
	}

	id, ok := userID.(int64)
	if !ok {
		return 0, false
	}

	return id, true
}
