package handler

import (
	"context"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"

	"WayToEarth/internal/middleware"
	"WayToEarth/pkg/errors"
	"WayToEarth/pkg/response"
)

// currentUser 鉴权中间件之后一定存在，缺失时按未鉴权处理
func currentUser(ctx context.Context, c *app.RequestContext) (int64, bool) {
	userID, ok := middleware.GetUserID(ctx, c)
	if !ok {
		response.Error(ctx, c, errors.Unauthorized)
		return 0, false
	}
	return userID, true
}

func pathID(ctx context.Context, c *app.RequestContext, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Error(ctx, c, errors.InvalidID)
		return 0, false
	}
	return id, true
}
