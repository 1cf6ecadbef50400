package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"WayToEarth/internal/model/dto"
	"WayToEarth/internal/service"
	"WayToEarth/pkg/response"
)

// StartSession 开始跑步
// POST /v1/running/sessions
func StartSession(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	record, err := service.Running().StartSession(ctx, userID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, record)
}

// CompleteSession 结束跑步
// POST /v1/running/sessions/:session_id/complete
func CompleteSession(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	var req dto.CompleteSessionRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	record, granted, err := service.Running().CompleteSession(ctx, userID, c.Param("session_id"), req.DistanceKm, req.DurationSec)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	if granted == nil {
		granted = []int64{}
	}
	response.Success(ctx, c, dto.CompleteSessionResult{
		Record:           record,
		GrantedEmblemIDs: granted,
	})
}

// CheckPace 配速教练，历史不足时 is_available 为 false
// GET /v1/running/pace-check
func CheckPace(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	var query dto.PaceCheckQuery
	if err := c.BindAndValidate(&query); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	decision, err := service.Pace().CheckPace(ctx, userID, query.CurrentKm, query.CurrentPace)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, decision)
}
