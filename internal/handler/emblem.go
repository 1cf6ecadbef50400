package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"WayToEarth/internal/model/dto"
	"WayToEarth/internal/service"
	"WayToEarth/pkg/response"
)

// AwardEmblem 尝试发放单个徽章
// POST /v1/emblems/:emblem_id/award
func AwardEmblem(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}
	emblemID, ok := pathID(ctx, c, "emblem_id")
	if !ok {
		return
	}

	granted, err := service.Emblem().AwardIfEligible(ctx, userID, emblemID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, dto.AwardResult{EmblemID: emblemID, Granted: granted})
}

// ScanEmblems 按条件类型扫描并发放
// POST /v1/emblems/scan
func ScanEmblems(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	var req dto.ScanRequest
	if len(c.Request.Body()) > 0 {
		if err := c.BindAndValidate(&req); err != nil {
			response.BindError(ctx, c, err)
			return
		}
	}

	result, err := service.Emblem().ScanAndAward(ctx, userID, req.Scope)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, result)
}

// GetEmblemSummary 拥有数、目录总数和完成率
// GET /v1/emblems/summary
func GetEmblemSummary(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	summary, err := service.Emblem().Summary(ctx, userID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, summary)
}
