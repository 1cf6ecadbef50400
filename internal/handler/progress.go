package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"WayToEarth/internal/model"
	"WayToEarth/internal/model/dto"
	"WayToEarth/internal/queue"
	"WayToEarth/internal/service"
	"WayToEarth/pkg/errors"
	"WayToEarth/pkg/response"
)

// Enroll 报名课程或旅程，重复报名返回已有记录
// POST /v1/enrollments
func Enroll(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	var req dto.EnrollRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	enrollment, err := service.Progress().Enroll(ctx, userID, req.CourseID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	snapshot, err := service.Progress().GetSnapshot(ctx, userID, enrollment.ID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, snapshot)
}

// GetEnrollment 查询进度快照
// GET /v1/enrollments/:enrollment_id
func GetEnrollment(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}
	enrollmentID, ok := pathID(ctx, c, "enrollment_id")
	if !ok {
		return
	}

	snapshot, err := service.Progress().GetSnapshot(ctx, userID, enrollmentID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, snapshot)
}

// ApplyProgress 同步写入一次距离增量
// POST /v1/enrollments/:enrollment_id/progress
func ApplyProgress(ctx context.Context, c *app.RequestContext) {
	in, ok := bindProgress(ctx, c)
	if !ok {
		return
	}

	snapshot, err := service.Progress().ApplyProgress(ctx, in)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, snapshot)
}

// ApplyProgressAsync 增量入队，由 worker 写入账本
// POST /v1/enrollments/:enrollment_id/progress/async
func ApplyProgressAsync(ctx context.Context, c *app.RequestContext) {
	in, ok := bindProgress(ctx, c)
	if !ok {
		return
	}
	// 入队前做同样的参数校验，避免必然失败的消息进入队列
	if err := service.ValidateDelta(in); err != nil {
		response.Error(ctx, c, err)
		return
	}

	messageID, err := queue.PublishProgressDelta(ctx, model.ProgressDeltaMessage{
		SessionID:    in.SessionID,
		UserID:       in.UserID,
		EnrollmentID: in.EnrollmentID,
		SegmentID:    in.SegmentID,
		DistanceKm:   in.DistanceKm,
	})
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Accepted(ctx, c, dto.ProgressAccepted{
		MessageID:    messageID,
		EnrollmentID: in.EnrollmentID,
	})
}

func bindProgress(ctx context.Context, c *app.RequestContext) (service.ApplyProgressInput, bool) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return service.ApplyProgressInput{}, false
	}
	enrollmentID, ok := pathID(ctx, c, "enrollment_id")
	if !ok {
		return service.ApplyProgressInput{}, false
	}

	var req dto.ApplyProgressRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return service.ApplyProgressInput{}, false
	}

	return service.ApplyProgressInput{
		SessionID:    req.SessionID,
		UserID:       userID,
		EnrollmentID: enrollmentID,
		SegmentID:    req.SegmentID,
		DistanceKm:   req.DistanceKm,
	}, true
}

// PauseEnrollment 暂停旅程
// POST /v1/enrollments/:enrollment_id/pause
func PauseEnrollment(ctx context.Context, c *app.RequestContext) {
	transition(ctx, c, service.Progress().Pause)
}

// ResumeEnrollment 恢复旅程
// POST /v1/enrollments/:enrollment_id/resume
func ResumeEnrollment(ctx context.Context, c *app.RequestContext) {
	transition(ctx, c, service.Progress().Resume)
}

func transition(ctx context.Context, c *app.RequestContext, fn func(context.Context, int64, int64) (*dto.ProgressSnapshot, error)) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}
	enrollmentID, ok := pathID(ctx, c, "enrollment_id")
	if !ok {
		return
	}

	snapshot, err := fn(ctx, userID, enrollmentID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, snapshot)
}

// CollectStamp 领取地标印章
// POST /v1/enrollments/:enrollment_id/stamps
func CollectStamp(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}
	enrollmentID, ok := pathID(ctx, c, "enrollment_id")
	if !ok {
		return
	}

	var req dto.CollectStampRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}
	if req.LandmarkID <= 0 {
		response.Error(ctx, c, errors.InvalidID)
		return
	}

	result, err := service.Progress().CollectStamp(ctx, userID, enrollmentID, req.LandmarkID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, result)
}
