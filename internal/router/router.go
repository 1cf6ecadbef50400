package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"WayToEarth/internal/handler"
	"WayToEarth/internal/middleware"
)

func Register(h *server.Hertz) {
	h.Use(middleware.RecoverMiddleware())
	h.Use(middleware.CORSMiddleware())
	h.Use(middleware.MetricsMiddleware())

	v1 := h.Group("/v1")
	v1.Use(middleware.AuthMiddleware()) // 用户 id 由网关注入

	// 报名与进度账本
	enrollments := v1.Group("/enrollments")
	{
		enrollments.POST("", handler.Enroll)
		enrollments.GET("/:enrollment_id", handler.GetEnrollment)
		enrollments.POST("/:enrollment_id/progress", middleware.ProgressRateLimitMiddleware(), handler.ApplyProgress)
		enrollments.POST("/:enrollment_id/progress/async", middleware.ProgressRateLimitMiddleware(), handler.ApplyProgressAsync)
		enrollments.POST("/:enrollment_id/pause", handler.PauseEnrollment)
		enrollments.POST("/:enrollment_id/resume", handler.ResumeEnrollment)
		enrollments.POST("/:enrollment_id/stamps", handler.CollectStamp)
	}

	// 跑步会话与配速教练
	running := v1.Group("/running")
	{
		running.POST("/sessions", handler.StartSession)
		running.POST("/sessions/:session_id/complete", handler.CompleteSession)
		running.GET("/pace-check", handler.CheckPace)
	}

	// 徽章
	emblems := v1.Group("/emblems")
	{
		emblems.POST("/scan", handler.ScanEmblems)
		emblems.GET("/summary", handler.GetEmblemSummary)
		emblems.POST("/:emblem_id/award", handler.AwardEmblem)
	}
}
