package response

import (
	"context"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"WayToEarth/internal/model"
	"WayToEarth/pkg/errors"
	"WayToEarth/pkg/logger"
)

// RequestID 当前 span 的 trace id，未开启追踪时为空
func RequestID(ctx context.Context) string {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.HasTraceID() {
		return ""
	}
	return sc.TraceID().String()
}

func errorToHTTPStatus(err error) int {
	def, ok := errors.IsDefinition(err)
	if !ok {
		return http.StatusInternalServerError
	}

	// 根据错误码映射 HTTP 状态码
	switch def.Code {
	case errors.InvalidID.Code, errors.InvalidDistance.Code, errors.InvalidPace.Code,
		errors.InvalidScope.Code, errors.InvalidDuration.Code:
		return http.StatusBadRequest // 400
	case errors.UserNotFound.Code, errors.CourseNotFound.Code, errors.EnrollmentNotFound.Code,
		errors.SegmentNotFound.Code, errors.LandmarkNotFound.Code, errors.EmblemNotFound.Code,
		errors.SessionNotFound.Code:
		return http.StatusNotFound // 404
	case errors.ProgressConflict.Code, errors.StatusTransitionInvalid.Code,
		errors.SessionAlreadyCompleted.Code:
		return http.StatusConflict // 409
	case errors.LandmarkNotReached.Code:
		return http.StatusUnprocessableEntity // 422
	case errors.Unauthorized.Code:
		return http.StatusUnauthorized // 401
	case errors.TooManyRequests.Code:
		return http.StatusTooManyRequests // 429
	default:
		return http.StatusInternalServerError // 500
	}
}

// Error 返回错误响应，非业务错误不向客户端暴露细节
func Error(ctx context.Context, c *app.RequestContext, err error) {
	ErrorWithDetails(ctx, c, err, nil)
}

func ErrorWithDetails(ctx context.Context, c *app.RequestContext, err error, details model.ErrorDetail) {
	statusCode := errorToHTTPStatus(err)

	code, message := "INTERNAL_ERROR", "Internal server error"
	if def, ok := errors.IsDefinition(err); ok {
		code = def.Code
		message = def.Message
	} else {
		logger.Logger.Error("Unhandled error",
			zap.String("path", string(c.Path())),
			zap.String("request_id", RequestID(ctx)),
			zap.Error(err),
		)
	}

	c.JSON(statusCode, model.NewErrorResponse(code, message, details, RequestID(ctx)))
}

func Success(ctx context.Context, c *app.RequestContext, data interface{}) {
	c.JSON(http.StatusOK, model.NewSuccessResponse(data, RequestID(ctx)))
}

// Accepted 异步受理
func Accepted(ctx context.Context, c *app.RequestContext, data interface{}) {
	c.JSON(http.StatusAccepted, model.NewSuccessResponse(data, RequestID(ctx)))
}

func BindError(ctx context.Context, c *app.RequestContext, err error) {
	c.JSON(http.StatusBadRequest, model.NewErrorResponse("INVALID_REQUEST", err.Error(), nil, RequestID(ctx)))
}
