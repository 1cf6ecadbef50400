package middleware

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"WayToEarth/config"
	"WayToEarth/internal/model"
	"WayToEarth/pkg/logger"
	"WayToEarth/pkg/response"
)

// RecoverConfig recover 中间件配置
type RecoverConfig struct {
	// 是否启用堆栈追踪
	EnableStackTrace bool
	// 堆栈追踪级别（full, simple, none）
	StackTraceLevel string
	// 是否记录请求详情
	LogRequestDetails bool
	// 是否在 span 中记录异常
	RecordInSpan bool
	// 是否是生产环境，生产环境不返回 panic 详情
	IsProduction bool
}

// NewRecoverConfig 创建 recover 配置
func NewRecoverConfig() RecoverConfig {
	return RecoverConfig{
		EnableStackTrace:  true,
		StackTraceLevel:   "simple",
		LogRequestDetails: true,
		RecordInSpan:      true,
		IsProduction:      config.Cfg.IsProduction(),
	}
}

// RecoverMiddleware 创建 recover 中间件
func RecoverMiddleware() app.HandlerFunc {
	return RecoverMiddlewareWithConfig(NewRecoverConfig())
}

// RecoverMiddlewareWithConfig 带配置的 recover 中间件
func RecoverMiddlewareWithConfig(cfg RecoverConfig) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		defer func() {
			if err := recover(); err != nil {
				handlePanic(ctx, c, err, cfg)
			}
		}()

		c.Next(ctx)
	}
}

func handlePanic(ctx context.Context, c *app.RequestContext, err interface{}, cfg RecoverConfig) {
	var stack []byte
	if cfg.EnableStackTrace {
		stack = getStackTrace(cfg.StackTraceLevel)
	}

	logPanicWithRequest(ctx, c, err, stack, cfg)
	writeErrorResponse(ctx, c, err, stack, cfg)
}

// writeErrorResponse 返回 500，非生产环境附带 panic 详情
func writeErrorResponse(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte, cfg RecoverConfig) {
	message := "服务器内部错误，请稍后重试"
	var details model.ErrorDetail
	if !cfg.IsProduction {
		message = fmt.Sprintf("Internal error: %v", err)
		details = model.ErrorDetail{
			"panic":     fmt.Sprintf("%v", err),
			"timestamp": time.Now().Format(time.RFC3339),
		}
		if cfg.EnableStackTrace {
			details["stack"] = string(stack)
		}
	}

	c.AbortWithStatusJSON(http.StatusInternalServerError, model.NewErrorResponse("INTERNAL_SERVER_ERROR", message, details, response.RequestID(ctx)))
}

// getStackTrace 获取堆栈追踪
func getStackTrace(level string) []byte {
	var buf bytes.Buffer

	switch level {
	case "full":
		buf.Write(debug.Stack())
	case "simple":
		buf.WriteString("goroutine panic:\n")
		skip := 3 // 跳过 runtime 和 recover 相关的函数
		for i := skip; ; i++ {
			pc, file, line, ok := runtime.Caller(i)
			if !ok {
				break
			}
			fn := runtime.FuncForPC(pc)
			if fn == nil {
				continue
			}
			buf.WriteString(fmt.Sprintf("  %s:%d\n    %s\n", file, line, fn.Name()))
		}
	}

	return buf.Bytes()
}

// getFormattedStack 移除 runtime 相关的冗余堆栈
func getFormattedStack(stack []byte) []byte {
	if len(stack) == 0 {
		return nil
	}

	lines := strings.Split(string(stack), "\n")
	filtered := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.Contains(line, "/runtime/") {
			continue
		}
		filtered = append(filtered, line)
	}

	return []byte(strings.Join(filtered, "\n"))
}

func logPanicWithRequest(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte, cfg RecoverConfig) {
	fields := []zap.Field{
		zap.String("panic", fmt.Sprintf("%v", err)),
		zap.String("path", string(c.Path())),
		zap.String("method", string(c.Method())),
		zap.String("client_ip", c.ClientIP()),
	}

	requestID := string(c.GetHeader("X-Request-ID"))
	if requestID == "" {
		requestID = string(c.GetHeader("X-Trace-ID"))
	}
	fields = append(fields, zap.String("request_id", requestID))

	if userID, exists := GetUserID(ctx, c); exists {
		fields = append(fields, zap.Int64("user_id", userID))
	}

	if cfg.LogRequestDetails {
		// 进度上报的请求体很小，只记录 JSON
		body := c.Request.Body()
		if len(body) > 0 && len(body) < 1024 && strings.Contains(string(c.ContentType()), "json") {
			fields = append(fields, zap.String("body", string(body)))
		}
	}

	if cfg.EnableStackTrace {
		fields = append(fields, zap.ByteString("stack", getFormattedStack(stack)))
	}

	if cfg.RecordInSpan {
		if span := trace.SpanFromContext(ctx); span.SpanContext().IsValid() {
			span.RecordError(fmt.Errorf("panic: %v", err))
			span.SetStatus(codes.Error, "panic recovered")
		}
	}

	logger.Logger.Error("[PANIC RECOVERED]", fields...)

	if isSeverePanic(err) {
		logger.Logger.Error("[SEVERE PANIC DETECTED]", fields...)
	}
}

// isSeverePanic 判断是否为严重错误
func isSeverePanic(err interface{}) bool {
	if err == nil {
		return false
	}

	errStr := fmt.Sprintf("%v", err)

	severePatterns := []string{
		"runtime: out of memory",
		"fatal error:",
		"concurrent map writes",
		"concurrent map read and map write",
		"all goroutines are asleep - deadlock!",
		"index out of range",
		"slice bounds out of range",
	}

	for _, pattern := range severePatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}

	return false
}
