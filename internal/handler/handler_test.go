package handler

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/cloudwego/hertz/pkg/common/config"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/cloudwego/hertz/pkg/route"
	"github.com/stretchr/testify/require"

	"WayToEarth/internal/middleware"
)

func newEngine() *route.Engine {
	engine := route.NewEngine(config.NewOptions([]config.Option{}))
	engine.Use(middleware.AuthMiddleware())
	engine.POST("/v1/enrollments/:enrollment_id/progress", ApplyProgress)
	engine.POST("/v1/enrollments/:enrollment_id/progress/async", ApplyProgressAsync)
	engine.POST("/v1/emblems/:emblem_id/award", AwardEmblem)
	return engine
}

func jsonBody(s string) *ut.Body {
	return &ut.Body{Body: bytes.NewBufferString(s), Len: len(s)}
}

var (
	userHeader = ut.Header{Key: middleware.UserIDHeader, Value: "7"}
	jsonHeader = ut.Header{Key: "Content-Type", Value: "application/json"}
)

// 以下请求都在访问服务层之前被拒绝
func TestRequestsRejectedBeforeService(t *testing.T) {
	engine := newEngine()

	cases := []struct {
		name   string
		path   string
		body   string
		status int
		code   string
	}{
		{"non-numeric enrollment", "/v1/enrollments/abc/progress", `{"segment_id":"1","distance_km":1}`, http.StatusBadRequest, "INVALID_ID"},
		{"zero enrollment", "/v1/enrollments/0/progress", `{"segment_id":"1","distance_km":1}`, http.StatusBadRequest, "INVALID_ID"},
		{"malformed body", "/v1/enrollments/5/progress", `{"segment_id":`, http.StatusBadRequest, "INVALID_REQUEST"},
		{"async negative distance", "/v1/enrollments/5/progress/async", `{"session_id":"s1","segment_id":"1","distance_km":-1}`, http.StatusBadRequest, "INVALID_DISTANCE"},
		{"async missing segment", "/v1/enrollments/5/progress/async", `{"session_id":"s1","distance_km":1}`, http.StatusBadRequest, "INVALID_ID"},
		{"bad emblem id", "/v1/emblems/x/award", ``, http.StatusBadRequest, "INVALID_ID"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := ut.PerformRequest(engine, http.MethodPost, tc.path, jsonBody(tc.body), userHeader, jsonHeader)
			require.Equal(t, tc.status, w.Result().StatusCode())
			require.Contains(t, string(w.Result().Body()), tc.code)
		})
	}
}
