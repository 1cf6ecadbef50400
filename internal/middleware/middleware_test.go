package middleware

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/config"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/cloudwego/hertz/pkg/route"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"WayToEarth/storage/redis"
)

func newEngine() *route.Engine {
	return route.NewEngine(config.NewOptions([]config.Option{}))
}

func echoUser(ctx context.Context, c *app.RequestContext) {
	userID, _ := GetUserID(ctx, c)
	c.JSON(http.StatusOK, map[string]int64{"user_id": userID})
}

func TestAuthMiddleware(t *testing.T) {
	engine := newEngine()
	engine.Use(AuthMiddleware())
	engine.GET("/me", echoUser)

	w := ut.PerformRequest(engine, http.MethodGet, "/me", nil)
	require.Equal(t, http.StatusUnauthorized, w.Result().StatusCode())
	require.Contains(t, string(w.Result().Body()), "UNAUTHORIZED")

	w = ut.PerformRequest(engine, http.MethodGet, "/me", nil, ut.Header{Key: UserIDHeader, Value: "abc"})
	require.Equal(t, http.StatusUnauthorized, w.Result().StatusCode())

	w = ut.PerformRequest(engine, http.MethodGet, "/me", nil, ut.Header{Key: UserIDHeader, Value: "-3"})
	require.Equal(t, http.StatusUnauthorized, w.Result().StatusCode())

	w = ut.PerformRequest(engine, http.MethodGet, "/me", nil, ut.Header{Key: UserIDHeader, Value: "42"})
	require.Equal(t, http.StatusOK, w.Result().StatusCode())
	require.JSONEq(t, `{"user_id":42}`, string(w.Result().Body()))
}

func TestRateLimitPerUser(t *testing.T) {
	mr := miniredis.RunT(t)
	redis.SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))

	engine := newEngine()
	engine.Use(AuthMiddleware())
	engine.POST("/progress", RateLimitMiddleware(RateLimitConfig{
		Window:      time.Minute,
		MaxRequests: 2,
		KeyPrefix:   "rate:test",
	}), echoUser)

	for i := 0; i < 2; i++ {
		w := ut.PerformRequest(engine, http.MethodPost, "/progress", nil, ut.Header{Key: UserIDHeader, Value: "1"})
		require.Equal(t, http.StatusOK, w.Result().StatusCode())
	}

	w := ut.PerformRequest(engine, http.MethodPost, "/progress", nil, ut.Header{Key: UserIDHeader, Value: "1"})
	require.Equal(t, http.StatusTooManyRequests, w.Result().StatusCode())
	require.Equal(t, "0", string(w.Result().Header.Peek("X-RateLimit-Remaining")))

	// 其他用户不受影响
	w = ut.PerformRequest(engine, http.MethodPost, "/progress", nil, ut.Header{Key: UserIDHeader, Value: "2"})
	require.Equal(t, http.StatusOK, w.Result().StatusCode())
}

func TestRecoverMiddleware(t *testing.T) {
	engine := newEngine()
	engine.Use(RecoverMiddlewareWithConfig(RecoverConfig{IsProduction: true}))
	engine.GET("/boom", func(ctx context.Context, c *app.RequestContext) {
		panic("boom")
	})

	w := ut.PerformRequest(engine, http.MethodGet, "/boom", nil)
	require.Equal(t, http.StatusInternalServerError, w.Result().StatusCode())
	body := string(w.Result().Body())
	require.Contains(t, body, "INTERNAL_SERVER_ERROR")
	require.NotContains(t, body, "boom")
}

func TestIsSeverePanic(t *testing.T) {
	require.True(t, isSeverePanic("runtime error: index out of range [3] with length 2"))
	require.False(t, isSeverePanic("boom"))
	require.False(t, isSeverePanic(nil))
}

func TestCORSAllowList(t *testing.T) {
	engine := newEngine()
	engine.Use(newCORSMiddleware([]string{"https://app.waytoearth.run"}))
	pong := func(ctx context.Context, c *app.RequestContext) {
		c.String(http.StatusOK, "pong")
	}
	engine.GET("/ping", pong)
	engine.OPTIONS("/ping", pong)

	w := ut.PerformRequest(engine, http.MethodGet, "/ping", nil, ut.Header{Key: "Origin", Value: "https://app.waytoearth.run"})
	require.Equal(t, "https://app.waytoearth.run", string(w.Result().Header.Peek("Access-Control-Allow-Origin")))

	w = ut.PerformRequest(engine, http.MethodGet, "/ping", nil, ut.Header{Key: "Origin", Value: "https://evil.example"})
	require.Equal(t, http.StatusOK, w.Result().StatusCode())
	require.Empty(t, w.Result().Header.Peek("Access-Control-Allow-Origin"))

	w = ut.PerformRequest(engine, http.MethodOptions, "/ping", nil, ut.Header{Key: "Origin", Value: "https://app.waytoearth.run"})
	require.Equal(t, http.StatusNoContent, w.Result().StatusCode())
}
