package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"

	"WayToEarth/config"
)

const (
	corsAllowMethods  = "GET, POST, OPTIONS"
	corsAllowHeaders  = "Origin, Content-Type, Accept, " + UserIDHeader
	corsExposeHeaders = "Content-Length, X-RateLimit-Limit, X-RateLimit-Remaining"
)

func CORSMiddleware() app.HandlerFunc {
	return newCORSMiddleware(config.Cfg.CORSAllowedOrigins)
}

// newCORSMiddleware 来源不在白名单时不写 CORS 头，由浏览器拦截
func newCORSMiddleware(allowed []string) app.HandlerFunc {
	allowSet := make(map[string]struct{}, len(allowed))
	for _, origin := range allowed {
		if origin = strings.TrimSpace(origin); origin != "" {
			allowSet[strings.ToLower(origin)] = struct{}{}
		}
	}

	return func(ctx context.Context, c *app.RequestContext) {
		origin := string(c.Request.Header.Get("Origin"))

		if originAllowed(allowSet, origin) {
			if origin == "" {
				c.Header("Access-Control-Allow-Origin", "*")
			} else {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
			}
			c.Header("Access-Control-Allow-Methods", corsAllowMethods)
			c.Header("Access-Control-Allow-Headers", corsAllowHeaders)
			c.Header("Access-Control-Expose-Headers", corsExposeHeaders)
			c.Header("Access-Control-Max-Age", "86400")
		}

		if string(c.Method()) == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next(ctx)
	}
}

func originAllowed(allowSet map[string]struct{}, origin string) bool {
	if len(allowSet) == 0 || origin == "" {
		return true
	}
	_, ok := allowSet[strings.ToLower(origin)]
	return ok
}
