package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/shopcart-api/internal/container"
	"github.com/oksasatya/shopcart-api/internal/interface/middleware"
)

// limiter builds a rate limiter for one route set, or a no-op when
// RATE_LIMIT_ENABLED is off.
func limiter(limit int, window time.Duration, keyFn middleware.KeyFunc, allow middleware.AllowFunc) gin.HandlerFunc {
	if cfg := container.GetConfig(); cfg != nil && !cfg.RateLimitEnabled {
		return func(c *gin.Context) { c.Next() }
	}
	return middleware.Limit(container.GetRedis(), limit, window, keyFn, allow)
}
