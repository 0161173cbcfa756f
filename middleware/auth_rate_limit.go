package middleware

import (
	"net/http"
	"time"

	"bettermann/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	authRateLimitWindow = 120 * time.Second
	authRateLimitMax    = 25
	authRateLimitPrefix = "ratelimit:auth:"
)

// AuthRateLimitMiddleware applies a Redis-backed fixed-window limit to the
// auth routes, per client IP. Fails open: when Redis is not configured or a
// call errors, the request goes through.
func AuthRateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		client := utils.GetAuthCacheClient()
		if client == nil {
			c.Next()
			return
		}

		ip := getClientIP(c)
		key := authRateLimitPrefix + ip
		ctx := c.Request.Context()

		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}
		if count == 1 {
			client.Expire(ctx, key, authRateLimitWindow)
		}

		if count > authRateLimitMax {
			zap.L().Warn("Auth rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Try again later."})
			return
		}
		c.Next()
	}
}
