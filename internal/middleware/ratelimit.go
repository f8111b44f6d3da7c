package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Counter is the slice of the Redis client the rate limiter needs.
type Counter interface {
	Incr(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, expiration time.Duration) error
}

// RateLimit caps requests per client IP within the window using a Redis
// counter. A nil counter disables the limit entirely, and counter errors
// fail open so the form keeps working when Redis is down.
func RateLimit(client Counter, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil || limit <= 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:%s:%s", c.FullPath(), c.ClientIP())
		count, err := client.Incr(c.Request.Context(), key)
		if err != nil {
			logrus.WithError(err).Warn("rate limit counter unavailable")
			c.Next()
			return
		}
		if count == 1 {
			if err := client.Expire(c.Request.Context(), key, window); err != nil {
				logrus.WithError(err).Warn("rate limit expire failed")
			}
		}

		if count > int64(limit) {
			c.String(http.StatusTooManyRequests, "提交过于频繁，请稍后再试")
			c.Abort()
			return
		}

		c.Next()
	}
}
