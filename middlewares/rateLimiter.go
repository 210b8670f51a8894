package middlewares

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"blightwatch-be/limiter"
)

// RateLimiter caps how many requests one caller may make per window. A
// caller is the verified email on their session, or their client IP when
// they have not verified, so dropping the session header does not buy a
// fresh budget. It must run after the Session middleware.
func RateLimiter(counter limiter.Counter, prefix string, limit int, window time.Duration, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := prefix + ":" + callerKey(c)
		count, ttl, err := counter.Hit(c.Request.Context(), key, window)
		if err != nil {
			logger.Error("rate limiter unavailable", zap.String("key", key), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "rate limiter unavailable"})
			return
		}

		if count > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"retry_after": ttl.Seconds(),
			})
			return
		}

		c.Next()
	}
}

func callerKey(c *gin.Context) string {
	if sess := CurrentSession(c); sess != nil && sess.Authenticated && sess.Email != "" {
		return "email:" + sess.Email
	}
	return "ip:" + c.ClientIP()
}
