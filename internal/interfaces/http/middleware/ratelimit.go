package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/cartonworks/stockline/internal/shared/constants"
	"github.com/cartonworks/stockline/internal/shared/logger"
	"github.com/cartonworks/stockline/internal/shared/utils"
)

// RateLimiter is a Redis fixed-window counter keyed by the acting operator,
// falling back to the client IP before authentication has run. Counters live
// in Redis so every server instance shares them.
type RateLimiter struct {
	redisClient *redis.Client
	scope       string
	limit       int
	window      time.Duration
	logger      logger.Interface
}

func NewRateLimiter(redisClient *redis.Client, scope string, limit int, window time.Duration, logger logger.Interface) *RateLimiter {
	return &RateLimiter{
		redisClient: redisClient,
		scope:       scope,
		limit:       limit,
		window:      window,
		logger:      logger,
	}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		windowSeconds := int64(rl.window.Seconds())
		if windowSeconds < 1 {
			windowSeconds = 1
		}
		bucket := time.Now().Unix() / windowSeconds
		key := fmt.Sprintf("stockline:ratelimit:%s:%s:%d", rl.scope, rl.subject(c), bucket)

		ctx := c.Request.Context()
		count, err := rl.redisClient.Incr(ctx, key).Result()
		if err != nil {
			// Redis outage must not block stock operations.
			rl.logger.Warnw("rate limiter unavailable", "scope", rl.scope, "error", err)
			c.Next()
			return
		}
		if count == 1 {
			rl.redisClient.Expire(ctx, key, rl.window+time.Second)
		}

		if count > int64(rl.limit) {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) subject(c *gin.Context) string {
	if sid := c.GetString(constants.ContextKeyUserSID); sid != "" {
		return "user:" + sid
	}
	return "ip:" + c.ClientIP()
}
