package middleware

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/gin-gonic/gin"
)

const rateLimiterKey = "rateLimiter"

// rateKey scopes a counter to one limiter, client, method and route so that
// stacked limiters (the /api default plus a stricter route limit) count separately.
func rateKey(maxRequests int, window time.Duration, c *gin.Context) string {
	return "rl:" + strconv.Itoa(maxRequests) + "/" + window.String() +
		":" + c.ClientIP() + ":" + c.Request.Method + ":" + c.FullPath()
}

// RateLimiter allows maxRequests per window for each client IP, method and route,
// counted in redis with a fixed window. Without redis every request passes.
func RateLimiter(maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.RedisClient == nil || maxRequests <= 0 {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := rateKey(maxRequests, window, c)

		pipe := config.RedisClient.TxPipeline()
		incr := pipe.Incr(ctx, key)
		ttl := pipe.PTTL(ctx, key)
		if _, err := pipe.Exec(ctx); err != nil {
			log.Printf("[rate-limit] ⚠️ redis unavailable, letting request through: %v", err)
			c.Next()
			return
		}

		count := incr.Val()
		left := ttl.Val()
		if count == 1 || left < 0 {
			if err := config.RedisClient.PExpire(ctx, key, window).Err(); err != nil {
				log.Printf("[rate-limit] ⚠️ failed to set window on %s: %v", key, err)
			}
			left = window
		}

		rate := &models.RateLimiter{
			Limit:          maxRequests,
			Remaining:      max(maxRequests-int(count), 0),
			ResetAt:        time.Now().Add(left).Truncate(time.Second),
			ResetInSeconds: int(left.Round(time.Second).Seconds()),
		}
		if prev, ok := c.Get(rateLimiterKey); ok {
			// Report the tighter of two stacked limiters.
			if p, ok := prev.(*models.RateLimiter); ok && p.Remaining < rate.Remaining {
				rate = p
			}
		}
		c.Set(rateLimiterKey, rate)

		h := c.Writer.Header()
		h.Set("X-RateLimit-Limit", strconv.Itoa(rate.Limit))
		h.Set("X-RateLimit-Remaining", strconv.Itoa(rate.Remaining))
		h.Set("X-RateLimit-Reset", strconv.FormatInt(rate.ResetAt.Unix(), 10))

		if int(count) > maxRequests {
			h.Set("Retry-After", strconv.Itoa(rate.ResetInSeconds))
			resp := models.ErrorResponse(c, "Too many requests, try again in "+strconv.Itoa(rate.ResetInSeconds)+"s")
			resp.Rate = rate
			c.AbortWithStatusJSON(http.StatusTooManyRequests, resp)
			return
		}

		c.Next()
	}
}
