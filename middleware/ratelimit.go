package middleware

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"marketplace-chat/dto/res"
	"marketplace-chat/metrics"
)

// RateLimiter is a fixed window counter in redis, shared by every instance.
// It fails open: if redis is unreachable the request goes through.
type RateLimiter struct {
	Redis   *redis.Client
	Prefix  string
	Limit   int
	Window  time.Duration
	Log     *logrus.Logger
	Metrics *metrics.Metrics
}

func NewRateLimiter(r *redis.Client, prefix string, limit int, window time.Duration, log *logrus.Logger, m *metrics.Metrics) *RateLimiter {
	return &RateLimiter{Redis: r, Prefix: prefix, Limit: limit, Window: window, Log: log, Metrics: m}
}

func (r *RateLimiter) MiddlewareByKey(keyFunc func(c *fiber.Ctx) string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		redisKey := fmt.Sprintf("%s:%s", r.Prefix, keyFunc(c))

		// ExpireNX on every hit also repairs a counter left without a ttl
		var incr *redis.IntCmd
		_, err := r.Redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			incr = pipe.Incr(ctx, redisKey)
			pipe.ExpireNX(ctx, redisKey, r.Window)
			return nil
		})
		if err != nil {
			r.Log.WithError(err).Warn("rate limiter unavailable, letting request through")
			return c.Next()
		}
		count := incr.Val()
		if count > int64(r.Limit) {
			r.Metrics.Limited("http")
			if ttl, err := r.Redis.TTL(ctx, redisKey).Result(); err == nil && ttl > 0 {
				c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(ttl.Round(time.Second)/time.Second)))
			}
			return c.Status(fiber.StatusTooManyRequests).JSON(res.ErrorResponse{
				Status:     fiber.ErrTooManyRequests.Message,
				StatusCode: fiber.StatusTooManyRequests,
				Error:      "rate limit exceeded",
			})
		}
		return c.Next()
	}
}

// ByUser keys the window on the authenticated user, falling back to the client ip.
func ByUser(c *fiber.Ctx) string {
	if userID := UserID(c); userID != "" {
		return "user:" + userID
	}
	return "ip:" + c.IP()
}
