package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	fiberredis "github.com/gofiber/storage/redis/v3"
	"github.com/redis/go-redis/v9"

	"github.com/Alijeyrad/agrolytics_backend/config"
)

// NewLimiterWithRedis limits each client IP to cfg.RequestsPerMinute over a
// sliding one-minute window shared through Redis.
func NewLimiterWithRedis(rdb *redis.Client, cfg config.RateLimitConfig) fiber.Handler {
	max := cfg.RequestsPerMinute
	if max <= 0 {
		max = 60
	}

	return limiter.New(limiter.Config{
		Storage:           fiberredis.NewFromConnection(rdb),
		Max:               max,
		Expiration:        time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		LimitReached: func(c fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many requests"})
		},
	})
}
