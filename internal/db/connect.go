package db

import (
	"context"
	"time"

	"drivexam_web/internal/logger"

	redis "github.com/redis/go-redis/v9"
)

// Connect opens the shared Redis client. Redis backs the referral slot store
// and the request rate limiter; both degrade gracefully, so a missing or
// unreachable Redis returns nil instead of aborting startup.
func Connect(addr, password string, db int) *redis.Client {
	if addr == "" {
		logger.Warn("REDIS_ADDR not set, referral slots held in memory only")
		return nil
	}

	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable, referral slots held in memory only", "error", err)
		return nil
	}

	logger.Info("redis connected", "addr", addr)
	return client
}
