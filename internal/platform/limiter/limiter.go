package limiter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

func ConnectRedis(addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("could not connect to redis: %w", err)
	}
	return rdb, nil
}

// LoginLimiter throttles login attempts with a fixed window counter per
// email+IP pair. It only holds counters with TTLs in redis, never tokens.
type LoginLimiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
}

func NewLoginLimiter(rdb *redis.Client, limit int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{rdb: rdb, limit: limit, window: window}
}

// Allow records an attempt and reports whether it is within the limit.
// A limit <= 0 disables throttling. Redis failures report allowed so that
// an unreachable redis never locks out logins; the error is returned for
// the caller to log.
func (l *LoginLimiter) Allow(ctx context.Context, email, ip string) (bool, error) {
	if l.limit <= 0 {
		return true, nil
	}
	key := l.key(email, ip)
	count, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		return true, fmt.Errorf("login limiter incr: %w", err)
	}
	if count == 1 {
		if err := l.rdb.Expire(ctx, key, l.window).Err(); err != nil {
			return true, fmt.Errorf("login limiter expire: %w", err)
		}
	}
	return count <= int64(l.limit), nil
}

// Reset clears the counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, email, ip string) error {
	return l.rdb.Del(ctx, l.key(email, ip)).Err()
}

func (l *LoginLimiter) key(email, ip string) string {
	return "login_attempts:" + strings.ToLower(email) + ":" + ip
}
