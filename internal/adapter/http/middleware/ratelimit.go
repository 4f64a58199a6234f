package middleware

import (
	"context"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"swapcred/pkg"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// Limiter is a per-caller token bucket. The retry-after duration is only
// meaningful when allowed is false.
type Limiter interface {
	Allow(ctx context.Context, key string) (allowed bool, retryAfter time.Duration, err error)
}

// MemoryLimiter keeps one token bucket per caller in process memory. Suitable
// for single-instance deployments.
type MemoryLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func NewMemoryLimiter(requestsPerMinute, burst int) *MemoryLimiter {
	return &MemoryLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(float64(requestsPerMinute) / 60.0),
		burst:    burst,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	l.mu.Lock()
	lim, ok := l.limiters[key]
	if !ok {
		// Crude cap to keep an abusive key space from growing without bound.
		if len(l.limiters) > 10000 {
			l.limiters = make(map[string]*rate.Limiter)
		}
		lim = rate.NewLimiter(l.limit, l.burst)
		l.limiters[key] = lim
	}
	l.mu.Unlock()

	r := lim.Reserve()
	if !r.OK() {
		return false, time.Minute, nil
	}
	if delay := r.Delay(); delay > 0 {
		r.Cancel()
		return false, delay, nil
	}
	return true, 0, nil
}

// RedisLimiter is a fixed-window counter shared across instances.
type RedisLimiter struct {
	client *redis.Client
	window time.Duration
	max    int
}

func NewRedisLimiter(client *redis.Client, requestsPerWindow int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, window: window, max: requestsPerWindow}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	redisKey := "ratelimit:" + key

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, err
	}

	if incr.Val() > int64(l.max) {
		ttl, err := l.client.TTL(ctx, redisKey).Result()
		if err != nil || ttl <= 0 {
			ttl = l.window
		}
		return false, ttl, nil
	}
	return true, 0, nil
}

// NewLimiterFromEnv builds the configured limiter backend.
//
// Env vars:
//   - RATE_LIMIT_BACKEND: memory|redis (default memory; single-instance)
//   - RATE_LIMIT_PER_MINUTE: default 100
//   - RATE_LIMIT_BURST: default 20 (memory backend only)
//   - REDIS_ADDR, REDIS_PASSWORD, REDIS_DB (redis backend)
func NewLimiterFromEnv() Limiter {
	perMinute := getenvInt("RATE_LIMIT_PER_MINUTE", 100)
	burst := getenvInt("RATE_LIMIT_BURST", 20)

	backend := strings.ToLower(strings.TrimSpace(os.Getenv("RATE_LIMIT_BACKEND")))
	if backend == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     getenvDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getenvInt("REDIS_DB", 0),
		})
		log.Info().Str("backend", "redis").Int("per_minute", perMinute).Msg("rate limiter configured")
		return NewRedisLimiter(client, perMinute, time.Minute)
	}

	log.Info().Str("backend", "memory").Int("per_minute", perMinute).Int("burst", burst).Msg("rate limiter configured")
	return NewMemoryLimiter(perMinute, burst)
}

// RateLimit applies the limiter keyed by caller id when authenticated, client
// IP otherwise. Limiter backend errors fail open.
func RateLimit(l Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := CallerID(c)
		if key == "" {
			key = c.ClientIP()
		}

		allowed, retryAfter, err := l.Allow(c.Request.Context(), key)
		if err != nil {
			log.Error().Err(err).Str("key", key).Msg("rate limiter error, allowing request")
			c.Next()
			return
		}
		if !allowed {
			secs := int(math.Round(retryAfter.Seconds()))
			if secs < 1 {
				secs = 1
			}
			c.Header("Retry-After", strconv.Itoa(secs))
			log.Warn().Str("key", key).Str("path", c.FullPath()).Int("retry_after", secs).Msg("rate limit exceeded")
			appErr := pkg.NewDomainErrorSimple("RATE_LIMITED", "Too many requests", 429)
			c.AbortWithStatusJSON(appErr.HTTPStatus, gin.H{"error": appErr.Message, "retryAfter": secs})
			return
		}
		c.Next()
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
